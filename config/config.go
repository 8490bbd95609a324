package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 5 * time.Second
	defaultRetryBaseDelay     = 50 * time.Millisecond
	defaultSessionTTL         = 24 * time.Hour
	defaultSweepInterval      = 10 * time.Minute
	defaultSQLitePath         = "users.db"
	defaultWorkerPort         = 8081
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Password hashing algorithms.
const (
	HasherBcrypt   = "bcrypt"
	HasherArgon2ID = "argon2id"
	HasherSHA256   = "sha256"
)

// Token issuers.
const (
	IssuerOpaque = "opaque"
	IssuerJWT    = "jwt"
)

// Session stores.
const (
	SessionStoreDatabase = "database"
	SessionStoreRedis    = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	MySQL *MySQLConfig `json:"mysql" yaml:"mysql"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Session SessionConfig `json:"session" yaml:"session"`

	// PubSub configuration for account event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the account event worker
	Worker WorkerConfig `json:"worker" yaml:"worker"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// StoreConfig selects and tunes the credential store.
type StoreConfig struct {
	Driver          string        `json:"driver" yaml:"driver"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
	SeedTestAccount bool          `json:"seedTestAccount" yaml:"seedTestAccount"`
	RequestTimeout  time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	Retry           RetryConfig   `json:"retry" yaml:"retry"`
}

// RetryConfig bounds the retry of idempotent store reads.
type RetryConfig struct {
	MaxRetries uint64        `json:"maxRetries" yaml:"maxRetries"`
	BaseDelay  time.Duration `json:"baseDelay" yaml:"baseDelay"`
}

type MySQLConfig struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// AuthConfig defines password hashing and token issuing configuration
type AuthConfig struct {
	Hasher      string        `json:"hasher" yaml:"hasher"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`
	Argon2      Argon2Config  `json:"argon2" yaml:"argon2"`
	TokenIssuer string        `json:"tokenIssuer" yaml:"tokenIssuer"`
	TokenTTL    time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory"`
	Time        uint32 `json:"time" yaml:"time"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength"`
}

// SessionConfig controls where issued tokens are registered and for how long.
type SessionConfig struct {
	Store         string        `json:"store" yaml:"store"`
	TTL           time.Duration `json:"ttl" yaml:"ttl"`
	SweepInterval time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development, usually the account worker's /push
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath...)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// SESSION_SWEEPINTERVAL -> session.sweepInterval
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverSQLite
	}
	if cfg.Store.RequestTimeout <= 0 {
		cfg.Store.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Store.Retry.BaseDelay <= 0 {
		cfg.Store.Retry.BaseDelay = defaultRetryBaseDelay
	}
	if cfg.Store.Driver == DriverSQLite && (cfg.SQLite == nil || cfg.SQLite.Path == "") {
		cfg.SQLite = &SQLiteConfig{Path: defaultSQLitePath}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Hasher == "" {
		cfg.Auth.Hasher = HasherBcrypt
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = IssuerOpaque
	}

	if cfg.Session.Store == "" {
		cfg.Session.Store = SessionStoreDatabase
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.Session.SweepInterval <= 0 {
		cfg.Session.SweepInterval = defaultSweepInterval
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = cfg.Session.TTL
	}

	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
}

// Validate rejects combinations the service cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Store.Driver {
	case DriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres section is required for the postgres driver")
		}
	case DriverMySQL:
		if cfg.MySQL == nil || cfg.MySQL.DSN == "" {
			return errors.New("mysql.dsn is required for the mysql driver")
		}
	case DriverSQLite:
	default:
		return errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	switch cfg.Auth.Hasher {
	case HasherBcrypt, HasherArgon2ID, HasherSHA256:
	default:
		return errors.Errorf("unknown password hasher: %s", cfg.Auth.Hasher)
	}

	switch cfg.Auth.TokenIssuer {
	case IssuerOpaque:
	case IssuerJWT:
		if cfg.SecretKey.Access == "" {
			return errors.New("secretKey.access is required for the jwt token issuer")
		}
	default:
		return errors.Errorf("unknown token issuer: %s", cfg.Auth.TokenIssuer)
	}

	switch cfg.Session.Store {
	case SessionStoreDatabase:
	case SessionStoreRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis session store")
		}
	default:
		return errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
