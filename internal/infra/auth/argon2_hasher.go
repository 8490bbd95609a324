package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"

	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
)

const (
	argon2Prefix = "$argon2id$"

	defaultArgon2Memory      uint32 = 64 * 1024
	defaultArgon2Time        uint32 = 3
	defaultArgon2Parallelism uint8  = 2
	defaultArgon2SaltLength  uint32 = 16
	defaultArgon2KeyLength   uint32 = 32
	minArgon2SaltLength             = 8
)

// argon2Hasher produces PHC strings: $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
type argon2Hasher struct {
	params config.Argon2Config
}

// NewArgon2Hasher builds an argon2id hasher; zero params take the defaults.
func NewArgon2Hasher(params config.Argon2Config) service.PasswordHasher {
	if params.Memory == 0 {
		params.Memory = defaultArgon2Memory
	}
	if params.Time == 0 {
		params.Time = defaultArgon2Time
	}
	if params.Parallelism == 0 {
		params.Parallelism = defaultArgon2Parallelism
	}
	if params.SaltLength == 0 {
		params.SaltLength = defaultArgon2SaltLength
	}
	if params.KeyLength == 0 {
		params.KeyLength = defaultArgon2KeyLength
	}

	return &argon2Hasher{params: params}
}

func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", errors.Wrap(err, "read argon2 salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		h.params.Memory,
		h.params.Time,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key with the parameters embedded in digest.
func (h *argon2Hasher) Verify(password, digest string) bool {
	phc, err := parseArgon2PHC(digest)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(password), phc.salt, phc.time, phc.memory, phc.parallelism, uint32(len(phc.key)))

	return subtle.ConstantTimeCompare(key, phc.key) == 1
}

type argon2PHC struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parseArgon2PHC(digest string) (*argon2PHC, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, errors.New("invalid argon2id digest")
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, errors.New("unsupported argon2 version")
	}

	phc := &argon2PHC{}
	for _, kv := range strings.Split(parts[3], ",") {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.New("invalid argon2 parameter")
		}

		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil || n == 0 {
			return nil, errors.New("invalid argon2 parameter value")
		}

		switch name {
		case "m":
			phc.memory = uint32(n)
		case "t":
			phc.time = uint32(n)
		case "p":
			if n > 255 {
				return nil, errors.New("argon2 parallelism out of range")
			}
			phc.parallelism = uint8(n)
		default:
			return nil, errors.New("unknown argon2 parameter")
		}
	}
	if phc.memory == 0 || phc.time == 0 || phc.parallelism == 0 {
		return nil, errors.New("missing argon2 parameter")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < minArgon2SaltLength {
		return nil, errors.New("invalid argon2 salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, errors.New("invalid argon2 key")
	}
	phc.salt = salt
	phc.key = key

	return phc, nil
}
