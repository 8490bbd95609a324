package auth

import (
	"strings"

	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/util"
)

// compositeHasher hashes with the configured algorithm and verifies any digest
// format the service has ever written, so switching algorithms does not lock out
// existing accounts.
type compositeHasher struct {
	primary service.PasswordHasher
	bcrypt  service.PasswordHasher
	argon2  service.PasswordHasher
	sha256  service.PasswordHasher
}

// NewPasswordHasher builds the PasswordHasher selected by auth.hasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{Hasher: config.HasherBcrypt}
	}

	h := &compositeHasher{
		bcrypt: NewBcryptHasherWithCost(authCfg.BcryptCost),
		argon2: NewArgon2Hasher(authCfg.Argon2),
		sha256: NewSHA256Hasher(),
	}

	switch authCfg.Hasher {
	case config.HasherBcrypt, "":
		h.primary = h.bcrypt
	case config.HasherArgon2ID:
		h.primary = h.argon2
	case config.HasherSHA256:
		h.primary = h.sha256
	default:
		return nil, errors.Errorf("unknown password hasher: %s", authCfg.Hasher)
	}

	return h, nil
}

func (h *compositeHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *compositeHasher) Verify(password, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$2a$"), strings.HasPrefix(digest, "$2b$"), strings.HasPrefix(digest, "$2y$"):
		return h.bcrypt.Verify(password, digest)
	case strings.HasPrefix(digest, argon2Prefix):
		return h.argon2.Verify(password, digest)
	case util.IsSHA256Hex(digest):
		return h.sha256.Verify(password, digest)
	default:
		return false
	}
}
