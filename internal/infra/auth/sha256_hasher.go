// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"authsvc/internal/domain/service"
	"authsvc/internal/util"
)

// sha256Hasher stores the unsalted hex SHA-256 of the password.
// It is deterministic and only kept for digests written by earlier deployments.
type sha256Hasher struct{}

func NewSHA256Hasher() service.PasswordHasher {
	return sha256Hasher{}
}

func (sha256Hasher) Hash(password string) (string, error) {
	return util.SHA256Hex(password), nil
}

func (sha256Hasher) Verify(password, digest string) bool {
	if !util.IsSHA256Hex(digest) {
		return false
	}

	return util.EqualConstantTime(util.SHA256Hex(password), digest)
}
