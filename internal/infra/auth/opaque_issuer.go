package auth

import (
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"
	"authsvc/internal/util"
)

// opaqueIssuer derives the token as hex SHA-256 over email, digest and name.
// Identical inputs always yield the identical token; meaning comes from the session store.
type opaqueIssuer struct{}

// NewOpaqueIssuer returns the deterministic digest-based issuer.
func NewOpaqueIssuer() service.TokenIssuer {
	return &opaqueIssuer{}
}

var (
	_ service.TokenIssuer   = (*opaqueIssuer)(nil)
	_ service.TokenVerifier = (*opaqueIssuer)(nil)
)

func (i *opaqueIssuer) Issue(email, digest, name string) (string, error) {
	return util.SHA256Hex(email + digest + name), nil
}

// Verify rejects anything that is not shaped like an issued token.
func (i *opaqueIssuer) Verify(token string) error {
	if !util.IsSHA256Hex(token) {
		return domainerrors.ErrInvalidToken
	}

	return nil
}
