package auth

import (
	"authsvc/config"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
)

// NewTokenIssuer builds the TokenIssuer selected by auth.tokenIssuer.
func NewTokenIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	issuer := config.IssuerOpaque
	if cfg.Auth != nil && cfg.Auth.TokenIssuer != "" {
		issuer = cfg.Auth.TokenIssuer
	}

	switch issuer {
	case config.IssuerOpaque:
		return NewOpaqueIssuer(), nil
	case config.IssuerJWT:
		ttl := cfg.Session.TTL
		if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}

		return NewJWTIssuer(cfg.SecretKey.Access, ttl)
	default:
		return nil, errors.Errorf("unknown token issuer: %s", issuer)
	}
}
