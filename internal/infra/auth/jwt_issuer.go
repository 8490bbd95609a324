package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"
	"authsvc/internal/errors"
	"authsvc/internal/util"
)

const fingerprintLength = 16

// AccountClaims are the claims carried by an HS256 access token.
type AccountClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// Fingerprint is a prefix of SHA-256 over the password digest, so a password change
	// yields different tokens without exposing the digest.
	Fingerprint string `json:"fpr"`
	jwt.RegisteredClaims
}

// jwtIssuer signs tokens with the access secret.
type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer is the constructor for jwtIssuer.
func NewJWTIssuer(secret string, ttl time.Duration) (service.TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

var (
	_ service.TokenIssuer   = (*jwtIssuer)(nil)
	_ service.TokenVerifier = (*jwtIssuer)(nil)
)

// Issue creates a signed token. A fresh jti makes every token unique.
func (i *jwtIssuer) Issue(email, digest, name string) (string, error) {
	now := i.now()
	jti, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "generate token id")
	}

	claims := AccountClaims{
		Email:       email,
		Name:        name,
		Fingerprint: util.SHA256Hex(digest)[:fingerprintLength],
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify checks signature and expiry. It says nothing about revocation.
func (i *jwtIssuer) Verify(token string) error {
	_, err := i.Parse(token)

	return err
}

// Parse validates token and returns its claims.
func (i *jwtIssuer) Parse(token string) (*AccountClaims, error) {
	claims := &AccountClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}
