package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authsvc/config"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/service"
	"authsvc/internal/util"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestOpaqueIssuer_Deterministic(t *testing.T) {
	issuer := NewOpaqueIssuer()

	first, err := issuer.Issue("test@example.com", seedDigest, "Test User")
	require.NoError(t, err)
	second, err := issuer.Issue("test@example.com", seedDigest, "Test User")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, util.SHA256Hex("test@example.com"+seedDigest+"Test User"), first)
	assert.Len(t, first, 64)
}

func TestOpaqueIssuer_InputsChangeToken(t *testing.T) {
	issuer := NewOpaqueIssuer()

	base, err := issuer.Issue("a@example.com", "digest", "A")
	require.NoError(t, err)

	for _, in := range [][3]string{
		{"b@example.com", "digest", "A"},
		{"a@example.com", "other", "A"},
		{"a@example.com", "digest", "B"},
	} {
		token, err := issuer.Issue(in[0], in[1], in[2])
		require.NoError(t, err)
		assert.NotEqual(t, base, token)
	}
}

func TestOpaqueIssuer_Verify(t *testing.T) {
	verifier := NewOpaqueIssuer().(service.TokenVerifier)

	assert.NoError(t, verifier.Verify(seedDigest))
	assert.ErrorIs(t, verifier.Verify("garbage"), domainerrors.ErrInvalidToken)
	assert.ErrorIs(t, verifier.Verify(""), domainerrors.ErrInvalidToken)
}

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer, err := NewJWTIssuer(testSecret, time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("test@example.com", seedDigest, "Test User")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	claims, err := issuer.(*jwtIssuer).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "Test User", claims.Name)
	assert.Equal(t, util.SHA256Hex(seedDigest)[:fingerprintLength], claims.Fingerprint)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	other, err := issuer.Issue("test@example.com", seedDigest, "Test User")
	require.NoError(t, err)
	assert.NotEqual(t, token, other, "jti makes each token unique")
}

func TestJWTIssuer_Verify(t *testing.T) {
	issuerIface, err := NewJWTIssuer(testSecret, time.Minute)
	require.NoError(t, err)
	issuer := issuerIface.(*jwtIssuer)

	valid, err := issuer.Issue("a@example.com", "digest", "A")
	require.NoError(t, err)

	otherIssuer, err := NewJWTIssuer("another_secret", time.Minute)
	require.NoError(t, err)
	foreign, err := otherIssuer.Issue("a@example.com", "digest", "A")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, AccountClaims{
		Email:            "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AccountClaims{Email: "a@example.com"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: valid},
		{name: "garbage", token: "not.a.token", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "wrong secret", token: foreign, wantErr: true},
		{name: "none algorithm", token: noneToken, wantErr: true},
		{name: "missing expiry", token: noExpiry, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := issuer.Verify(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuerIface, err := NewJWTIssuer(testSecret, time.Minute)
	require.NoError(t, err)
	issuer := issuerIface.(*jwtIssuer)

	issuedAt := time.Now()
	issuer.now = func() time.Time { return issuedAt }
	token, err := issuer.Issue("a@example.com", "digest", "A")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	assert.ErrorIs(t, issuer.Verify(token), domainerrors.ErrInvalidToken)
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := NewJWTIssuer("", time.Minute)
	assert.Error(t, err)
}

func TestNewTokenIssuer(t *testing.T) {
	opaque, err := NewTokenIssuer(&config.Config{Auth: &config.AuthConfig{TokenIssuer: config.IssuerOpaque}})
	require.NoError(t, err)
	assert.IsType(t, &opaqueIssuer{}, opaque)

	cfg := &config.Config{Auth: &config.AuthConfig{TokenIssuer: config.IssuerJWT, TokenTTL: 5 * time.Minute}}
	cfg.SecretKey.Access = testSecret
	signed, err := NewTokenIssuer(cfg)
	require.NoError(t, err)
	require.IsType(t, &jwtIssuer{}, signed)
	assert.Equal(t, 5*time.Minute, signed.(*jwtIssuer).ttl)

	_, err = NewTokenIssuer(&config.Config{Auth: &config.AuthConfig{TokenIssuer: "paseto"}})
	assert.Error(t, err)

	defaulted, err := NewTokenIssuer(&config.Config{})
	require.NoError(t, err)
	assert.IsType(t, &opaqueIssuer{}, defaulted)
}
