package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authsvc/config"
)

const seedDigest = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

func fastArgon2() config.Argon2Config {
	return config.Argon2Config{Memory: 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

func TestSHA256Hasher(t *testing.T) {
	hasher := NewSHA256Hasher()

	digest, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, seedDigest, digest)

	again, err := hasher.Hash("password")
	require.NoError(t, err)
	assert.Equal(t, digest, again, "hash must be deterministic")

	assert.True(t, hasher.Verify("password", seedDigest))
	assert.False(t, hasher.Verify("Password", seedDigest))
	assert.False(t, hasher.Verify("password", strings.ToUpper(seedDigest)))
	assert.False(t, hasher.Verify("password", "not-a-digest"))
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	digest, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, "StrongPass123!", digest)
	assert.True(t, strings.HasPrefix(digest, "$2a$"))

	other, err := hasher.Hash("StrongPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "salted hashes should differ")

	assert.True(t, hasher.Verify("StrongPass123!", digest))
	assert.False(t, hasher.Verify("WrongPassword", digest))
	assert.False(t, hasher.Verify("", digest))
	assert.False(t, hasher.Verify("StrongPass123!", "invalid_hash"))
}

func TestBcryptHasher_LongPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	long := strings.Repeat("a", 80)

	digest, err := hasher.Hash(long)
	require.NoError(t, err)

	assert.True(t, hasher.Verify(long, digest))
	// Passwords sharing the first 72 bytes must stay distinct.
	assert.False(t, hasher.Verify(strings.Repeat("a", 72)+"bbbbbbbb", digest))
	assert.False(t, hasher.Verify(strings.Repeat("a", 72), digest))
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestArgon2Hasher(t *testing.T) {
	hasher := NewArgon2Hasher(fastArgon2())

	digest, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.True(t, hasher.Verify("correct horse", digest))
	assert.False(t, hasher.Verify("battery staple", digest))

	other, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other)
}

func TestArgon2Hasher_Defaults(t *testing.T) {
	hasher := NewArgon2Hasher(config.Argon2Config{}).(*argon2Hasher)
	assert.Equal(t, defaultArgon2Memory, hasher.params.Memory)
	assert.Equal(t, defaultArgon2Time, hasher.params.Time)
	assert.Equal(t, defaultArgon2Parallelism, hasher.params.Parallelism)
	assert.Equal(t, defaultArgon2SaltLength, hasher.params.SaltLength)
	assert.Equal(t, defaultArgon2KeyLength, hasher.params.KeyLength)
}

func TestArgon2Hasher_MalformedDigest(t *testing.T) {
	hasher := NewArgon2Hasher(fastArgon2())

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "wrong algorithm", digest: "$argon2i$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5"},
		{name: "wrong version", digest: "$argon2id$v=16$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5"},
		{name: "missing parameter", digest: "$argon2id$v=19$m=1024,t=1$c2FsdHNhbHRzYWx0$a2V5"},
		{name: "zero parameter", digest: "$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5"},
		{name: "unknown parameter", digest: "$argon2id$v=19$m=1024,t=1,x=1$c2FsdHNhbHRzYWx0$a2V5"},
		{name: "short salt", digest: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdA$a2V5"},
		{name: "bad base64", digest: "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5"},
		{name: "too many segments", digest: "$argon2id$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$a2V5$x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("pw", tt.digest))
		})
	}
}

func TestNewPasswordHasher(t *testing.T) {
	tests := []struct {
		name       string
		hasher     string
		wantPrefix string
		wantErr    bool
	}{
		{name: "bcrypt", hasher: config.HasherBcrypt, wantPrefix: "$2a$"},
		{name: "argon2id", hasher: config.HasherArgon2ID, wantPrefix: "$argon2id$"},
		{name: "sha256", hasher: config.HasherSHA256, wantPrefix: "5e8848"},
		{name: "empty falls back to bcrypt", hasher: "", wantPrefix: "$2a$"},
		{name: "unknown", hasher: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Auth: &config.AuthConfig{
				Hasher:     tt.hasher,
				BcryptCost: bcrypt.MinCost,
				Argon2:     fastArgon2(),
			}}

			hasher, err := NewPasswordHasher(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown password hasher")

				return
			}
			require.NoError(t, err)

			digest, err := hasher.Hash("password")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(digest, tt.wantPrefix), digest)
			assert.True(t, hasher.Verify("password", digest))
		})
	}
}

func TestCompositeHasher_VerifiesEveryFormat(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{
		Hasher:     config.HasherArgon2ID,
		BcryptCost: bcrypt.MinCost,
		Argon2:     fastArgon2(),
	}}
	hasher, err := NewPasswordHasher(cfg)
	require.NoError(t, err)

	bcryptDigest, err := NewBcryptHasherWithCost(bcrypt.MinCost).Hash("password")
	require.NoError(t, err)
	argonDigest, err := NewArgon2Hasher(fastArgon2()).Hash("password")
	require.NoError(t, err)

	for _, digest := range []string{seedDigest, bcryptDigest, argonDigest} {
		assert.True(t, hasher.Verify("password", digest), digest)
		assert.False(t, hasher.Verify("wrong", digest), digest)
	}

	assert.False(t, hasher.Verify("password", "plaintext"))
	assert.False(t, hasher.Verify("password", ""))
}

func TestNewPasswordHasher_NilAuthSection(t *testing.T) {
	hasher, err := NewPasswordHasher(&config.Config{})
	require.NoError(t, err)
	assert.True(t, hasher.Verify("password", seedDigest))
}
