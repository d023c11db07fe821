package auth

import (
	"strings"
	"testing"

	"vidtube/config"
	"vidtube/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArgon2Params = Argon2Params{
	MemoryKiB:   1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("Correct horse battery staple", hash))
}

func TestArgon2Hasher_RejectsMalformedHashes(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	for _, hash := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=1024,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0$aGFzaGhhc2hoYXNoaGFzaA",
		"$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaGhhc2hoYXNoaGFzaA",
	} {
		assert.False(t, hasher.Check("password", hash), hash)
	}
}

func TestArgon2Hasher_RefusesExpensiveParameters(t *testing.T) {
	expensive := testArgon2Params
	expensive.MemoryKiB = testArgon2Params.MemoryKiB * 4

	hash, err := NewArgon2Hasher(expensive).Hash("password")
	require.NoError(t, err)

	assert.False(t, NewArgon2Hasher(testArgon2Params).Check("password", hash))
}

func TestNewPasswordHasher(t *testing.T) {
	bcryptCfg := &config.Config{Auth: &config.AuthConfig{Hasher: config.HasherBcrypt, BcryptCost: 5}}
	h, err := NewPasswordHasher(bcryptCfg)
	require.NoError(t, err)
	assert.IsType(t, &bcryptHasher{}, h)

	argonCfg := &config.Config{Auth: &config.AuthConfig{Hasher: config.HasherArgon2id}}
	h, err = NewPasswordHasher(argonCfg)
	require.NoError(t, err)
	assert.IsType(t, &argon2Hasher{}, h)

	_, err = NewPasswordHasher(&config.Config{Auth: &config.AuthConfig{Hasher: "md5"}})
	assert.Error(t, err)
}

func TestArgon2Hasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewArgon2Hasher(testArgon2Params)

	assert.NoError(t, hasher.ValidatePasswordStrength("P@ss1"))
	assert.ErrorIs(t, hasher.ValidatePasswordStrength(""), service.ErrPasswordEmpty)
	assert.ErrorIs(t, hasher.ValidatePasswordStrength(strings.Repeat("a", service.MaxPasswordBytes+1)), service.ErrPasswordTooLong)
}
