package auth

import (
	"testing"

	"guideflow/config"

	"github.com/stretchr/testify/assert"
)

func newHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	password := "pw123456"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// The stored hash is never the plaintext.
	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))
	password := "pw123456"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong-password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	first, err := hasher.Hash("pw123456")
	assert.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	assert.NoError(t, err)

	// Same plaintext, different salts.
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	// Nil auth config falls back to the bcrypt default cost.
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("pw123456")
	assert.NoError(t, err)
	assert.True(t, hasher.Check("pw123456", hash))
}
