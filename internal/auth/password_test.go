package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "secret123")

	assert.True(t, hasher.Verify("secret123", hash))
	assert.False(t, hasher.Verify("secret124", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("secret123", ""))
	assert.False(t, hasher.Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Verify("secret123", "$2a$garbage"))
}

func TestNewPasswordHasher_CostOutOfRange(t *testing.T) {
	hasher := NewPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(-1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
