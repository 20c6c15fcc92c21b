package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Encode("a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	subject, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	issued := time.Now().Add(-2 * time.Hour)
	codec.now = func() time.Time { return issued }
	token, err := codec.Encode("a@b.com")
	require.NoError(t, err)

	// still inside the window from the issuer's point of view
	subject, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", subject)

	codec.now = time.Now
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Tampered(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Encode("a@b.com")
	require.NoError(t, err)

	// the final byte only carries base64 padding bits, so stop short of it
	for _, offset := range []int{0, len(token) / 2, len(token) - 2} {
		mutated := []byte(token)
		if mutated[offset] == 'A' {
			mutated[offset] = 'B'
		} else {
			mutated[offset] = 'A'
		}
		_, err := codec.Decode(string(mutated))
		assert.ErrorIs(t, err, ErrInvalidToken, "offset %d", offset)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-one", time.Hour).Encode("a@b.com")
	require.NoError(t, err)

	_, err = NewTokenCodec("secret-two", time.Hour).Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := codec.Decode(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestNewTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("test-secret", 0)
	assert.Equal(t, DefaultTokenTTL, codec.ttl)
}
