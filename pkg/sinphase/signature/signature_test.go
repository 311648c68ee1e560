package signature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder_XorConstant(t *testing.T) {
	s := Placeholder()

	assert.Equal(t, uint64(0xCAFEBABE), s.Sign(0))
	assert.Equal(t, uint64(0xCAFEBABC), s.Sign(2))
	assert.True(t, s.Verify(6, 6^PlaceholderConstant))
	assert.False(t, s.Verify(6, 5^PlaceholderConstant))
	assert.Equal(t, "placeholder", s.Name())
}

func TestHMAC_SignVerify(t *testing.T) {
	s, err := NewHMAC([]byte("trust-anchor"))
	require.NoError(t, err)

	for stage := 0; stage < 7; stage++ {
		sig := s.Sign(stage)
		assert.True(t, s.Verify(stage, sig), "stage %d", stage)
		assert.False(t, s.Verify(stage, sig^1), "stage %d flipped bit", stage)
		assert.NotEqual(t, Placeholder().Sign(stage), sig)
	}
	assert.NotEqual(t, s.Sign(0), s.Sign(1))
}

func TestHMAC_KeyMatters(t *testing.T) {
	a, err := NewHMAC([]byte("key-a"))
	require.NoError(t, err)
	b, err := NewHMAC([]byte("key-b"))
	require.NoError(t, err)

	assert.False(t, b.Verify(3, a.Sign(3)))
}

func TestHMAC_EmptyKey(t *testing.T) {
	_, err := NewHMAC(nil)
	assert.True(t, errors.Is(err, ErrEmptyKey))
}

func TestParse(t *testing.T) {
	s, err := Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, "placeholder", s.Name())

	s, err = Parse("HMAC", "00112233445566778899aabbccddeeff")
	require.NoError(t, err)
	assert.Equal(t, "hmac", s.Name())

	_, err = Parse("hmac", "not-hex")
	assert.Error(t, err)

	_, err = Parse("hmac", "")
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = Parse("rsa", "")
	assert.Error(t, err)
}
