package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashers(t *testing.T) {
	tests := []struct {
		name    string
		saltLen int
		hashLen int
	}{
		{MACHMACSHA512, 128, 64},
		{MACBlake2b512, 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, h.Name())

			salt, err := h.NewSalt()
			require.NoError(t, err)
			assert.Len(t, salt, tt.saltLen)

			hash, err := h.Hash("Secret123!", salt)
			require.NoError(t, err)
			assert.Len(t, hash, tt.hashLen)

			assert.True(t, Verify(h, "Secret123!", salt, hash))
			assert.False(t, Verify(h, "secret123!", salt, hash))
			assert.False(t, Verify(h, "Secret123!", salt, hash[:10]))

			other, err := h.NewSalt()
			require.NoError(t, err)
			assert.False(t, Verify(h, "Secret123!", other, hash), "salt must change the hash")
		})
	}
}

func TestNewHasher_DefaultAndUnknown(t *testing.T) {
	h, err := NewHasher("")
	require.NoError(t, err)
	assert.Equal(t, MACHMACSHA512, h.Name())

	_, err = NewHasher("md5")
	assert.Error(t, err)
}

func TestHasherForSalt(t *testing.T) {
	for _, name := range []string{MACHMACSHA512, MACBlake2b512} {
		h, err := NewHasher(name)
		require.NoError(t, err)
		salt, err := h.NewSalt()
		require.NoError(t, err)

		got, err := HasherForSalt(salt)
		require.NoError(t, err)
		assert.Equal(t, name, got.Name())
	}

	_, err := HasherForSalt(make([]byte, 16))
	assert.Error(t, err)
}
