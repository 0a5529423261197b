package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hashed, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)
	require.NotEqual(t, "sup3rsecret", hashed)

	require.True(t, hasher.Compare("sup3rsecret", hashed))
	require.False(t, hasher.Compare("wrongsecret", hashed))
}

func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := NewBcryptHasher(4)

	first, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)
	second, err := hasher.Hash("sup3rsecret")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestNewBcryptHasher_ClampsCost(t *testing.T) {
	hashed, err := NewBcryptHasher(1000).Hash("sup3rsecret")
	require.NoError(t, err)
	require.True(t, NewBcryptHasher(1000).Compare("sup3rsecret", hashed))
}
