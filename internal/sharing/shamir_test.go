package sharing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mfkdfSharing "mfkdf/internal/sharing"
)

func TestShareCombineRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("0123456789abcdef")
	shares, err := mfkdfSharing.Share(secret, 2, 3)
	require.NoError(t, err)
	require.Len(t, shares, 3)

	for _, s := range shares {
		require.Len(t, s, len(secret))
	}

	subsets := [][]int{{0, 1}, {0, 2}, {1, 2}, {0, 1, 2}}
	for _, subset := range subsets {
		partial := make([][]byte, 3)
		for _, idx := range subset {
			partial[idx] = shares[idx]
		}

		got, err := mfkdfSharing.Combine(partial, 2, 3)
		require.NoError(t, err)
		require.Equal(t, secret, got)
	}
}

func TestShareInsufficientSharesFails(t *testing.T) {
	t.Parallel()

	secret := []byte("shortsecret12345")
	shares, err := mfkdfSharing.Share(secret, 3, 5)
	require.NoError(t, err)

	partial := make([][]byte, 5)
	partial[0] = shares[0]
	partial[1] = shares[1]

	_, err = mfkdfSharing.Combine(partial, 3, 5)
	require.Error(t, err)
}

func TestThresholdOneEveryShareIsSecret(t *testing.T) {
	t.Parallel()

	secret := []byte("abcdefghijklmnop")
	shares, err := mfkdfSharing.Share(secret, 1, 4)
	require.NoError(t, err)

	for _, s := range shares {
		require.Equal(t, secret, s)
	}
}

func TestRecoverReconstructsFullVector(t *testing.T) {
	t.Parallel()

	secret := []byte("recoverme1234567")
	shares, err := mfkdfSharing.Share(secret, 2, 4)
	require.NoError(t, err)

	partial := make([][]byte, 4)
	partial[1] = shares[1]
	partial[3] = shares[3]

	full, err := mfkdfSharing.Recover(partial, 2, 4)
	require.NoError(t, err)
	require.Len(t, full, 4)

	for i, s := range shares {
		require.Equal(t, s, full[i], "recovered share %d should match original", i)
	}
}

func TestShareRejectsEmptySecret(t *testing.T) {
	t.Parallel()

	_, err := mfkdfSharing.Share(nil, 1, 1)
	require.Error(t, err)
}

func TestShareRejectsThresholdGreaterThanN(t *testing.T) {
	t.Parallel()

	_, err := mfkdfSharing.Share([]byte("secret"), 3, 2)
	require.Error(t, err)
}

func TestCombineOrderIndependence(t *testing.T) {
	t.Parallel()

	secret := []byte("orderindependent")
	shares, err := mfkdfSharing.Share(secret, 3, 5)
	require.NoError(t, err)

	partialA := make([][]byte, 5)
	partialA[0] = shares[0]
	partialA[2] = shares[2]
	partialA[4] = shares[4]

	partialB := make([][]byte, 5)
	partialB[4] = shares[4]
	partialB[0] = shares[0]
	partialB[2] = shares[2]

	gotA, err := mfkdfSharing.Combine(partialA, 3, 5)
	require.NoError(t, err)
	gotB, err := mfkdfSharing.Combine(partialB, 3, 5)
	require.NoError(t, err)

	require.Equal(t, gotA, gotB)
	require.Equal(t, secret, gotA)
}
