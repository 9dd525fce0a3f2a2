package pad_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mfkdfPad "mfkdf/internal/pad"
)

func TestMakeInvertRoundTrip(t *testing.T) {
	t.Parallel()

	share := []byte("0123456789abcdef")
	material := []byte("hello world")

	p, err := mfkdfPad.Make(share, material, len(share))
	require.NoError(t, err)
	require.Len(t, p, len(share))
	require.NotEqual(t, share, p, "pad should not equal the raw share")

	recovered, err := mfkdfPad.Invert(p, material, len(share))
	require.NoError(t, err)
	require.Equal(t, share, recovered)
}

func TestInvertWithWrongMaterialGivesWrongShare(t *testing.T) {
	t.Parallel()

	share := []byte("sixteen-byte-sh!")
	p, err := mfkdfPad.Make(share, []byte("correct material"), len(share))
	require.NoError(t, err)

	recovered, err := mfkdfPad.Invert(p, []byte("wrong material!!"), len(share))
	require.NoError(t, err)
	require.NotEqual(t, share, recovered)
}

func TestMakeWidensStretchedToLongerShare(t *testing.T) {
	t.Parallel()

	size := 16
	share := make([]byte, size+1) // one byte longer than size
	share[0] = 0x00
	for i := 1; i < len(share); i++ {
		share[i] = byte(i)
	}

	material := []byte("factor material")

	p, err := mfkdfPad.Make(share, material, size)
	require.NoError(t, err)
	require.Len(t, p, len(share))

	recovered, err := mfkdfPad.Invert(p, material, size)
	require.NoError(t, err)
	require.Equal(t, share, recovered)
}

func TestStretchIsDeterministic(t *testing.T) {
	t.Parallel()

	a, err := mfkdfPad.Stretch([]byte("material"), 32)
	require.NoError(t, err)
	b, err := mfkdfPad.Stretch([]byte("material"), 32)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)

	c, err := mfkdfPad.Stretch([]byte("different"), 32)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}
