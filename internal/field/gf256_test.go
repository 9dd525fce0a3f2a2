package field_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	mfkdfField "mfkdf/internal/field"
)

func TestAddIsXor(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint8(0x00), mfkdfField.Add(0x5a, 0x5a))
	require.Equal(t, uint8(0xa5), mfkdfField.Add(0x00, 0xa5))
	require.Equal(t, uint8(0x5a^0x3e), mfkdfField.Add(0x5a, 0x3e))
}

func TestMultByZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint8(0), mfkdfField.Mult(0, 0x42))
	require.Equal(t, uint8(0), mfkdfField.Mult(0x42, 0))
}

func TestMultByOneIsIdentity(t *testing.T) {
	t.Parallel()

	for x := 1; x < 256; x++ {
		require.Equal(t, uint8(x), mfkdfField.Mult(uint8(x), 1))
	}
}

func TestDivByOneIsIdentity(t *testing.T) {
	t.Parallel()

	for x := 0; x < 256; x++ {
		require.Equal(t, uint8(x), mfkdfField.Div(uint8(x), 1))
	}
}

func TestDivByZeroPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		mfkdfField.Div(1, 0)
	})
}

func TestMultDivRoundTrip(t *testing.T) {
	t.Parallel()

	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			product := mfkdfField.Mult(uint8(a), uint8(b))
			require.Equal(t, uint8(a), mfkdfField.Div(product, uint8(b)))
		}
	}
}
