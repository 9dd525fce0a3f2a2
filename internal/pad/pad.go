// Copyright (c) 2026 The MFKDF Authors
//
//

// Package pad implements the MFKDF pad construction and inversion (spec
// sections 4.4 and 4.5): blending a Shamir share with a factor's
// HKDF-SHA512-stretched material into a publicly storable "pad", and
// reversing that blend given the factor's material again.
package pad

import (
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"crypto/sha512"
)

// Stretch expands material to size bytes via HKDF-SHA512 with an empty salt
// and empty info, per spec section 4.4 step 1.
func Stretch(material []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pad: size must be positive")
	}

	out := make([]byte, size)
	reader := hkdf.New(sha512.New, material, nil, nil)
	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("pad: stretching material: %w", err)
	}

	return out, nil
}

// Make computes the pad for a factor at share-length len(share): stretches
// material to size bytes, left-pads the stretched value with zeros if
// len(share) exceeds size, then XORs with share. size is the policy's
// configured key size, which may be shorter than len(share) when the share
// representation carries overhead (spec section 4.1).
func Make(share, material []byte, size int) ([]byte, error) {
	stretched, err := Stretch(material, size)
	if err != nil {
		return nil, err
	}

	widened := leftPadTo(stretched, len(share))

	return xor(share, widened), nil
}

// Invert recovers the share from a stored pad and the factor's material,
// the inverse of Make (spec section 4.5).
func Invert(pad, material []byte, size int) ([]byte, error) {
	stretched, err := Stretch(material, size)
	if err != nil {
		return nil, err
	}

	widened := leftPadTo(stretched, len(pad))

	return xor(pad, widened), nil
}

// leftPadTo prepends zero bytes to b until it is n bytes long. If b is
// already n bytes or longer, b is returned unchanged (the spec's "widen the
// shorter operand" rule never truncates).
func leftPadTo(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}

	out := make([]byte, n)
	copy(out[n-len(b):], b)

	return out
}

// xor returns a XOR b, panicking if the lengths differ: callers are
// responsible for widening operands to equal length first.
func xor(a, b []byte) []byte {
	if len(a) != len(b) {
		panic(fmt.Sprintf("pad: xor length mismatch: %d != %d", len(a), len(b)))
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}

	return out
}
