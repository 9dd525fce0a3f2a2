// Copyright (c) 2026 The MFKDF Authors
//
//

// Package sharing implements Shamir secret sharing over GF(2^8), byte-wise,
// with deterministic share indices (share i's x-coordinate is i+1, its
// position in the factor list) rather than the random x-coordinates used by
// HashiCorp Vault's shamir package. MFKDF policies store factors in a fixed
// order, so the share index is already known from policy position and never
// needs to be carried in-band with the share bytes.
package sharing

import (
	"crypto/rand"
	"fmt"

	mfkdfField "mfkdf/internal/field"
)

// Share returns n shares of secret, any t of which reconstruct it via
// Combine. Requires 1 <= t <= n and a non-empty secret. Every returned
// share has the same length as secret.
func Share(secret []byte, t, n int) ([][]byte, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("sharing: secret must not be empty")
	}
	if t < 1 {
		return nil, fmt.Errorf("sharing: threshold must be at least 1")
	}
	if n < t {
		return nil, fmt.Errorf("sharing: n must be >= threshold")
	}
	if n > 255 {
		return nil, fmt.Errorf("sharing: n must not exceed 255")
	}

	shares := make([][]byte, n)
	for i := range shares {
		shares[i] = make([]byte, len(secret))
	}

	if t == 1 {
		// Degree-0 polynomial: every share equals the secret byte.
		for i := range shares {
			copy(shares[i], secret)
		}

		return shares, nil
	}

	coefficients := make([]byte, t-1)
	for byteIdx, secretByte := range secret {
		if _, err := rand.Read(coefficients); err != nil {
			return nil, fmt.Errorf("sharing: generating polynomial coefficients: %w", err)
		}

		for i := 0; i < n; i++ {
			x := uint8(i + 1)
			shares[i][byteIdx] = evaluate(secretByte, coefficients, x)
		}
	}

	return shares, nil
}

// evaluate computes P(x) for the polynomial with intercept and the given
// higher-degree coefficients (coefficients[0] is the x^1 term), via
// Horner's method.
func evaluate(intercept byte, coefficients []byte, x uint8) uint8 {
	out := byte(0)
	for i := len(coefficients) - 1; i >= 0; i-- {
		out = mfkdfField.Add(mfkdfField.Mult(out, x), coefficients[i])
	}

	return mfkdfField.Add(mfkdfField.Mult(out, x), intercept)
}

// Combine reconstructs the secret from partial, a slice of length n where
// partial[i] is share i+1's bytes or nil if not supplied. Requires at least
// t non-nil entries, all of the same length.
func Combine(partial [][]byte, t, n int) ([]byte, error) {
	xs, ys, size, err := samplePoints(partial, n)
	if err != nil {
		return nil, err
	}
	if len(xs) < t {
		return nil, fmt.Errorf("sharing: need at least %d shares, got %d", t, len(xs))
	}

	secret := make([]byte, size)
	for byteIdx := range secret {
		column := make([]uint8, len(ys))
		for i, y := range ys {
			column[i] = y[byteIdx]
		}

		secret[byteIdx] = interpolate(xs, column, 0)
	}

	return secret, nil
}

// Recover reconstructs the full n-share vector from partial (same shape as
// Combine's input), filling in any missing entries by evaluating the
// interpolated polynomial at their index. Requires at least t non-nil
// entries.
func Recover(partial [][]byte, t, n int) ([][]byte, error) {
	xs, ys, size, err := samplePoints(partial, n)
	if err != nil {
		return nil, err
	}
	if len(xs) < t {
		return nil, fmt.Errorf("sharing: need at least %d shares, got %d", t, len(xs))
	}

	full := make([][]byte, n)
	for i := 0; i < n; i++ {
		if partial[i] != nil {
			full[i] = append([]byte(nil), partial[i]...)
			continue
		}

		x := uint8(i + 1)
		share := make([]byte, size)
		for byteIdx := range share {
			column := make([]uint8, len(ys))
			for k, y := range ys {
				column[k] = y[byteIdx]
			}

			share[byteIdx] = interpolate(xs, column, x)
		}
		full[i] = share
	}

	return full, nil
}

// samplePoints extracts the non-nil (x, y) points from partial, validating
// that every present share has a consistent length.
func samplePoints(partial [][]byte, n int) (xs []uint8, ys [][]byte, size int, err error) {
	if len(partial) != n {
		return nil, nil, 0, fmt.Errorf("sharing: partial has %d entries, want %d", len(partial), n)
	}

	for i, share := range partial {
		if share == nil {
			continue
		}

		if size == 0 {
			size = len(share)
		} else if len(share) != size {
			return nil, nil, 0, fmt.Errorf("sharing: share %d has length %d, want %d", i, len(share), size)
		}

		xs = append(xs, uint8(i+1))
		ys = append(ys, share)
	}

	return xs, ys, size, nil
}

// interpolate evaluates the Lagrange interpolation of the given points at x.
func interpolate(xs []uint8, ys []uint8, x uint8) uint8 {
	var result uint8

	for i := range xs {
		basis := uint8(1)
		for j := range xs {
			if i == j {
				continue
			}

			num := mfkdfField.Add(x, xs[j])
			denom := mfkdfField.Add(xs[i], xs[j])
			basis = mfkdfField.Mult(basis, mfkdfField.Div(num, denom))
		}

		result = mfkdfField.Add(result, mfkdfField.Mult(ys[i], basis))
	}

	return result
}
