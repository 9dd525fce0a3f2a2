// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

// Zeroize overwrites each of bufs with zero bytes. Factor implementations
// holding their own copies of secret material (spec section 5: "data,
// secret, shares, stretched, key MUST be scrubbed on drop") can use this
// after a Setup or Derive call returns.
func Zeroize(bufs ...[]byte) {
	for _, b := range bufs {
		zero(b)
	}
}
