// Copyright (c) 2026 The MFKDF Authors
//
//

package kdfengine

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

func scryptDerive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	n, r, p := spec.N, spec.R, spec.P
	if n == 0 {
		n = 16384
	}
	if r == 0 {
		r = 8
	}
	if p == 0 {
		p = 1
	}

	key, err := scrypt.Key(input, salt, n, r, p, size)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w", err)
	}

	return key, nil
}
