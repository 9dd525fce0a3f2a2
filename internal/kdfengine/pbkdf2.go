// Copyright (c) 2026 The MFKDF Authors
//
//

package kdfengine

import (
	"crypto/sha1" //nolint:gosec // pbkdf2/sha1 is a supported, spec-pinned digest choice, not used for signatures.
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

func pbkdf2Derive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	var newHash func() hash.Hash

	switch spec.Digest {
	case SHA1:
		newHash = sha1.New
	case SHA256, "":
		newHash = sha256.New
	case SHA384:
		newHash = sha512.New384
	case SHA512:
		newHash = sha512.New
	default:
		return nil, fmt.Errorf("unknown pbkdf2 digest %q", spec.Digest)
	}

	if spec.Rounds <= 0 {
		return nil, fmt.Errorf("pbkdf2 rounds must be positive, got %d", spec.Rounds)
	}

	return pbkdf2.Key(input, salt, spec.Rounds, size, newHash), nil
}
