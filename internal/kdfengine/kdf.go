// Copyright (c) 2026 The MFKDF Authors
//
//

// Package kdfengine implements the MFKDF KDF engine (spec section 4.3): a
// uniform entrypoint over pbkdf2, bcrypt, scrypt, and the three argon2
// variants, each returning a fixed-size key derived from caller-supplied
// input and salt. Every primitive comes from golang.org/x/crypto, the same
// module the teacher repo's hash/password packages build on.
package kdfengine

import (
	"fmt"

	mfkdfApperr "mfkdf/internal/apperr"
)

// Type names a supported KDF algorithm.
type Type string

const (
	PBKDF2   Type = "pbkdf2"
	Bcrypt   Type = "bcrypt"
	Scrypt   Type = "scrypt"
	Argon2i  Type = "argon2i"
	Argon2d  Type = "argon2d"
	Argon2id Type = "argon2id"
)

// Digest names a hash function used by the pbkdf2 variant.
type Digest string

const (
	SHA1   Digest = "sha1"
	SHA256 Digest = "sha256"
	SHA384 Digest = "sha384"
	SHA512 Digest = "sha512"
)

// Spec is the tagged union of KDF parameters (spec section 4.3's table).
// Only the fields relevant to Type are read; the rest are ignored.
type Spec struct {
	Type Type

	// pbkdf2
	Rounds int
	Digest Digest

	// bcrypt reuses Rounds as its cost factor.

	// scrypt
	N int
	R int
	P int

	// argon2i / argon2d / argon2id
	Time        uint32
	Memory      uint32
	Parallelism uint8
}

// Defaults returns the recommended parameters for t (spec section 6).
func Defaults(t Type) Spec {
	switch t {
	case PBKDF2:
		return Spec{Type: PBKDF2, Rounds: 310000, Digest: SHA256}
	case Bcrypt:
		return Spec{Type: Bcrypt, Rounds: 10}
	case Scrypt:
		return Spec{Type: Scrypt, N: 16384, R: 8, P: 1}
	case Argon2i, Argon2d, Argon2id:
		return Spec{Type: t, Time: 2, Memory: 24576, Parallelism: 1}
	default:
		return Spec{Type: Argon2id, Time: 2, Memory: 24576, Parallelism: 1}
	}
}

// Derive maps input to a size-byte key under spec, using salt as the KDF's
// salt parameter. It is the single entrypoint described in spec section 4.3.
func Derive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("kdfengine: size must be positive: %w", mfkdfApperr.ErrInvalidArgument)
	}

	var (
		key []byte
		err error
	)

	switch spec.Type {
	case PBKDF2:
		key, err = pbkdf2Derive(input, salt, size, spec)
	case Bcrypt:
		key, err = bcryptDerive(input, salt, size, spec)
	case Scrypt:
		key, err = scryptDerive(input, salt, size, spec)
	case Argon2i:
		key, err = argon2iDerive(input, salt, size, spec)
	case Argon2d:
		key, err = argon2dDerive(input, salt, size, spec)
	case Argon2id:
		key, err = argon2idDerive(input, salt, size, spec)
	default:
		return nil, fmt.Errorf("kdfengine: unknown kdf type %q: %w", spec.Type, mfkdfApperr.ErrInvalidArgument)
	}

	if err != nil {
		return nil, fmt.Errorf("kdfengine: %s: %v: %w", spec.Type, err, mfkdfApperr.ErrKdfFailure)
	}

	return key, nil
}
