// Copyright (c) 2026 The MFKDF Authors
//
//

package kdfengine

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/hkdf"
)

// magicCipherData is bcrypt's well-known "OrpheanBeholderScryDoubt" constant,
// the three 8-byte blocks that seed the expensive key schedule's output
// transform.
var magicCipherData = [24]byte{
	0x4f, 0x72, 0x70, 0x68, 0x65, 0x61, 0x6e, 0x42,
	0x65, 0x68, 0x6f, 0x6c, 0x64, 0x65, 0x72, 0x53,
	0x63, 0x72, 0x79, 0x44, 0x6f, 0x75, 0x62, 0x74,
}

// bcryptDerive adapts bcrypt to the KDF(input, salt, size, spec) contract.
// golang.org/x/crypto/bcrypt only exposes password hashing with an
// internally-generated random salt, which cannot reproduce a deterministic
// KDF output for a caller-supplied salt. This implements bcrypt's expensive
// key schedule directly on top of golang.org/x/crypto/blowfish's exported
// NewSaltedCipher/ExpandKey (the same building blocks the bcrypt package
// itself is built from), producing the standard 24-byte raw bcrypt digest
// for an arbitrary salt and cost. That 24-byte digest is then expanded or
// truncated to size via HKDF-SHA256, since size is rarely exactly 24.
func bcryptDerive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	rounds := spec.Rounds
	if rounds <= 0 {
		rounds = 10
	}
	if rounds < 4 || rounds > 31 {
		return nil, fmt.Errorf("bcrypt rounds must be in [4, 31], got %d", rounds)
	}

	bcryptSalt := normalizeBcryptSalt(salt)

	digest, err := bcryptRaw(input, bcryptSalt, rounds)
	if err != nil {
		return nil, err
	}

	key := make([]byte, size)
	kdfReader := hkdf.New(sha256.New, digest[:], nil, nil)
	if _, err := kdfReader.Read(key); err != nil {
		return nil, fmt.Errorf("expanding bcrypt digest: %w", err)
	}

	return key, nil
}

// normalizeBcryptSalt maps an arbitrary-length salt to bcrypt's required
// 16-byte salt via SHA-256, truncated. Salts that are already 16 bytes pass
// through unchanged.
func normalizeBcryptSalt(salt []byte) []byte {
	if len(salt) == 16 {
		return salt
	}

	sum := sha256.Sum256(salt)

	return sum[:16]
}

// bcryptRaw computes bcrypt's core 24-byte digest for password, a 16-byte
// salt, and a cost factor (2^cost expensive key schedule iterations).
func bcryptRaw(password, salt []byte, cost int) ([24]byte, error) {
	var out [24]byte

	// bcrypt keys the cipher with the password plus a trailing NUL byte.
	key := append(append([]byte(nil), password...), 0)

	cipher, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return out, fmt.Errorf("blowfish salted cipher: %w", err)
	}

	rounds := 1 << uint(cost)
	for i := 0; i < rounds; i++ {
		blowfish.ExpandKey(key, cipher)
		blowfish.ExpandKey(salt, cipher)
	}

	copy(out[:], magicCipherData[:])
	for block := 0; block < 24; block += 8 {
		for i := 0; i < 64; i++ {
			cipher.Encrypt(out[block:block+8], out[block:block+8])
		}
	}

	return out, nil
}
