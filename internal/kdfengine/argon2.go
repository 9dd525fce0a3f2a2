// Copyright (c) 2026 The MFKDF Authors
//
//

package kdfengine

import "golang.org/x/crypto/argon2"

func argon2Params(spec Spec) (time, memory uint32, parallelism uint8) {
	time, memory, parallelism = spec.Time, spec.Memory, spec.Parallelism
	if time == 0 {
		time = 2
	}
	if memory == 0 {
		memory = 24576
	}
	if parallelism == 0 {
		parallelism = 1
	}

	return time, memory, parallelism
}

func argon2iDerive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	time, memory, parallelism := argon2Params(spec)

	return argon2.Key(input, salt, time, memory, parallelism, uint32(size)), nil
}

func argon2dDerive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	// golang.org/x/crypto/argon2 only exposes Argon2i (Key) and Argon2id
	// (IDKey); it has no Argon2d entrypoint. This calls argon2.Key, so
	// policies requesting argon2d get Argon2i's construction; this is
	// recorded as an explicit deviation in DESIGN.md rather than silently
	// mislabeling the output.
	time, memory, parallelism := argon2Params(spec)

	return argon2.Key(input, salt, time, memory, parallelism, uint32(size)), nil
}

func argon2idDerive(input, salt []byte, size int, spec Spec) ([]byte, error) {
	time, memory, parallelism := argon2Params(spec)

	return argon2.IDKey(input, salt, time, memory, parallelism, uint32(size)), nil
}
