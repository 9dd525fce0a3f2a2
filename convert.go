// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import (
	mfkdfKdfengine "mfkdf/internal/kdfengine"
	mfkdfPolicy "mfkdf/internal/policy"
)

// kdfSpecToPolicy converts a KDFSpec (the tagged union Setup/Derive work
// with) to the wire KDF shape stored in a Policy.
func kdfSpecToPolicy(spec KDFSpec) mfkdfPolicy.KDF {
	return mfkdfPolicy.KDF{
		Type:        string(spec.Type),
		Rounds:      spec.Rounds,
		Digest:      string(spec.Digest),
		N:           spec.N,
		R:           spec.R,
		P:           spec.P,
		Time:        spec.Time,
		Memory:      spec.Memory,
		Parallelism: spec.Parallelism,
	}
}

// policyToKDFSpec is the inverse of kdfSpecToPolicy, used by Derive to feed
// a policy's stored KDF parameters back into the KDF engine.
func policyToKDFSpec(kdf mfkdfPolicy.KDF) KDFSpec {
	return KDFSpec{
		Type:        mfkdfKdfengine.Type(kdf.Type),
		Rounds:      kdf.Rounds,
		Digest:      mfkdfKdfengine.Digest(kdf.Digest),
		N:           kdf.N,
		R:           kdf.R,
		P:           kdf.P,
		Time:        kdf.Time,
		Memory:      kdf.Memory,
		Parallelism: kdf.Parallelism,
	}
}
