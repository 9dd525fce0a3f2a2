// Copyright (c) 2026 The MFKDF Authors
//
//

// Package factors provides reference implementations of the MFKDF factor
// contract (password, UUID, HOTP, and persisted recovery shares). They are
// thin wrappers around caller-supplied material; none of them is part of
// the core and a caller is free to implement the contract directly instead
// (spec section 1 scopes factor input collection out of the core).
package factors

import (
	"encoding/json"

	"mfkdf"
)

// passwordEntropyBitsPerChar approximates a mixed-case alphanumeric-plus-
// symbol character set (log2(95)), used only for EntropyBits reporting.
const passwordEntropyBitsPerChar = 6.57

// SetupPassword builds a setup-side password factor. Params are static and
// empty: passwords carry no challenge state to rotate.
func SetupPassword(id, password string) mfkdf.SetupFactor {
	return mfkdf.SetupFactor{
		Type:    "password",
		ID:      id,
		Data:    []byte(password),
		Entropy: float64(len(password)) * passwordEntropyBitsPerChar,
		Params:  mfkdf.StaticParams(json.RawMessage("{}")),
	}
}

// DerivePassword returns a derive-side producer supplying password as the
// factor's material.
func DerivePassword(password string) mfkdf.DeriveProducer {
	return func(params json.RawMessage) (mfkdf.DeriveMaterial, error) {
		return mfkdf.DeriveMaterial{
			Type:   "password",
			Data:   []byte(password),
			Params: mfkdf.StaticParams(params),
		}, nil
	}
}
