// Copyright (c) 2026 The MFKDF Authors
//
//

package factors

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"mfkdf"
)

// uuidEntropyBits is a UUIDv4's effective entropy: 122 bits (6 of its 128
// bits are fixed version/variant bits).
const uuidEntropyBits = 122

// SetupUUID builds a setup-side recovery factor from a UUID (spec section
// 8 scenario 4's "uuid" factor). Output exposes the UUID's canonical
// string form, since the raw 16 bytes alone aren't meaningful to a caller.
func SetupUUID(id string, u uuid.UUID) mfkdf.SetupFactor {
	data := append([]byte(nil), u[:]...)

	return mfkdf.SetupFactor{
		Type:    "uuid",
		ID:      id,
		Data:    data,
		Entropy: uuidEntropyBits,
		Params:  mfkdf.StaticParams(json.RawMessage("{}")),
		Output: func() (map[string]any, error) {
			return map[string]any{"uuid": u.String()}, nil
		},
	}
}

// DeriveUUID returns a derive-side producer supplying u's raw bytes as the
// factor's material.
func DeriveUUID(u uuid.UUID) mfkdf.DeriveProducer {
	return func(params json.RawMessage) (mfkdf.DeriveMaterial, error) {
		return mfkdf.DeriveMaterial{
			Type:   "uuid",
			Data:   append([]byte(nil), u[:]...),
			Params: mfkdf.StaticParams(params),
		}, nil
	}
}

// ParseUUID is a convenience wrapper over uuid.Parse for callers wiring up
// a recovery factor from a stored string.
func ParseUUID(s string) (uuid.UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("factors: parsing uuid: %w", err)
	}

	return u, nil
}
