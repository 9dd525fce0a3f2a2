// Copyright (c) 2026 The MFKDF Authors
//
//

package factors

import (
	"encoding/json"

	"mfkdf"
)

// SetupRecovery builds a setup-side recovery factor. At setup time it is
// stretched like any other factor; its pad is computed from its share and
// data the same way (spec section 4.4). Recovery happens later via DeriveRecovery, which
// supplies the raw share a caller saved off DerivedKey.Shares at setup
// time, bypassing stretching entirely (spec section 4.5).
func SetupRecovery(id string, data []byte) mfkdf.SetupFactor {
	return mfkdf.SetupFactor{
		Type:    "persisted",
		ID:      id,
		Data:    append([]byte(nil), data...),
		Entropy: float64(len(data) * 8),
		Params:  mfkdf.StaticParams(json.RawMessage("{}")),
	}
}

// DeriveRecovery returns a derive-side producer that supplies share
// directly as the factor's share, bypassing HKDF stretching. share is the
// value recorded at index i in the DerivedKey.Shares returned by the
// original Setup call (spec section 3's "persisted" derive-side variant).
func DeriveRecovery(share []byte) mfkdf.DeriveProducer {
	return func(params json.RawMessage) (mfkdf.DeriveMaterial, error) {
		return mfkdf.DeriveMaterial{
			Type:   "persisted",
			Data:   append([]byte(nil), share...),
			Params: mfkdf.StaticParams(params),
		}, nil
	}
}
