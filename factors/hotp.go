// Copyright (c) 2026 The MFKDF Authors
//
//

package factors

import (
	"encoding/base32"
	"encoding/json"
	"fmt"

	"github.com/pquerna/otp/hotp"

	"mfkdf"
)

// hotpParams is the per-factor params an HOTP policy slot stores: the next
// counter value to present (spec section 9's rotation example).
type hotpParams struct {
	Counter uint64 `json:"counter"`
}

// SetupHOTP builds a setup-side HOTP challenge-response factor from a raw
// secret (spec section 8 scenario 4). Output exposes the code for counter
// 0 so a caller can display or verify the initial value.
func SetupHOTP(id string, secret []byte) (mfkdf.SetupFactor, error) {
	code, err := Code(secret, 0)
	if err != nil {
		return mfkdf.SetupFactor{}, err
	}

	return mfkdf.SetupFactor{
		Type:    "hotp",
		ID:      id,
		Data:    append([]byte(nil), secret...),
		Entropy: float64(len(secret) * 8),
		Params:  mfkdf.StaticParams(mustMarshal(hotpParams{Counter: 0})),
		Output: func() (map[string]any, error) {
			return map[string]any{"code": code}, nil
		},
	}, nil
}

// DeriveHOTP returns a derive-side producer supplying secret as the
// factor's material and advancing its stored counter by one on success
// (spec section 4.7 step 7's rotation).
func DeriveHOTP(secret []byte) mfkdf.DeriveProducer {
	return func(params json.RawMessage) (mfkdf.DeriveMaterial, error) {
		var p hotpParams
		if err := json.Unmarshal(params, &p); err != nil {
			return mfkdf.DeriveMaterial{}, fmt.Errorf("factors: decoding hotp params: %w", err)
		}

		next := p.Counter + 1

		return mfkdf.DeriveMaterial{
			Type: "hotp",
			Data: append([]byte(nil), secret...),
			Params: mfkdf.RotatingParams(func(mfkdf.Context) (json.RawMessage, error) {
				return mustMarshal(hotpParams{Counter: next}), nil
			}),
		}, nil
	}
}

// Code computes the HOTP passcode for secret at counter, using the
// library's default 6-digit SHA1 parameters.
func Code(secret []byte, counter uint64) (string, error) {
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret)

	code, err := hotp.GenerateCode(encoded, counter)
	if err != nil {
		return "", fmt.Errorf("factors: generating hotp code: %w", err)
	}

	return code, nil
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("factors: marshaling %T: %v", v, err))
	}

	return raw
}
