// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	mfkdfKdfengine "mfkdf/internal/kdfengine"
	mfkdfPad "mfkdf/internal/pad"
	mfkdfPolicy "mfkdf/internal/policy"
	mfkdfSharing "mfkdf/internal/sharing"
)

// Derive reconstructs the key for p using whichever producers in the
// producers map (keyed by factor id) can be invoked (spec section 4.7).
// Producers for ids with no policy slot are ignored. At least p.Threshold
// of them must successfully yield a share, or Derive fails with
// ErrInsufficientShares. ctx is checked for cancellation between factors.
func Derive(ctx context.Context, p *Policy, producers map[string]DeriveProducer, opts DeriveOptions) (*DerivedKey, error) {
	raw, err := p.Serialize()
	if err != nil {
		return nil, fmt.Errorf("mfkdf: %w", err)
	}
	if err := mfkdfPolicy.ValidateBytes(raw); err != nil {
		return nil, err
	}

	if len(producers) < p.Threshold {
		return nil, fmt.Errorf("mfkdf: %d producers supplied, threshold %d: %w", len(producers), p.Threshold, ErrInsufficientShares)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	salt, err := base64.StdEncoding.DecodeString(p.Salt)
	if err != nil {
		return nil, fmt.Errorf("mfkdf: decoding salt: %w", ErrInvalidPolicy)
	}

	n := len(p.Factors)
	partial := make([][]byte, n)
	rotate := make([]Action, n)
	supplied := make([]bool, n)
	nonNil := 0

	for i, pf := range p.Factors {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("mfkdf: %w", ErrCancelled)
		default:
		}

		producer, ok := producers[pf.ID]
		if !ok {
			continue
		}

		material, err := producer(pf.Params)
		if err != nil {
			return nil, fmt.Errorf("mfkdf: factor %q: %w", pf.ID, err)
		}

		share, err := recoverShare(pf, material, p.Size)
		if err != nil {
			return nil, err
		}

		partial[i] = share
		rotate[i] = material.Params
		supplied[i] = true
		nonNil++

		logger.Debug("mfkdf factor derive complete", "id", pf.ID, "type", pf.Type)
	}

	if nonNil < p.Threshold {
		return nil, fmt.Errorf("mfkdf: %d factors supplied, threshold %d: %w", nonNil, p.Threshold, ErrInsufficientShares)
	}

	secret, err := mfkdfSharing.Combine(partial, p.Threshold, n)
	if err != nil {
		return nil, fmt.Errorf("mfkdf: %w", err)
	}

	key, err := mfkdfKdfengine.Derive(secret, salt, p.Size, policyToKDFSpec(p.KDF))
	if err != nil {
		return nil, err
	}

	newPolicy := mfkdfPolicy.Clone(p)
	factorCtx := Context{Key: key}

	for i := range newPolicy.Factors {
		if !supplied[i] {
			continue
		}

		resolved, err := rotate[i].Resolve(factorCtx)
		if err != nil {
			return nil, fmt.Errorf("mfkdf: factor %q: rotating params: %w", p.Factors[i].ID, err)
		}

		newPolicy.Factors[i].Params = resolved
	}

	fullShares, err := mfkdfSharing.Recover(partial, p.Threshold, n)
	if err != nil {
		return nil, fmt.Errorf("mfkdf: %w", err)
	}

	logger.Info("mfkdf derive complete", "id", p.ID)

	return &DerivedKey{
		Policy: newPolicy,
		Key:    key,
		Secret: secret,
		Shares: fullShares,
	}, nil
}

// recoverShare inverts one policy factor slot's pad against the supplied
// material, or takes the share directly for persisted recovery material
// (spec section 4.5).
func recoverShare(pf PolicyFactor, material DeriveMaterial, size int) ([]byte, error) {
	if material.Type == "persisted" {
		return material.Data, nil
	}

	if material.Type != pf.Type {
		return nil, fmt.Errorf("mfkdf: factor %q: supplied type %q, policy type %q: %w", pf.ID, material.Type, pf.Type, ErrFactorTypeMismatch)
	}

	padBytes, err := base64.StdEncoding.DecodeString(pf.Pad)
	if err != nil {
		return nil, fmt.Errorf("mfkdf: factor %q: decoding pad: %w", pf.ID, ErrInvalidPolicy)
	}

	share, err := mfkdfPad.Invert(padBytes, material.Data, size)
	if err != nil {
		return nil, fmt.Errorf("mfkdf: factor %q: inverting pad: %w", pf.ID, err)
	}

	return share, nil
}
