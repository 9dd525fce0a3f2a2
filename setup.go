// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	mfkdfKdfengine "mfkdf/internal/kdfengine"
	mfkdfPad "mfkdf/internal/pad"
	mfkdfPolicy "mfkdf/internal/policy"
	mfkdfSharing "mfkdf/internal/sharing"
)

// Setup builds a new Policy and DerivedKey from factors (spec section 4.6).
// factors must be non-empty with unique, non-empty ids. ctx is checked for
// cancellation between factor iterations.
func Setup(ctx context.Context, factors []SetupFactor, opts Options) (*DerivedKey, error) {
	if err := validateSetupFactors(factors); err != nil {
		return nil, err
	}

	opts, err := fillSetupDefaults(opts, len(factors))
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("mfkdf setup starting", "id", opts.ID, "factors", len(factors), "threshold", opts.Threshold)

	secret := make([]byte, opts.Size)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("mfkdf: generating secret: %w", err)
	}

	key, err := mfkdfKdfengine.Derive(secret, opts.Salt, opts.Size, opts.KDF)
	if err != nil {
		return nil, err
	}

	shares, err := mfkdfSharing.Share(secret, opts.Threshold, len(factors))
	if err != nil {
		return nil, fmt.Errorf("mfkdf: %w", err)
	}

	factorCtx := Context{Key: key}
	policyFactors := make([]mfkdfPolicy.Factor, len(factors))
	outputs := make(map[string]any, len(factors))

	for i, f := range factors {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("mfkdf: %w", ErrCancelled)
		default:
		}

		padBytes, err := mfkdfPad.Make(shares[i], f.Data, opts.Size)
		if err != nil {
			return nil, fmt.Errorf("mfkdf: factor %q: computing pad: %w", f.ID, err)
		}

		params, err := f.Params.Resolve(factorCtx)
		if err != nil {
			return nil, fmt.Errorf("mfkdf: factor %q: resolving params: %w", f.ID, err)
		}

		policyFactors[i] = mfkdfPolicy.Factor{
			ID:     f.ID,
			Type:   f.Type,
			Pad:    base64.StdEncoding.EncodeToString(padBytes),
			Params: json.RawMessage(params),
		}

		if f.Output != nil {
			out, err := f.Output()
			if err != nil {
				return nil, fmt.Errorf("mfkdf: factor %q: output: %w", f.ID, err)
			}
			outputs[f.ID] = out
		}

		logger.Debug("mfkdf factor setup complete", "id", f.ID, "type", f.Type)
	}

	p := &mfkdfPolicy.Policy{
		Schema:    mfkdfPolicy.SchemaURI,
		ID:        opts.ID,
		Size:      opts.Size,
		Threshold: opts.Threshold,
		Salt:      base64.StdEncoding.EncodeToString(opts.Salt),
		KDF:       kdfSpecToPolicy(opts.KDF),
		Factors:   policyFactors,
	}

	logger.Info("mfkdf setup complete", "id", opts.ID)

	return &DerivedKey{
		Policy:      p,
		Key:         key,
		Secret:      secret,
		Shares:      shares,
		Outputs:     outputs,
		EntropyBits: computeEntropy(factors, opts.Threshold),
	}, nil
}

// fillSetupDefaults applies spec section 6's defaults and validates the
// resulting option set (spec section 4.6 step 1).
func fillSetupDefaults(opts Options, numFactors int) (Options, error) {
	if opts.Size < 0 {
		return opts, fmt.Errorf("mfkdf: size must not be negative: %w", errInvalidArgument)
	}
	if opts.Size == 0 {
		opts.Size = 32
	}

	if opts.Threshold == 0 {
		opts.Threshold = numFactors
	}
	if opts.Threshold < 1 || opts.Threshold > numFactors {
		return opts, fmt.Errorf("mfkdf: threshold %d must be between 1 and %d: %w", opts.Threshold, numFactors, errInvalidArgument)
	}

	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}

	if opts.Salt == nil {
		opts.Salt = make([]byte, opts.Size)
		if _, err := rand.Read(opts.Salt); err != nil {
			return opts, fmt.Errorf("mfkdf: generating salt: %w", err)
		}
	}

	if opts.KDF.Type == "" {
		opts.KDF = mfkdfKdfengine.Defaults(Argon2id)
	}

	return opts, nil
}
