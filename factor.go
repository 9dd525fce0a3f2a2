// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import (
	"encoding/json"
	"fmt"
)

// Context is the information available to a deferred params producer once a
// key has been derived (spec section 3's `params(ctx) -> params`).
type Context struct {
	Key []byte
}

// Action models a factor's params production as an explicit union (spec
// section 9: "Action { Static(params) | Rotating(fn(key) -> params) }")
// rather than a bare function value. Static carries a fixed params payload;
// Rotating defers production until a key is available. The zero Action
// resolves to an empty JSON object.
type Action struct {
	static json.RawMessage
	rotate func(Context) (json.RawMessage, error)
}

// StaticParams returns an Action that always yields params unchanged.
func StaticParams(params json.RawMessage) Action {
	return Action{static: params}
}

// RotatingParams returns an Action that computes params from the derived
// key, used by challenge-response factors (e.g. advancing an HOTP counter).
func RotatingParams(fn func(Context) (json.RawMessage, error)) Action {
	return Action{rotate: fn}
}

// IsRotating reports whether resolving this Action requires a key.
func (a Action) IsRotating() bool {
	return a.rotate != nil
}

// Resolve produces the params payload for ctx.
func (a Action) Resolve(ctx Context) (json.RawMessage, error) {
	if a.rotate != nil {
		params, err := a.rotate(ctx)
		if err != nil {
			return nil, err
		}
		if params == nil {
			return json.RawMessage("{}"), nil
		}
		return params, nil
	}

	if a.static == nil {
		return json.RawMessage("{}"), nil
	}

	return a.static, nil
}

// SetupFactor is the setup-side factor contract (spec section 3, "Factor
// (setup-side)"): opaque secret material plus the producers the
// orchestrator invokes once the key has been derived.
type SetupFactor struct {
	// Type is a short tag identifying the factor kind (e.g. "password",
	// "uuid", "hotp").
	Type string

	// ID is unique within the policy being built.
	ID string

	// Data is the factor's secret material, at least one byte.
	Data []byte

	// Entropy is the estimated real-world entropy in bits, used only for
	// EntropyBits reporting.
	Entropy float64

	// Params produces the public per-factor parameters to embed in the
	// policy. Resolved once, after the key is derived.
	Params Action

	// Output returns public post-setup information returned to the caller
	// (e.g. a generated UUID) but never persisted in the policy. May be nil.
	Output func() (map[string]any, error)
}

// DeriveMaterial is what a derive-side producer returns (spec section 3,
// "Factor (derive-side)"): either stretched factor material matching a
// policy slot's type, or a raw persisted share for recovery-code-style
// factors (Type == "persisted").
type DeriveMaterial struct {
	Type   string
	Data   []byte
	Params Action
}

// DeriveProducer is invoked with a policy factor slot's stored params and
// returns the material needed to recover that slot's share.
type DeriveProducer func(params json.RawMessage) (DeriveMaterial, error)

// validateSetupFactors checks the structural invariants Setup requires
// before doing any cryptographic work (spec section 4.6 step 1 plus
// section 3's uniqueness invariant).
func validateSetupFactors(factors []SetupFactor) error {
	if len(factors) == 0 {
		return fmt.Errorf("mfkdf: setup requires at least one factor: %w", errInvalidArgument)
	}

	seen := make(map[string]struct{}, len(factors))
	for _, f := range factors {
		if f.ID == "" {
			return fmt.Errorf("mfkdf: factor id must not be empty: %w", errInvalidArgument)
		}
		if len(f.Data) == 0 {
			return fmt.Errorf("mfkdf: factor %q: data must not be empty: %w", f.ID, errInvalidArgument)
		}
		if f.Type == "" {
			return fmt.Errorf("mfkdf: factor %q: type must not be empty: %w", f.ID, errInvalidArgument)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("mfkdf: duplicate factor id %q: %w", f.ID, errInvalidArgument)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}
