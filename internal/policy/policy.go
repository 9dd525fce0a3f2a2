// Copyright (c) 2026 The MFKDF Authors
//
//

// Package policy implements the MFKDF policy codec (spec sections 4.8 and
// 6): the schema-validated JSON document that carries everything needed to
// re-derive a key given a threshold of factors.
package policy

import (
	"encoding/json"
	"fmt"

	mfkdfApperr "mfkdf/internal/apperr"
)

// KDF is the tagged-union KDF parameter block stored in a policy. Only the
// fields relevant to Type are populated; the rest are omitted from JSON.
type KDF struct {
	Type        string `json:"type"`
	Rounds      int    `json:"rounds,omitempty"`
	Digest      string `json:"digest,omitempty"`
	N           int    `json:"N,omitempty"`
	R           int    `json:"r,omitempty"`
	P           int    `json:"p,omitempty"`
	Time        uint32 `json:"time,omitempty"`
	Memory      uint32 `json:"memory,omitempty"`
	Parallelism uint8  `json:"parallelism,omitempty"`
}

// Factor is one policy slot: the public pad and per-factor params for a
// single factor, at a fixed list position (its Shamir share index is
// position+1).
type Factor struct {
	ID     string          `json:"id"`
	Type   string          `json:"type"`
	Pad    string          `json:"pad"`
	Params json.RawMessage `json:"params"`
}

// Policy is the public, serializable MFKDF policy document (spec section 3).
type Policy struct {
	Schema    string   `json:"$schema"`
	ID        string   `json:"$id"`
	Size      int      `json:"size"`
	Threshold int      `json:"threshold"`
	Salt      string   `json:"salt"`
	KDF       KDF      `json:"kdf"`
	Factors   []Factor `json:"factors"`
}

// Parse schema-validates raw and decodes it into a Policy, then checks the
// structural invariants spec section 3 lists beyond what the schema can
// express (unique factor ids, threshold <= len(factors)).
func Parse(raw []byte) (*Policy, error) {
	if err := ValidateBytes(raw); err != nil {
		return nil, err
	}

	var p Policy
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("policy: decoding: %v: %w", err, mfkdfApperr.ErrInvalidPolicy)
	}

	if err := p.checkInvariants(); err != nil {
		return nil, err
	}

	return &p, nil
}

// checkInvariants enforces spec section 3's invariants not captured by the
// JSON schema alone.
func (p *Policy) checkInvariants() error {
	if p.Threshold > len(p.Factors) {
		return fmt.Errorf("policy: threshold %d exceeds %d factors: %w", p.Threshold, len(p.Factors), mfkdfApperr.ErrInvalidPolicy)
	}

	seen := make(map[string]struct{}, len(p.Factors))
	for _, f := range p.Factors {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("policy: duplicate factor id %q: %w", f.ID, mfkdfApperr.ErrInvalidPolicy)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}

// Serialize encodes p as the canonical JSON representation, preserving the
// field order Setup constructed ($schema, $id, size, threshold, salt, kdf,
// factors) and the factors' insertion order (spec section 4.8). Struct
// field order in Go's encoding/json is the declaration order, which is
// exactly how this round-trips: Parse(p.Serialize()) reproduces p bytewise.
func (p *Policy) Serialize() ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("policy: encoding: %w", err)
	}

	return raw, nil
}

// Clone deep-copies p so callers (in particular Derive, spec section 9
// "Policy cloning") can rotate factor params without aliasing the original.
func Clone(p *Policy) *Policy {
	out := *p
	out.Factors = make([]Factor, len(p.Factors))

	for i, f := range p.Factors {
		out.Factors[i] = Factor{
			ID:     f.ID,
			Type:   f.Type,
			Pad:    f.Pad,
			Params: append(json.RawMessage(nil), f.Params...),
		}
	}

	return &out
}

// FindFactor returns the index of the factor with the given id, or -1 if
// none exists.
func (p *Policy) FindFactor(id string) int {
	for i, f := range p.Factors {
		if f.ID == id {
			return i
		}
	}

	return -1
}
