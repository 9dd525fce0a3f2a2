// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import (
	"log/slog"

	mfkdfKdfengine "mfkdf/internal/kdfengine"
	mfkdfPolicy "mfkdf/internal/policy"
)

// Policy is the public, JSON-serializable document describing how to
// re-derive a key (spec section 3). It is safe to store and transmit
// openly.
type Policy = mfkdfPolicy.Policy

// PolicyFactor is one factor's record within a Policy.
type PolicyFactor = mfkdfPolicy.Factor

// KDFParams is the policy's stored KDF algorithm selection and parameters.
type KDFParams = mfkdfPolicy.KDF

// KDFSpec selects a KDF algorithm and its parameters for Setup (spec
// section 4.3).
type KDFSpec = mfkdfKdfengine.Spec

// KDF algorithm tags.
const (
	PBKDF2   = mfkdfKdfengine.PBKDF2
	Bcrypt   = mfkdfKdfengine.Bcrypt
	Scrypt   = mfkdfKdfengine.Scrypt
	Argon2i  = mfkdfKdfengine.Argon2i
	Argon2d  = mfkdfKdfengine.Argon2d
	Argon2id = mfkdfKdfengine.Argon2id
)

// PBKDF2 digest tags.
const (
	SHA1   = mfkdfKdfengine.SHA1
	SHA256 = mfkdfKdfengine.SHA256
	SHA384 = mfkdfKdfengine.SHA384
	SHA512 = mfkdfKdfengine.SHA512
)

// DefaultKDF returns the recommended parameters for an algorithm (spec
// section 6's Defaults table).
func DefaultKDF(algorithm mfkdfKdfengine.Type) KDFSpec {
	return mfkdfKdfengine.Defaults(algorithm)
}

// Options configures Setup (spec sections 4.6 and 6).
type Options struct {
	// ID becomes the policy's $id. Defaults to a fresh UUIDv4 if empty.
	ID string

	// Size is the derived key length in bytes. Defaults to 32.
	Size int

	// Threshold is the minimum number of factors required to re-derive the
	// key. Defaults to len(factors).
	Threshold int

	// Salt is the KDF salt. Defaults to Size random bytes.
	Salt []byte

	// KDF selects the KDF algorithm and parameters. Defaults to Argon2id.
	KDF KDFSpec

	// Logger receives non-secret lifecycle events. Defaults to
	// slog.Default(). Never logs data, secret, shares, key, or pad values.
	Logger *slog.Logger
}

// DefaultOptions returns Options with every field at its spec-section-6
// default except ID, Salt and Threshold, which Setup fills in (a fresh
// UUIDv4, Size random bytes, and len(factors) respectively) because they
// must be freshly random per policy or depend on the factor list.
func DefaultOptions() Options {
	return Options{
		Size:   32,
		KDF:    mfkdfKdfengine.Defaults(Argon2id),
		Logger: slog.Default(),
	}
}

// DeriveOptions configures Derive.
type DeriveOptions struct {
	// Logger receives non-secret lifecycle events. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// EntropyBits reports the summed real-world and theoretical entropy over
// the threshold smallest per-factor estimates (spec section 4.6 step 6).
type EntropyBits struct {
	Theoretical float64
	Real        float64
}

// DerivedKey is the in-memory result of Setup or Derive (spec section 3).
// Its byte buffers (Key, Secret, Shares) are owned exclusively by the
// caller once returned; call Zeroize when done with them.
type DerivedKey struct {
	// Policy is possibly-rewritten: challenge-response factors rotate
	// their Params after a successful Derive.
	Policy *Policy

	// Key is the final derived key, Policy.Size bytes.
	Key []byte

	// Secret is the master secret shared amongst factors, Policy.Size
	// bytes, the pre-KDF value.
	Secret []byte

	// Shares is the full reconstructed share vector, one per policy
	// factor slot.
	Shares [][]byte

	// Outputs holds each setup-side factor's public post-setup
	// information (e.g. a generated UUID, an HMAC secret). Populated by
	// Setup only; nil after Derive.
	Outputs map[string]any

	// EntropyBits summarizes the entropy contributed by the threshold
	// smallest factors.
	EntropyBits EntropyBits
}

// Reconstruct returns copies of the recovered secret and full share
// vector, safe for a caller to hold and scrub independently of dk (spec
// section 9's "Ownership": accessors return copies rather than aliasing
// internal buffers).
func (dk *DerivedKey) Reconstruct() (secret []byte, shares [][]byte) {
	secret = append([]byte(nil), dk.Secret...)

	shares = make([][]byte, len(dk.Shares))
	for i, s := range dk.Shares {
		shares[i] = append([]byte(nil), s...)
	}

	return secret, shares
}

// Zeroize overwrites the DerivedKey's secret buffers with zeros. It does
// not zero Policy, which is public by design.
func (dk *DerivedKey) Zeroize() {
	zero(dk.Key)
	zero(dk.Secret)
	for _, s := range dk.Shares {
		zero(s)
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
