// Copyright (c) 2026 The MFKDF Authors
//
//

// Package mfkdf implements a Multi-Factor Key Derivation Function: a
// deterministic, high-entropy key derived from a threshold subset of
// heterogeneous authentication factors (passwords, one-time codes,
// hardware challenge-response, recovery codes). Setup produces a public
// Policy document and a DerivedKey; Derive consumes a Policy plus a
// threshold of factor materials and reproduces the same key.
//
// The package implements only the setup/derive pipeline and its
// cryptographic invariants. Persisting a Policy, collecting factor input
// (QR rendering, password prompts, OTP counters), and any transport for
// factors are the caller's responsibility — see the factors package for
// reference implementations of the factor contract.
package mfkdf
