// Copyright (c) 2026 The MFKDF Authors
//
//

// Package apperr defines the sentinel errors the MFKDF core returns, so
// callers can classify failures with errors.Is instead of string matching.
package apperr

import "errors"

var (
	// ErrInvalidPolicy indicates a policy document failed schema validation
	// or is structurally inconsistent (e.g. threshold > len(factors)).
	ErrInvalidPolicy = errors.New("invalid policy")

	// ErrInvalidArgument indicates a setup/derive option was out of range
	// or malformed (non-positive size, empty id, duplicate factor ids).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientShares indicates fewer than threshold factor materials
	// were supplied or recoverable.
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrFactorTypeMismatch indicates the supplied factor's type does not
	// match the type recorded in the policy slot.
	ErrFactorTypeMismatch = errors.New("factor type mismatch")

	// ErrKdfFailure indicates the underlying KDF primitive returned an error.
	ErrKdfFailure = errors.New("kdf failure")

	// ErrCancelled indicates a cooperative cancellation was observed between
	// factor iterations.
	ErrCancelled = errors.New("cancelled")

	// ErrCantBeNil indicates a required pointer/slice argument was nil.
	ErrCantBeNil = errors.New("can't be nil")

	// ErrCantBeEmpty indicates a required string/slice argument was empty.
	ErrCantBeEmpty = errors.New("can't be empty")
)

// Errs lists every sentinel this package defines, for exhaustive tests and
// for callers that want to enumerate recognized failure classes.
var Errs = []error{
	ErrInvalidPolicy,
	ErrInvalidArgument,
	ErrInsufficientShares,
	ErrFactorTypeMismatch,
	ErrKdfFailure,
	ErrCancelled,
	ErrCantBeNil,
	ErrCantBeEmpty,
}

// IsAppErr reports whether target is (via errors.Is) one of the sentinels
// in Errs.
func IsAppErr(target error) bool {
	if target == nil {
		return false
	}

	return ContainsError(Errs, target)
}

// ContainsError reports whether errs contains target, comparing with
// errors.Is so wrapped errors still match.
func ContainsError(errs []error, target error) bool {
	if target == nil {
		return false
	}

	for _, err := range errs {
		if errors.Is(target, err) {
			return true
		}
	}

	return false
}
