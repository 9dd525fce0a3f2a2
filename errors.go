// Copyright (c) 2026 The MFKDF Authors
//
//

package mfkdf

import mfkdfApperr "mfkdf/internal/apperr"

// Re-exported so callers can classify failures with errors.Is without
// importing the internal package (spec section 7's error taxonomy).
var (
	ErrInvalidPolicy      = mfkdfApperr.ErrInvalidPolicy
	ErrInvalidArgument    = mfkdfApperr.ErrInvalidArgument
	ErrInsufficientShares = mfkdfApperr.ErrInsufficientShares
	ErrFactorTypeMismatch = mfkdfApperr.ErrFactorTypeMismatch
	ErrKdfFailure         = mfkdfApperr.ErrKdfFailure
	ErrCancelled          = mfkdfApperr.ErrCancelled
)

// errInvalidArgument is a package-local short alias used by validation
// helpers throughout this package.
var errInvalidArgument = mfkdfApperr.ErrInvalidArgument
