package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	mfkdfApperr "mfkdf/internal/apperr"
)

func TestIsAppErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   error
		expected bool
	}{
		{name: "is-apperr-invalid-policy", target: mfkdfApperr.ErrInvalidPolicy, expected: true},
		{name: "is-apperr-invalid-argument", target: mfkdfApperr.ErrInvalidArgument, expected: true},
		{name: "is-apperr-insufficient-shares", target: mfkdfApperr.ErrInsufficientShares, expected: true},
		{name: "is-apperr-factor-type-mismatch", target: mfkdfApperr.ErrFactorTypeMismatch, expected: true},
		{name: "is-apperr-kdf-failure", target: mfkdfApperr.ErrKdfFailure, expected: true},
		{name: "is-apperr-cancelled", target: mfkdfApperr.ErrCancelled, expected: true},
		{name: "is-not-apperr-random-error", target: errors.New("random error"), expected: false},
		{name: "is-not-apperr-nil", target: nil, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := mfkdfApperr.IsAppErr(tc.target)
			require.Equal(t, tc.expected, result)
		})
	}
}

func TestIsAppErr_WrappedError(t *testing.T) {
	t.Parallel()

	plain := errors.New("factor \"password\": " + mfkdfApperr.ErrFactorTypeMismatch.Error())
	require.False(t, mfkdfApperr.IsAppErr(plain), "plain string concatenation should not match errors.Is")

	wrapped := fmt.Errorf("factor %q: %w", "password", mfkdfApperr.ErrFactorTypeMismatch)
	require.True(t, mfkdfApperr.IsAppErr(wrapped))
}

func TestContainsError(t *testing.T) {
	t.Parallel()

	errOne := errors.New("error one")
	errTwo := errors.New("error two")
	errThree := errors.New("error three")
	errFour := errors.New("error four")

	errs := []error{errOne, errTwo, errThree}

	tests := []struct {
		name     string
		errs     []error
		target   error
		expected bool
	}{
		{name: "contains-first-error", errs: errs, target: errOne, expected: true},
		{name: "contains-middle-error", errs: errs, target: errTwo, expected: true},
		{name: "contains-last-error", errs: errs, target: errThree, expected: true},
		{name: "does-not-contain-error", errs: errs, target: errFour, expected: false},
		{name: "empty-slice-no-match", errs: []error{}, target: errOne, expected: false},
		{name: "nil-slice-no-match", errs: nil, target: errOne, expected: false},
		{name: "target-is-nil", errs: errs, target: nil, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := mfkdfApperr.ContainsError(tc.errs, tc.target)
			require.Equal(t, tc.expected, result)
		})
	}
}

func TestErrsSliceContainsAllExpectedErrors(t *testing.T) {
	t.Parallel()

	expectedErrs := []error{
		mfkdfApperr.ErrInvalidPolicy,
		mfkdfApperr.ErrInvalidArgument,
		mfkdfApperr.ErrInsufficientShares,
		mfkdfApperr.ErrFactorTypeMismatch,
		mfkdfApperr.ErrKdfFailure,
		mfkdfApperr.ErrCancelled,
		mfkdfApperr.ErrCantBeNil,
		mfkdfApperr.ErrCantBeEmpty,
	}

	require.Len(t, mfkdfApperr.Errs, len(expectedErrs))

	for _, expected := range expectedErrs {
		found := false

		for _, actual := range mfkdfApperr.Errs {
			if errors.Is(actual, expected) {
				found = true

				break
			}
		}

		require.True(t, found, "expected error %v to be in Errs slice", expected)
	}
}
