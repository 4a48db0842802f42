package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "smartguider/internal/errors"
)

// moneyTolerance absorbs float noise in derived amounts and percentages.
const moneyTolerance = 1e-6

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertWraps checks that err is an AppError with the sentinel's code
// that still carries cause in its chain.
func AssertWraps(t *testing.T, err error, sentinel *apperrors.AppError, cause error) {
	t.Helper()

	AssertAppError(t, err, sentinel.Code)
	if !errors.Is(err, cause) {
		t.Errorf("expected %v in the error chain of %v", cause, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAmount compares a derived amount or percentage within a small
// tolerance.
func AssertAmount(t *testing.T, name string, got, want float64) {
	t.Helper()

	if math.Abs(got-want) > moneyTolerance {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}
