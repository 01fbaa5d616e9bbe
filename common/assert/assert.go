package assert

import (
	bettererrors "github.com/xtuc/better-errors"
)

// Violation builds the error chain for a broken programming contract.
func Violation(msg string, context map[string]string) *bettererrors.Chain {
	cause := bettererrors.NewFromString(msg)
	for k, v := range context {
		cause = cause.SetContext(k, v)
	}

	return bettererrors.
		NewFromString("Assertion error").
		With(cause)
}

func IsViolation(err error) bool {
	return bettererrors.IsBetterError(err)
}
