package svgforge

import (
	"errors"
	"fmt"
)

// Error kinds for session operations. Operations wrap these with context
// via fmt.Errorf and %w; callers classify with errors.Is and the server
// boundary converts them to error envelopes.
var (
	// ErrValidation marks malformed input: bad size tokens, bad shape
	// parameters, empty or out-of-range gradient stops.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown document or group identifier.
	ErrNotFound = errors.New("not found")

	// ErrCrossReference marks a group identifier that resolved, but to a
	// group owned by a different document than the one targeted.
	ErrCrossReference = errors.New("cross-document reference")

	// ErrConflict marks a caller-supplied identifier that is already in
	// use in its registry.
	ErrConflict = errors.New("already exists")
)

// The wrap helpers keep call sites short and guarantee every operation
// error carries exactly one of the kinds above.

func validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func crossReff(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrCrossReference)...)
}

func conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}
