package identify

import (
	"errors"
	"fmt"
)

// The engine fails in exactly two ways. Primitive-level failures (bad
// character, bad checksum, off-curve point) are always translated into an
// InvalidInputError with a reason; they never surface as a distinct kind.

// ErrInvalidInput matches any InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotImplemented is returned when the input is a recognized key class
// but no registered chain has a derivation pipeline for it.
var ErrNotImplemented = errors.New("no derivation pipeline for recognized key type")

// InvalidInputError reports that no known encoding or chain matched, or
// that the input matched syntactically but failed checksum or structural
// validation.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// Common reason fragments.
const (
	reasonUnknownEncoding = "no known encoding matches"
	reasonBadChecksum     = "checksum verification failed"
	reasonMnemonic        = "input is a BIP39 mnemonic phrase, not an address or public key"
	reasonEmpty           = "empty input"
)
