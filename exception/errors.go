package exception

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrUnknownKind is returned when registering a kind outside the table.
	ErrUnknownKind = errors.New("unknown exception kind")
	// ErrNilConstructor is returned when a nil function is registered.
	ErrNilConstructor = errors.New("nil constructor")
	// ErrShapeMismatch is returned when a constructor's parameters differ from the declared signature.
	ErrShapeMismatch = errors.New("constructor shape does not match signature")
	// ErrDuplicate is returned when a kind is registered twice.
	ErrDuplicate = errors.New("constructor already registered")
	// ErrMissing is returned by Build when a kind has no constructor.
	ErrMissing = errors.New("constructor not registered")
)

// RegistrationError is returned when a constructor cannot be registered or
// the registry is incomplete.
type RegistrationError struct {
	Kind   Kind
	Err    error
	Detail string
}

// Error returns the error message for RegistrationError.
func (e *RegistrationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("exception: %s: %v (%s)", e.Kind, e.Err, e.Detail)
	}
	return fmt.Sprintf("exception: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the sentinel describing the failure.
func (e *RegistrationError) Unwrap() error {
	return e.Err
}
