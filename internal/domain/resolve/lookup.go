package resolve

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Lookup errors. Implementations of the Lookup port return NotFoundError and
// AmbiguousBindingError; callers match the kinds with errors.Is.
var (
	ErrNotFound  = errors.New("no binding matched")
	ErrAmbiguous = errors.New("multiple bindings matched")
)

// Lookup resolves a descriptor to exactly one value. It is the resolver's
// single external dependency; how values are registered, initialized, and
// scoped is the implementation's concern.
type Lookup interface {
	// ByName returns the one value bound to name, a NotFoundError when no
	// binding matches, or an AmbiguousBindingError when several do.
	ByName(ctx context.Context, name string) (any, error)

	// ByType returns the one value whose dynamic type is t, with the same
	// error contract as ByName.
	ByType(ctx context.Context, t reflect.Type) (any, error)
}

// NotFoundError reports a lookup that matched zero bindings.
type NotFoundError struct {
	Descriptor Descriptor
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no binding found for %s", e.Descriptor)
}

// Unwrap returns ErrNotFound so callers can match with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AmbiguousBindingError reports a lookup that matched more than one binding.
type AmbiguousBindingError struct {
	Descriptor Descriptor
	Count      int
}

// Error implements the error interface.
func (e *AmbiguousBindingError) Error() string {
	return fmt.Sprintf("%d bindings found for %s, exactly one expected", e.Count, e.Descriptor)
}

// Unwrap returns ErrAmbiguous so callers can match with errors.Is.
func (e *AmbiguousBindingError) Unwrap() error {
	return ErrAmbiguous
}

// isBlank reports whether s is empty or whitespace-only. Blank metadata
// strings count as absent.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
