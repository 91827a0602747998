// Package errors holds the error kinds shared by the numstring packages.
// Callers match them with the standard library's errors.Is.
package errors

import "errors"

var (
	// ErrInvalidConfiguration means a comparator was requested for a type or
	// field that can never be compared. It is always reported when the
	// comparator is built, never during a comparison.
	ErrInvalidConfiguration = errors.New("invalid comparator configuration")

	// ErrArgument means a required argument, such as a field name, was empty.
	ErrArgument = errors.New("invalid argument")

	// ErrMissingField means the named field does not exist on the type.
	ErrMissingField = errors.New("missing field")

	// ErrUnsupportedType means a field's declared type is not an allowed primitive.
	ErrUnsupportedType = errors.New("unsupported field type")

	// ErrUnsupportedValue means a composite value was reduced without a field accessor.
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
