package comparator

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/amp-labs/numstring/errors"
	"github.com/amp-labs/numstring/numstr"
)

// Comparator orders values of T in natural number order. It is immutable
// and safe for concurrent use.
type Comparator[T any] struct {
	field  string
	kind   Kind
	order  numstr.TextOrder
	reduce func(T) numstr.Value
}

// Direct returns a comparator that orders T by its own value, or by the key
// when T is a key/value pair. It fails with errors.ErrInvalidConfiguration
// when T is composite or a pair whose key type is not an allowed primitive.
func Direct[T any](opts ...Option) (*Comparator[T], error) {
	return newDirect[T](newOptions(opts))
}

// ForField returns a comparator that orders a composite T by the named
// field. It fails with errors.ErrArgument when name is empty or accessor is
// nil, and with errors.ErrInvalidConfiguration when T is not composite, the
// field does not exist (also errors.ErrMissingField) or the field's type is
// not allowed (also errors.ErrUnsupportedType).
func ForField[T any](name string, accessor FieldAccessor[T], opts ...Option) (*Comparator[T], error) {
	return newField(name, accessor, newOptions(opts))
}

func newDirect[T any](opts Options) (*Comparator[T], error) {
	typ := reflect.TypeFor[T]()
	kind := KindOf(typ)

	switch kind { //nolint:exhaustive
	case KindComposite, KindInvalid:
		return nil, fmt.Errorf("%w: %v is a composite type; use ForField to compare one of its fields",
			errors.ErrInvalidConfiguration, typ)
	case KindPair:
		if key := pairKeyType(typ); !IsAllowedPrimitive(key) {
			return nil, fmt.Errorf("%w: key type %v of %v is not an allowed primitive",
				errors.ErrInvalidConfiguration, key, typ)
		}
	}

	return &Comparator[T]{
		kind:  kind,
		order: opts.TextOrder,
		reduce: func(v T) numstr.Value {
			// Cannot fail: the kind was validated above.
			val, _ := numstr.Parse(v)

			return val
		},
	}, nil
}

func newField[T any](name string, accessor FieldAccessor[T], opts Options) (*Comparator[T], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: field name must not be empty", errors.ErrArgument)
	}

	if accessor == nil {
		return nil, fmt.Errorf("%w: field accessor must not be nil", errors.ErrArgument)
	}

	typ := reflect.TypeFor[T]()
	if !IsCompositeType(typ) {
		return nil, fmt.Errorf("%w: %v is not a composite type; use Direct instead",
			errors.ErrInvalidConfiguration, typ)
	}

	field, err := lookupField(accessor, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfiguration, err)
	}

	return &Comparator[T]{
		field: name,
		kind:  field.Kind(),
		order: opts.TextOrder,
		reduce: func(v T) numstr.Value {
			// Cannot fail: the field's type was validated above.
			val, _ := numstr.Parse(field.Value(v))

			return val
		},
	}, nil
}

// Compare returns -1, 0 or +1. It is suitable for slices.SortFunc.
func (c *Comparator[T]) Compare(a, b T) int {
	return numstr.CompareWith(c.reduce(a), c.reduce(b), c.order)
}

// Less reports whether a sorts before b.
func (c *Comparator[T]) Less(a, b T) bool {
	return c.Compare(a, b) < 0
}

// Reverse returns the descending form of Compare.
func (c *Comparator[T]) Reverse() func(a, b T) int {
	return func(a, b T) int {
		return c.Compare(b, a)
	}
}

// Sort sorts s in place. Equal elements keep their relative order.
func (c *Comparator[T]) Sort(s []T) {
	slices.SortStableFunc(s, c.Compare)
}

// Reduce returns the NumberString this comparator derives from v.
func (c *Comparator[T]) Reduce(v T) numstr.Value {
	return c.reduce(v)
}

// Field is the configured field name, or "" for direct comparators.
func (c *Comparator[T]) Field() string {
	return c.field
}

// Kind is the kind of the compared value: T's kind for direct comparators,
// the field's kind otherwise.
func (c *Comparator[T]) Kind() Kind {
	return c.kind
}

// TextOrder is the order used for non-numeric parts.
func (c *Comparator[T]) TextOrder() numstr.TextOrder {
	return c.order
}

// Chain combines comparison functions: later ones only break ties left by
// earlier ones. With no functions every pair is equal.
func Chain[T any](cmps ...func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		for _, cmp := range cmps {
			if res := cmp(a, b); res != 0 {
				return res
			}
		}

		return 0
	}
}

// SortBy stably sorts s by the chained comparison functions.
func SortBy[T any](s []T, cmps ...func(a, b T) int) {
	slices.SortStableFunc(s, Chain(cmps...))
}
