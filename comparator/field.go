package comparator

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"

	"github.com/amp-labs/numstring/errors"
	"github.com/amp-labs/numstring/numstr"
)

// Integer is the set of integer types a field may declare.
type Integer interface {
	~int | ~int16 | ~int32 | ~int64
}

// Float is the set of float types a field may declare.
type Float interface {
	~float32 | ~float64
}

// Field extracts one named value from a composite T. Its declared type is
// known without an instance, so it can be validated before any comparison.
type Field[T any] struct {
	typ reflect.Type
	get func(T) any
}

// Type is the field's declared type.
func (f Field[T]) Type() reflect.Type {
	return f.typ
}

// Kind is the classification of the declared type.
func (f Field[T]) Kind() Kind {
	return KindOf(f.typ)
}

// Value reads the field from v.
func (f Field[T]) Value(v T) any {
	if f.get == nil {
		return nil
	}

	return f.get(v)
}

// TextField declares a text field.
func TextField[T any, S ~string](get func(T) S) Field[T] {
	return Field[T]{
		typ: reflect.TypeFor[S](),
		get: func(v T) any { return string(get(v)) },
	}
}

// IntField declares an integer field, e.g. IntField(time.Time.Month).
func IntField[T any, N Integer](get func(T) N) Field[T] {
	return Field[T]{
		typ: reflect.TypeFor[N](),
		get: func(v T) any { return int64(get(v)) },
	}
}

// FloatField declares a float field. float32 fields keep their shortest
// float32 text form.
func FloatField[T any, F Float](get func(T) F) Field[T] {
	typ := reflect.TypeFor[F]()
	if typ.Kind() == reflect.Float32 {
		return Field[T]{
			typ: typ,
			get: func(v T) any { return float32(get(v)) },
		}
	}

	return Field[T]{
		typ: typ,
		get: func(v T) any { return float64(get(v)) },
	}
}

// DecimalField declares an arbitrary-precision decimal field. A nil result
// compares like an absent value.
func DecimalField[T any](get func(T) *big.Float) Field[T] {
	return Field[T]{
		typ: decimalType,
		get: func(v T) any { return get(v) },
	}
}

// ValueField declares a field of any type V. V is checked when a comparator
// is built; a disallowed V fails with errors.ErrUnsupportedType there.
func ValueField[T any, V any](get func(T) V) Field[T] {
	return Field[T]{
		typ: reflect.TypeFor[V](),
		get: func(v T) any { return get(v) },
	}
}

// StaticField declares a type-level field whose value does not depend on
// the instance.
func StaticField[T any, V any](get func() V) Field[T] {
	return Field[T]{
		typ: reflect.TypeFor[V](),
		get: func(T) any { return get() },
	}
}

// FieldAccessor resolves named fields of T.
type FieldAccessor[T any] interface {
	// Field returns the named field, or false if T has no such field.
	Field(name string) (Field[T], bool)
}

// Fields is a FieldAccessor backed by a map from field name to Field.
type Fields[T any] map[string]Field[T]

var _ FieldAccessor[struct{}] = Fields[struct{}](nil)

// Field implements FieldAccessor.
func (f Fields[T]) Field(name string) (Field[T], bool) {
	field, ok := f[name]

	return field, ok
}

// Names returns the field names in sorted order.
func (f Fields[T]) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// lookupField resolves and validates a field of T.
func lookupField[T any](accessor FieldAccessor[T], name string) (Field[T], error) {
	field, ok := accessor.Field(name)
	if !ok {
		return Field[T]{}, fmt.Errorf("%w: %s has no field %q",
			errors.ErrMissingField, reflect.TypeFor[T](), name)
	}

	if !IsValidType(field.typ) {
		return Field[T]{}, fmt.Errorf("%w: field %q of %s is %v",
			errors.ErrUnsupportedType, name, reflect.TypeFor[T](), field.typ)
	}

	return field, nil
}

// Reduce turns v into a numstr.Value. With a nil accessor v itself is
// reduced, which fails with errors.ErrUnsupportedValue for composites.
// Otherwise the named field is read and reduced; an unknown field fails with
// errors.ErrMissingField and a disallowed field type with
// errors.ErrUnsupportedType.
func Reduce[T any](v T, name string, accessor FieldAccessor[T]) (numstr.Value, error) {
	if accessor == nil {
		return numstr.Parse(v)
	}

	field, err := lookupField(accessor, name)
	if err != nil {
		return numstr.Value{}, err
	}

	return numstr.Parse(field.Value(v))
}
