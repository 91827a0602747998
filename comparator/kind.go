package comparator

import (
	"math/big"
	"reflect"
	"strconv"
)

// Kind is the closed set of value shapes a comparator understands. It is
// decided once, when a comparator is built.
type Kind int

const (
	KindInvalid Kind = iota
	KindText
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
	// KindPair is a key/value pair; only the key is compared.
	KindPair
	// KindOther covers built-in scalars that can be compared directly but
	// are not allowed as fields: bool, int8 and the unsigned integers.
	KindOther
	// KindComposite must be reduced through a field before comparison.
	KindComposite
)

var kindNames = map[Kind]string{ //nolint:gochecknoglobals
	KindInvalid:   "invalid",
	KindText:      "text",
	KindInt16:     "int16",
	KindInt32:     "int32",
	KindInt64:     "int64",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindDecimal:   "decimal",
	KindPair:      "pair",
	KindOther:     "other",
	KindComposite: "composite",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// pairShape is implemented by maps.KeyValuePair.
type pairShape interface {
	PairKey() any
	KeyType() reflect.Type
}

var (
	decimalType = reflect.TypeFor[*big.Float]() //nolint:gochecknoglobals
	pairType    = reflect.TypeFor[pairShape]()  //nolint:gochecknoglobals
)

// KindOf classifies t. A nil type is KindInvalid.
func KindOf(t reflect.Type) Kind {
	switch {
	case t == nil:
		return KindInvalid
	case t == decimalType:
		return KindDecimal
	case isPair(t):
		return KindPair
	}

	switch t.Kind() { //nolint:exhaustive
	case reflect.String:
		return KindText
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Int:
		if strconv.IntSize == 32 { //nolint:mnd
			return KindInt32
		}

		return KindInt64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool, reflect.Int8,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindOther
	default:
		return KindComposite
	}
}

// Pointer and interface types are never pairs: their zero value can't
// report a key type.
func isPair(t reflect.Type) bool {
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Implements(pairType)
}

// pairKeyType returns the key type of a pair type, or nil.
func pairKeyType(t reflect.Type) reflect.Type {
	if t == nil || !isPair(t) {
		return nil
	}

	shape, ok := reflect.Zero(t).Interface().(pairShape)
	if !ok {
		return nil
	}

	return shape.KeyType()
}

// IsAllowedPrimitive reports whether t is text, a 16/32/64-bit integer, a
// single or double precision float, or an arbitrary-precision decimal
// (*big.Float). Named types with those underlying kinds are allowed.
func IsAllowedPrimitive(t reflect.Type) bool {
	switch KindOf(t) { //nolint:exhaustive
	case KindText, KindInt16, KindInt32, KindInt64, KindFloat32, KindFloat64, KindDecimal:
		return true
	default:
		return false
	}
}

// IsCompositeType reports whether values of t must be reduced through a
// field: anything that is not a built-in scalar, text, decimal or
// key/value pair.
func IsCompositeType(t reflect.Type) bool {
	kind := KindOf(t)

	return kind == KindComposite || kind == KindInvalid
}

// IsValidType reports whether t can be compared as a field: an allowed
// primitive, or a key/value pair whose key is one.
func IsValidType(t reflect.Type) bool {
	if IsAllowedPrimitive(t) {
		return true
	}

	if KindOf(t) == KindPair {
		return IsAllowedPrimitive(pairKeyType(t))
	}

	return false
}
