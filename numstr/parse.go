package numstr

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/amp-labs/numstring/errors"
)

// Keyed is implemented by key/value pairs (see maps.KeyValuePair). Such
// values reduce to their key; the value half is never consulted.
type Keyed interface {
	PairKey() any
}

// Parse reduces a raw value to a Value.
//
//   - nil, and a nil *big.Float, reduce to Empty.
//   - Keyed values reduce to their key.
//   - strings, booleans, every integer and float kind (including named types
//     such as time.Month) and *big.Float reduce through their canonical text.
//
// Anything else is a composite value and fails with errors.ErrUnsupportedValue;
// composites must be reduced to a primitive field first.
func Parse(raw any) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Empty(), nil
	case string:
		return FromText(val), nil
	case int:
		return FromText(strconv.Itoa(val)), nil
	case int16:
		return FromText(strconv.FormatInt(int64(val), 10)), nil
	case int32:
		return FromText(strconv.FormatInt(int64(val), 10)), nil
	case int64:
		return FromText(strconv.FormatInt(val, 10)), nil
	case float32:
		return FromText(strconv.FormatFloat(float64(val), 'g', -1, 32)), nil
	case float64:
		return FromText(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case *big.Float:
		if val == nil {
			return Empty(), nil
		}

		return FromText(val.Text('g', -1)), nil
	case Keyed:
		return Parse(val.PairKey())
	}

	return parseKind(raw)
}

// parseKind handles the less common primitive kinds and named types.
func parseKind(raw any) (Value, error) {
	rv := reflect.ValueOf(raw)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.String:
		return FromText(rv.String()), nil
	case reflect.Bool:
		return FromText(strconv.FormatBool(rv.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromText(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return FromText(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return FromText(strconv.FormatFloat(rv.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return FromText(strconv.FormatFloat(rv.Float(), 'g', -1, 64)), nil
	default:
		return Value{}, fmt.Errorf("%w: %T is a composite value, reduce it through a field first",
			errors.ErrUnsupportedValue, raw)
	}
}
