package numstr

import (
	"strconv"
	"strings"

	"github.com/amp-labs/numstring/lazy"
	"github.com/amp-labs/numstring/optional"
	"github.com/amp-labs/numstring/segment"
)

// Value is a NumberString: the reduced form of one operand.
//
// number is set only when the whole text is a number and contains no comma.
// parts is derived from text alone and computed at most once, on first use.
// Copies of a Value share the same lazily computed parts.
type Value struct {
	number optional.Value[float64]
	text   string
	parts  *lazy.Of[[]string]
}

// New builds a Value from an explicit number and text.
func New(number optional.Value[float64], text string) Value {
	return Value{
		number: number,
		text:   text,
		parts: lazy.New(func() []string {
			return segment.Split(text)
		}),
	}
}

// Empty is the reduction of an absent value: no number, empty text.
func Empty() Value {
	return Value{
		number: optional.None[float64](),
		parts:  lazy.Ready([]string{}),
	}
}

// FromText reduces text: the number is set when text parses entirely as a
// number and has no comma.
func FromText(text string) Value {
	if strings.Contains(text, ",") {
		return New(optional.None[float64](), text)
	}

	return New(optional.FromOK(segment.ParseNumber(text)), text)
}

// Number returns the numeric interpretation, if any.
func (v Value) Number() optional.Value[float64] {
	return v.number
}

// Text returns the original text. It is never nil-like; absent values have "".
func (v Value) Text() string {
	return v.text
}

// Parts returns the segments of the text. The slice is shared with other
// callers and must not be modified.
func (v Value) Parts() []string {
	if v.parts == nil {
		return segment.Split(v.text)
	}

	return v.parts.Get()
}

// String renders the value as "<number> (<text>)", using "null" for a
// missing number, e.g. "1 (1)" or "null (a)".
func (v Value) String() string {
	number := v.number.Format(func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}, "null")

	return number + " (" + v.text + ")"
}
