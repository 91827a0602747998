package numstr

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TextOrder decides how two non-numeric parts are ordered.
type TextOrder int

const (
	// Collated orders text by the Unicode root collation, falling back to
	// byte order when the collation considers two different strings equal.
	Collated TextOrder = iota

	// Ordinal orders text byte-wise, like strings.Compare.
	Ordinal
)

// A Collator keeps per-call buffers and is not safe for concurrent use.
var collators = sync.Pool{ //nolint:gochecknoglobals
	New: func() any {
		return collate.New(language.Und)
	},
}

// Compare orders a and b, returning -1, 0 or +1. Only identical strings
// compare equal.
func (o TextOrder) Compare(a, b string) int {
	if a == b {
		return 0
	}

	if o == Ordinal {
		return strings.Compare(a, b)
	}

	col, _ := collators.Get().(*collate.Collator)
	defer collators.Put(col)

	if res := col.CompareString(a, b); res != 0 {
		return res
	}

	return strings.Compare(a, b)
}

func (o TextOrder) String() string {
	switch o {
	case Collated:
		return "collated"
	case Ordinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

// ParseTextOrder maps "collated" or "ordinal" to a TextOrder.
func ParseTextOrder(name string) (TextOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "collated", "":
		return Collated, true
	case "ordinal":
		return Ordinal, true
	default:
		return Collated, false
	}
}
