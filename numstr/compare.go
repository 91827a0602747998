package numstr

import (
	"cmp"
	"slices"

	"github.com/amp-labs/numstring/optional"
	"github.com/amp-labs/numstring/segment"
)

// Compare orders a and b using the Collated text order.
func Compare(a, b Value) int {
	return CompareWith(a, b, Collated)
}

// CompareWith orders a and b, returning -1, 0 or +1.
//
// If both have a number they compare numerically and nothing is segmented.
// Otherwise their parts are compared position by position: two numeric parts
// numerically, anything else with order. The first difference decides. If
// one part list runs out first, it sorts first, whichever operand it is.
func CompareWith(a, b Value, order TextOrder) int {
	if x, y, ok := optional.Both(a.number, b.number); ok {
		return cmp.Compare(x, y)
	}

	return compareParts(a.Parts(), b.Parts(), order)
}

func compareParts(a, b []string, order TextOrder) int {
	if slices.Equal(a, b) {
		return 0
	}

	for i := range min(len(a), len(b)) {
		if res := comparePart(a[i], b[i], order); res != 0 {
			return res
		}
	}

	return cmp.Compare(len(a), len(b))
}

func comparePart(a, b string, order TextOrder) int {
	x, xok := segment.ParseNumber(a)
	y, yok := segment.ParseNumber(b)

	if xok && yok {
		return cmp.Compare(x, y)
	}

	return order.Compare(a, b)
}
