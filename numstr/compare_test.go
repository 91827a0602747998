package numstr

import (
	"math"
	"slices"
	"testing"

	"facette.io/natsort"
	"github.com/stretchr/testify/assert"
)

func sortTexts(in []string, order TextOrder) []string {
	out := slices.Clone(in)

	slices.SortStableFunc(out, func(a, b string) int {
		return CompareWith(FromText(a), FromText(b), order)
	})

	return out
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "numbers by value not length", a: "3", b: "10", expected: -1},
		{name: "equal numbers", a: "10", b: "10", expected: 0},
		{name: "numerically equal texts", a: "1.0", b: "1", expected: 0},
		{name: "decimals", a: "3.14", b: "3.2", expected: -1},
		{name: "negative numbers", a: "-5", b: "2", expected: -1},
		{name: "number before letters", a: "111", b: "a", expected: -1},
		{name: "identical text", a: "abc", b: "abc", expected: 0},
		{name: "shorter first when b longer", a: "2", b: "2ab", expected: -1},
		{name: "shorter first when a longer", a: "2ab", b: "2", expected: 1},
		{name: "shorter text parts first when b longer", a: "22AA", b: "22AA1", expected: -1},
		{name: "shorter text parts first when a longer", a: "22AA1", b: "22AA", expected: 1},
		{name: "numeric part compared by value", a: "a2", b: "a10", expected: -1},
		{name: "number vs text part falls back to text", a: "a1", b: "ab", expected: -1},
		{name: "lower case before upper case", a: "4ab", b: "4Ab", expected: -1},
		{name: "case-insensitive first", a: "A", b: "c", expected: -1},
		{name: "case-insensitive first reversed", a: "X", b: "c", expected: 1},
		{name: "prefix word first", a: "a", b: "AA1", expected: -1},
		{name: "comma list element-wise", a: "1,2", b: "1,2,3", expected: -1},
		{name: "comma list text element", a: "1,2,3", b: "1, a, ", expected: -1},
		{name: "comma list vs number", a: "1, a, ", b: "3", expected: -1},
		{name: "number vs comma list prefix", a: "1", b: "1,2", expected: -1},
		{name: "empty before anything", a: "", b: "a", expected: -1},
		{name: "empty equals empty", a: "", b: "", expected: 0},
		{name: "digit separators are text", a: "1_000", b: "20", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(FromText(tt.a), FromText(tt.b)))
			assert.Equal(t, -tt.expected, Compare(FromText(tt.b), FromText(tt.a)), "antisymmetry")
		})
	}
}

func TestCompare_Overflow(t *testing.T) {
	t.Parallel()

	huge := FromText("1e400")
	inf, ok := huge.Number().Get()
	assert.True(t, ok)
	assert.True(t, math.IsInf(inf, 1))

	assert.Equal(t, 1, Compare(huge, FromText("1e300")))
	assert.Equal(t, -1, Compare(FromText("-1e400"), FromText("-1e300")))
}

func TestCompare_NumericStringsOrderByValue(t *testing.T) {
	t.Parallel()

	in := []string{"100", "9", "10", "1", "20", "2", "0.5", "-1"}
	assert.Equal(t, []string{"-1", "0.5", "1", "2", "9", "10", "20", "100"}, sortTexts(in, Collated))
}

func TestCompare_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("numbers before letters", func(t *testing.T) {
		t.Parallel()

		in := []string{"A", "c", "X", "11", "1", "12", "120", "3"}
		assert.Equal(t, []string{"1", "3", "11", "12", "120", "A", "c", "X"}, sortTexts(in, Collated))
	})

	t.Run("mixed values", func(t *testing.T) {
		t.Parallel()

		in := []string{
			"a", "x", "yy", "yya", "yyz", "yyb", "1", "2", "3", "4", "11", "22", "33", "44",
			"111", "10", "1ab", "2ab", "3abb", "4ab", "4Ab",
		}
		expected := []string{
			"1", "1ab", "2", "2ab", "3", "3abb", "4", "4ab", "4Ab", "10", "11", "22", "33", "44",
			"111", "a", "x", "yy", "yya", "yyb", "yyz",
		}
		assert.Equal(t, expected, sortTexts(in, Collated))
	})

	t.Run("comma lists and runs", func(t *testing.T) {
		t.Parallel()

		in := []string{"22", "a", "22AA", "22AA1", "1", "10", "AA1", "3", "1,2,3", "1,2", "1, a, "}
		expected := []string{"1", "1,2", "1,2,3", "1, a, ", "3", "10", "22", "22AA", "22AA1", "a", "AA1"}
		assert.Equal(t, expected, sortTexts(in, Collated))
	})
}

func TestCompare_Ordinal(t *testing.T) {
	t.Parallel()

	in := []string{"c", "A", "X", "b", "2", "10"}
	assert.Equal(t, []string{"2", "10", "A", "X", "b", "c"}, sortTexts(in, Ordinal))
	assert.Equal(t, []string{"2", "10", "A", "b", "c", "X"}, sortTexts(in, Collated))
}

func TestCompare_AgreesWithNatsort(t *testing.T) {
	t.Parallel()

	in := []string{"file10.txt", "file2.txt", "file1.txt", "file20.txt", "file3.txt", "file100.txt"}

	expected := slices.Clone(in)
	natsort.Sort(expected)

	assert.Equal(t, expected, sortTexts(in, Collated))
	assert.Equal(t, expected, sortTexts(in, Ordinal))
}

func TestTextOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Collated.Compare("a", "a"))
	assert.Equal(t, -1, Collated.Compare("ab", "Ab"))
	assert.Equal(t, 1, Ordinal.Compare("ab", "Ab"))
	assert.Equal(t, "collated", Collated.String())
	assert.Equal(t, "ordinal", Ordinal.String())

	order, ok := ParseTextOrder("Ordinal")
	assert.True(t, ok)
	assert.Equal(t, Ordinal, order)

	_, ok = ParseTextOrder("locale")
	assert.False(t, ok)
}
