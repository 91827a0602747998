package numstr

import (
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/amp-labs/numstring/errors"
	"github.com/amp-labs/numstring/maps"
	"github.com/amp-labs/numstring/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named string

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  any
		number optional.Value[float64]
		text   string
	}{
		{name: "nil", input: nil, number: optional.None[float64](), text: ""},
		{name: "numeric string", input: "1", number: optional.Some(1.0), text: "1"},
		{name: "int", input: 1, number: optional.Some(1.0), text: "1"},
		{name: "int16", input: int16(-3), number: optional.Some(-3.0), text: "-3"},
		{name: "int32", input: int32(12), number: optional.Some(12.0), text: "12"},
		{name: "int64", input: int64(120), number: optional.Some(120.0), text: "120"},
		{name: "float32", input: float32(0.5), number: optional.Some(0.5), text: "0.5"},
		{name: "float64", input: 3.25, number: optional.Some(3.25), text: "3.25"},
		{name: "decimal", input: big.NewFloat(2.5), number: optional.Some(2.5), text: "2.5"},
		{name: "nil decimal", input: (*big.Float)(nil), number: optional.None[float64](), text: ""},
		{name: "letters", input: "a", number: optional.None[float64](), text: "a"},
		{name: "empty string", input: "", number: optional.None[float64](), text: ""},
		{name: "comma blocks number", input: "1,2", number: optional.None[float64](), text: "1,2"},
		{name: "mixed", input: "22AA", number: optional.None[float64](), text: "22AA"},
		{name: "named string", input: named("10"), number: optional.Some(10.0), text: "10"},
		{name: "named int", input: time.March, number: optional.Some(3.0), text: "3"},
		{name: "uint8", input: uint8(9), number: optional.Some(9.0), text: "9"},
		{name: "bool", input: true, number: optional.None[float64](), text: "true"},
		{
			name:   "pair reduces to key",
			input:  maps.KeyValuePair[string, []string]{Key: "1", Value: []string{"ignored"}},
			number: optional.Some(1.0),
			text:   "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			val, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.number, val.Number())
			assert.Equal(t, tt.text, val.Text())
		})
	}
}

func TestParse_Composite(t *testing.T) {
	t.Parallel()

	inputs := []any{
		time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		struct{ A int }{A: 1},
		[]string{"1"},
		map[string]int{},
		maps.KeyValuePair[time.Time, int]{},
	}

	for _, input := range inputs {
		_, err := Parse(input)
		require.ErrorIs(t, err, errors.ErrUnsupportedValue, "%T", input)
	}
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 (1)", New(optional.Some(1.0), "1").String())
	assert.Equal(t, "null (a)", New(optional.None[float64](), "a").String())
	assert.Equal(t, "null ()", Empty().String())
	assert.Equal(t, "2.5 (2.50)", FromText("2.50").String())
}

func TestValue_PartsAreLazy(t *testing.T) {
	t.Parallel()

	val := FromText("22AA1aa")
	assert.False(t, val.parts.Initialized())

	assert.Equal(t, []string{"22", "AA", "1", "aa"}, val.Parts())
	assert.True(t, val.parts.Initialized())

	// Copies share the computed parts.
	cp := val
	assert.True(t, cp.parts.Initialized())
}

func TestValue_NumericCompareSkipsParts(t *testing.T) {
	t.Parallel()

	a, b := FromText("3"), FromText("10")
	assert.Equal(t, -1, Compare(a, b))
	assert.False(t, a.parts.Initialized())
	assert.False(t, b.parts.Initialized())
}

func TestValue_EmptyPartsAreReady(t *testing.T) {
	t.Parallel()

	val := Empty()
	assert.True(t, val.parts.Initialized())
	assert.Equal(t, []string{}, val.Parts())
	assert.Equal(t, 0, Compare(val, FromText("")))
}

func TestValue_ZeroValue(t *testing.T) {
	t.Parallel()

	var val Value
	assert.Empty(t, val.Parts())
	assert.Empty(t, val.Text())
	assert.True(t, val.Number().Empty())
}

func TestValue_ConcurrentParts(t *testing.T) {
	t.Parallel()

	val := FromText("AA11aa")

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.Equal(t, []string{"AA", "11", "aa"}, val.Parts())
		}()
	}

	wg.Wait()
}
