package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opossumdb/columnstore/column"
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

func buildStringValueColumn(t *testing.T, values ...string) *column.ValueColumn[string] {
	t.Helper()
	c := column.NewValueColumn[string]()
	for _, v := range values {
		require.NoError(t, c.Append(v))
	}
	return c
}

// S1: names, width, dictionary, and codes per spec.md §8.
func TestDictionaryColumnBuildScenarioS1(t *testing.T) {
	base := buildStringValueColumn(t, "Bill", "Steve", "Alexander", "Steve", "Hasso", "Bill")

	dc, err := column.NewDictionaryColumn[string](base)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alexander", "Bill", "Hasso", "Steve"}, dc.Dictionary())
	assert.Equal(t, 4, dc.UniqueValuesCount())
	assert.Equal(t, 6, dc.Size())
	assert.Equal(t, 1, dc.AttributeVector().Width())

	wantCodes := []val.ValueID{1, 3, 0, 3, 2, 1}
	for i, want := range wantCodes {
		code, err := dc.AttributeVector().Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, code)
	}
}

func TestDictionaryColumnPreservesContent(t *testing.T) {
	base := column.NewValueColumn[int32]()
	for _, v := range []int32{5, 1, 5, 3, 1, 9} {
		require.NoError(t, base.Append(v))
	}

	dc, err := column.NewDictionaryColumn[int32](base)
	require.NoError(t, err)

	require.Equal(t, base.Size(), dc.Size())
	for i := 0; i < base.Size(); i++ {
		got, err := dc.Get(i)
		require.NoError(t, err)
		assert.Equal(t, base.Values()[i], got)
	}

	dict := dc.Dictionary()
	for i := 1; i < len(dict); i++ {
		assert.Less(t, dict[i-1], dict[i])
	}
}

// S2: bounds over [0,2,4,6,8,10].
func TestDictionaryColumnBoundsScenarioS2(t *testing.T) {
	base := column.NewValueColumn[int32]()
	for _, v := range []int32{0, 2, 4, 6, 8, 10} {
		require.NoError(t, base.Append(v))
	}
	dc, err := column.NewDictionaryColumn[int32](base)
	require.NoError(t, err)

	assert.Equal(t, val.ValueID(2), dc.LowerBound(4))
	assert.Equal(t, val.ValueID(3), dc.UpperBound(4))
	assert.Equal(t, val.ValueID(3), dc.LowerBound(5))
	assert.Equal(t, val.ValueID(3), dc.UpperBound(5))
	assert.Equal(t, val.InvalidValueID, dc.LowerBound(15))
	assert.Equal(t, val.InvalidValueID, dc.UpperBound(15))
}

func TestDictionaryColumnBoundsVariant(t *testing.T) {
	base := column.NewValueColumn[int32]()
	for _, v := range []int32{0, 2, 4} {
		require.NoError(t, base.Append(v))
	}
	dc, err := column.NewDictionaryColumn[int32](base)
	require.NoError(t, err)

	got, err := dc.LowerBoundVariant(2)
	require.NoError(t, err)
	assert.Equal(t, val.ValueID(1), got)

	_, err = dc.LowerBoundVariant("nope")
	assert.True(t, storeerr.Is(err, storeerr.TypeMismatch))
}

func TestDictionaryColumnAppendImmutable(t *testing.T) {
	base := buildStringValueColumn(t, "a")
	dc, err := column.NewDictionaryColumn[string](base)
	require.NoError(t, err)

	err = dc.Append("b")
	assert.True(t, storeerr.Is(err, storeerr.ImmutableColumn))
}

// S4: compress then read.
func TestDictionaryColumnScenarioS4(t *testing.T) {
	base := column.NewValueColumn[int32]()
	require.NoError(t, base.Append(int32(1)))
	require.NoError(t, base.Append(int32(1)))

	dc, err := column.NewDictionaryColumn[int32](base)
	require.NoError(t, err)

	assert.Equal(t, 2, dc.Size())
	assert.Equal(t, 1, dc.UniqueValuesCount())
	v0, err := dc.Get(0)
	require.NoError(t, err)
	v1, err := dc.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v0)
	assert.Equal(t, int32(1), v1)
}
