package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opossumdb/columnstore/column"
	"github.com/opossumdb/columnstore/storeerr"
)

func TestValueColumnAppendAndRead(t *testing.T) {
	c := column.NewValueColumn[int32]()
	require.NoError(t, c.Append(int32(4)))
	require.NoError(t, c.Append(int32(6)))
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, []int32{4, 6}, c.Values())

	v, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
}

func TestValueColumnAppendCastsVariant(t *testing.T) {
	c := column.NewValueColumn[float64]()
	require.NoError(t, c.Append(3))
	assert.Equal(t, []float64{3}, c.Values())
}

func TestValueColumnAppendTypeMismatch(t *testing.T) {
	c := column.NewValueColumn[int32]()
	err := c.Append("not a number")
	assert.True(t, storeerr.Is(err, storeerr.TypeMismatch))
}

func TestValueColumnAtOutOfRange(t *testing.T) {
	c := column.NewValueColumn[string]()
	_, err := c.At(0)
	assert.True(t, storeerr.Is(err, storeerr.OutOfRange))
}
