package val_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

type tagVisitor struct{}

func (tagVisitor) VisitInt() string    { return val.TagInt }
func (tagVisitor) VisitFloat() string  { return val.TagFloat }
func (tagVisitor) VisitString() string { return val.TagString }

func TestDispatchKnownTags(t *testing.T) {
	for _, tag := range []string{val.TagInt, val.TagFloat, val.TagString} {
		got, err := val.Dispatch[string](tag, tagVisitor{})
		require.NoError(t, err)
		assert.Equal(t, tag, got)
	}
}

func TestDispatchUnknownTag(t *testing.T) {
	_, err := val.Dispatch[string]("decimal", tagVisitor{})
	assert.True(t, storeerr.Is(err, storeerr.UnknownType))
}

func TestCastWidensIntegers(t *testing.T) {
	got, err := val.Cast[int32](42)
	require.NoError(t, err)
	assert.Equal(t, int32(42), got)

	gotF, err := val.Cast[float64](int32(7))
	require.NoError(t, err)
	assert.Equal(t, float64(7), gotF)
}

func TestCastMismatch(t *testing.T) {
	_, err := val.Cast[int32]("nope")
	assert.True(t, storeerr.Is(err, storeerr.TypeMismatch))
}

func TestTagFor(t *testing.T) {
	assert.Equal(t, val.TagInt, val.TagFor[int32]())
	assert.Equal(t, val.TagFloat, val.TagFor[float64]())
	assert.Equal(t, val.TagString, val.TagFor[string]())
}

func TestInvalidValueIDSurvivesNarrowing(t *testing.T) {
	assert.Equal(t, uint8(0xFF), uint8(val.InvalidValueID))
	assert.Equal(t, uint16(0xFFFF), uint16(val.InvalidValueID))
}
