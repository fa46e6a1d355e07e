package storeerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opossumdb/columnstore/storeerr"
)

func TestIsMatchesKind(t *testing.T) {
	err := storeerr.New(storeerr.UnknownColumn, "column %q not found", "foo")
	assert.True(t, storeerr.Is(err, storeerr.UnknownColumn))
	assert.False(t, storeerr.Is(err, storeerr.UnknownTable))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := storeerr.Wrap(storeerr.TypeMismatch, cause, "cast failed")
	require.True(t, storeerr.Is(err, storeerr.TypeMismatch))
	assert.ErrorIs(t, err, cause)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "DuplicateName", storeerr.DuplicateName.String())
}
