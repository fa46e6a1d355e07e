package column

import (
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// AttributeVector is a compact array of dictionary codes, stored at the
// narrowest of {8,16,32} bits that fits the dictionary it indexes.
type AttributeVector interface {
	// Get returns the code stored at position i, widened to val.ValueID.
	Get(i int) (val.ValueID, error)
	// Set writes code at position i. If i equals Size, the code is
	// appended; if i is less than Size, it is inserted at i, shifting
	// the tail back. The dictionary builder always passes i == Size,
	// making the effective behavior append-only.
	Set(i int, code val.ValueID) error
	// Size returns the number of codes stored.
	Size() int
	// Width returns the number of bytes per code.
	Width() int
}

// NewAttributeVector returns the narrowest AttributeVector implementation
// that can represent codes for a dictionary of dictSize unique values.
func NewAttributeVector(dictSize int) AttributeVector {
	switch {
	case dictSize <= 1<<8:
		return &fittedVector[uint8]{}
	case dictSize <= 1<<16:
		return &fittedVector[uint16]{}
	default:
		return &fittedVector[uint32]{}
	}
}

type fittedCode interface {
	~uint8 | ~uint16 | ~uint32
}

// fittedVector is the single generic implementation backing all three
// attribute-vector widths; NewAttributeVector picks the instantiation.
type fittedVector[T fittedCode] struct {
	codes []T
}

func (a *fittedVector[T]) Get(i int) (val.ValueID, error) {
	if i < 0 || i >= len(a.codes) {
		return 0, storeerr.New(storeerr.OutOfRange, "attribute vector index %d out of range [0,%d)", i, len(a.codes))
	}
	return val.ValueID(a.codes[i]), nil
}

func (a *fittedVector[T]) Set(i int, code val.ValueID) error {
	if i < 0 || i > len(a.codes) {
		return storeerr.New(storeerr.OutOfRange, "attribute vector index %d out of range [0,%d]", i, len(a.codes))
	}
	var zero T
	maxForWidth := val.ValueID(^zero)
	if code > maxForWidth {
		return storeerr.New(storeerr.ValueOutOfRange, "code %d exceeds attribute vector width (max %d)", code, maxForWidth)
	}

	c := T(code)
	if i == len(a.codes) {
		a.codes = append(a.codes, c)
		return nil
	}
	a.codes = append(a.codes, zero)
	copy(a.codes[i+1:], a.codes[i:])
	a.codes[i] = c
	return nil
}

func (a *fittedVector[T]) Size() int { return len(a.codes) }

func (a *fittedVector[T]) Width() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}
