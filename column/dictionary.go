package column

import (
	"sort"

	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// DictionaryColumn is an immutable column storing values as codes into a
// sorted, duplicate-free dictionary, with the codes themselves held in a
// bit-width-fitted AttributeVector.
type DictionaryColumn[T val.Scalar] struct {
	dictionary []T
	attrVec    AttributeVector
}

// NewDictionaryColumn builds a dictionary column from any column whose
// elements convert to T, preserving row order in the attribute vector.
func NewDictionaryColumn[T val.Scalar](base Column) (*DictionaryColumn[T], error) {
	n := base.Size()
	decoded := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := base.At(i)
		if err != nil {
			return nil, err
		}
		t, err := val.Cast[T](v)
		if err != nil {
			return nil, err
		}
		decoded[i] = t
	}

	dict := uniqueSorted(decoded)
	attrVec := NewAttributeVector(len(dict))
	for _, v := range decoded {
		code := codeOf(dict, v)
		if err := attrVec.Set(attrVec.Size(), val.ValueID(code)); err != nil {
			return nil, err
		}
	}

	return &DictionaryColumn[T]{dictionary: dict, attrVec: attrVec}, nil
}

func uniqueSorted[T val.Scalar](values []T) []T {
	sorted := make([]T, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// codeOf returns the index of v within the sorted, duplicate-free
// dictionary. v is always present, since it was used to build it.
func codeOf[T val.Scalar](dict []T, v T) int {
	return sort.Search(len(dict), func(i int) bool { return !(dict[i] < v) })
}

// Get dereferences the code at row i via the dictionary.
func (c *DictionaryColumn[T]) Get(i int) (T, error) {
	var zero T
	code, err := c.attrVec.Get(i)
	if err != nil {
		return zero, err
	}
	return c.dictionary[code], nil
}

// At returns the value at row i as a variant.
func (c *DictionaryColumn[T]) At(i int) (val.AllTypeVariant, error) {
	return c.Get(i)
}

// Append always fails: dictionary columns are immutable.
func (c *DictionaryColumn[T]) Append(val.AllTypeVariant) error {
	return storeerr.New(storeerr.ImmutableColumn, "cannot append to a dictionary column")
}

// Size returns the number of rows (the attribute vector's length).
func (c *DictionaryColumn[T]) Size() int { return c.attrVec.Size() }

// Dictionary returns the immutable, sorted, duplicate-free dictionary.
func (c *DictionaryColumn[T]) Dictionary() []T { return c.dictionary }

// AttributeVector returns the immutable code array.
func (c *DictionaryColumn[T]) AttributeVector() AttributeVector { return c.attrVec }

// UniqueValuesCount returns the number of unique values (dictionary size).
func (c *DictionaryColumn[T]) UniqueValuesCount() int { return len(c.dictionary) }

// LowerBound returns the first ValueID whose value is >= v, or
// val.InvalidValueID if every dictionary value is smaller than v.
func (c *DictionaryColumn[T]) LowerBound(v T) val.ValueID {
	i := sort.Search(len(c.dictionary), func(i int) bool { return !(c.dictionary[i] < v) })
	if i == len(c.dictionary) {
		return val.InvalidValueID
	}
	return val.ValueID(i)
}

// UpperBound returns the first ValueID whose value is > v, or
// val.InvalidValueID if no dictionary value exceeds v.
func (c *DictionaryColumn[T]) UpperBound(v T) val.ValueID {
	i := sort.Search(len(c.dictionary), func(i int) bool { return v < c.dictionary[i] })
	if i == len(c.dictionary) {
		return val.InvalidValueID
	}
	return val.ValueID(i)
}

// LowerBoundVariant casts v to T via the type dispatcher before delegating
// to LowerBound.
func (c *DictionaryColumn[T]) LowerBoundVariant(v val.AllTypeVariant) (val.ValueID, error) {
	t, err := val.Cast[T](v)
	if err != nil {
		return 0, err
	}
	return c.LowerBound(t), nil
}

// UpperBoundVariant casts v to T via the type dispatcher before delegating
// to UpperBound.
func (c *DictionaryColumn[T]) UpperBoundVariant(v val.AllTypeVariant) (val.ValueID, error) {
	t, err := val.Cast[T](v)
	if err != nil {
		return 0, err
	}
	return c.UpperBound(t), nil
}
