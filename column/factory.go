package column

import (
	"github.com/opossumdb/columnstore/storeerr"
	"github.com/opossumdb/columnstore/val"
)

// valueFactory is the Visitor used to construct a fresh, empty ValueColumn
// for a runtime type tag.
type valueFactory struct{}

func (valueFactory) VisitInt() Column    { return NewValueColumn[int32]() }
func (valueFactory) VisitFloat() Column  { return NewValueColumn[float64]() }
func (valueFactory) VisitString() Column { return NewValueColumn[string]() }

// NewValueByType constructs a ValueColumn of the scalar type named by tag.
// It fails with storeerr.UnknownType if tag is not recognized.
func NewValueByType(tag string) (Column, error) {
	return val.Dispatch[Column](tag, valueFactory{})
}

// NewDictByType constructs a DictionaryColumn of the scalar type named by
// tag over base. It fails with storeerr.UnknownType if tag is not
// recognized, or whatever error NewDictionaryColumn returns otherwise.
func NewDictByType(tag string, base Column) (Column, error) {
	switch tag {
	case val.TagInt:
		return NewDictionaryColumn[int32](base)
	case val.TagFloat:
		return NewDictionaryColumn[float64](base)
	case val.TagString:
		return NewDictionaryColumn[string](base)
	default:
		return nil, storeerr.New(storeerr.UnknownType, "unknown type tag %q", tag)
	}
}

// TagOf returns the canonical type tag (val.TagFor) for col's concrete
// scalar type. Callers use it to validate a caller-supplied tag against a
// column's actual type before an operation that trusts the tag, e.g.
// Chunk.Compress. Fails with storeerr.UnknownType if col is not one of
// ValueColumn[T]/DictionaryColumn[T] for a supported T (a ReferenceColumn
// has no single scalar type of its own).
func TagOf(col Column) (string, error) {
	switch col.(type) {
	case *ValueColumn[int32], *DictionaryColumn[int32]:
		return val.TagFor[int32](), nil
	case *ValueColumn[float64], *DictionaryColumn[float64]:
		return val.TagFor[float64](), nil
	case *ValueColumn[string], *DictionaryColumn[string]:
		return val.TagFor[string](), nil
	default:
		return "", storeerr.New(storeerr.UnknownType, "column %T has no canonical type tag", col)
	}
}
