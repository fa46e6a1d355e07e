// Package val defines the scalar type system used at the storage core's
// boundaries: AllTypeVariant, the closed set of supported scalar types, the
// canonical type tags used to name them, and the type dispatcher that maps
// a runtime tag to a type-parameterized callable.
//
// Hot paths (columns, the scan operator) are written directly against a Go
// type parameter T once the concrete scalar type is known; AllTypeVariant
// and the dispatcher exist only at the boundary where a type tag or a
// dynamically-typed value crosses into that generic code.
package val

import (
	"fmt"

	"github.com/opossumdb/columnstore/storeerr"
)

// AllTypeVariant is a dynamically-typed scalar value, used only at API
// boundaries (row construction, search values, diagnostic accessors).
// Its dynamic type is always one of the Scalar constraint's types.
type AllTypeVariant = any

// Scalar is the closed set of scalar types the storage core supports.
// Extending the system means adding a case here, to the type tags below,
// and to every Visitor implementation.
type Scalar interface {
	int32 | float64 | string
}

// Canonical, lowercase type tags.
const (
	TagInt    = "int"
	TagFloat  = "float"
	TagString = "string"
)

// Visitor is implemented once per operation that must be specialized for
// each supported scalar type at dispatch time. Go generics can't
// instantiate a type parameter from a runtime string directly, so the
// dispatcher resolves the tag and calls the matching visitor method
// instead — the idiomatic substitute for the templated "run impl" pattern
// this package's design note (spec.md §4.7) describes.
type Visitor[R any] interface {
	VisitInt() R
	VisitFloat() R
	VisitString() R
}

// Dispatch resolves tag to a supported scalar type and invokes the
// matching method on v. It fails with storeerr.UnknownType if tag does
// not name a supported scalar type.
func Dispatch[R any](tag string, v Visitor[R]) (R, error) {
	switch tag {
	case TagInt:
		return v.VisitInt(), nil
	case TagFloat:
		return v.VisitFloat(), nil
	case TagString:
		return v.VisitString(), nil
	default:
		var zero R
		return zero, storeerr.New(storeerr.UnknownType, "unknown type tag %q", tag)
	}
}

// TagFor returns the canonical type tag for T.
func TagFor[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case int32:
		return TagInt
	case float64:
		return TagFloat
	case string:
		return TagString
	default:
		return fmt.Sprintf("%T", zero)
	}
}

// Cast converts an AllTypeVariant to T, following narrowing/widening rules
// for the numeric scalar types (int, int32 and int64 coerce to int32; int,
// int32, int64 and float32 coerce to float64; other integer types such as
// int8 or uint are not accepted). It fails with storeerr.TypeMismatch when
// v's dynamic type cannot convert to T.
func Cast[T Scalar](v AllTypeVariant) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	switch any(zero).(type) {
	case int32:
		if t, ok := castToInt32(v); ok {
			return any(t).(T), nil
		}
	case float64:
		if t, ok := castToFloat64(v); ok {
			return any(t).(T), nil
		}
	case string:
		// strings do not coerce from other dynamic types.
	}
	return zero, storeerr.New(storeerr.TypeMismatch, "cannot cast %T value %v to %T", v, v, zero)
}

func castToInt32(v AllTypeVariant) (int32, bool) {
	switch x := v.(type) {
	case int32:
		return x, true
	case int:
		return int32(x), true
	case int64:
		return int32(x), true
	}
	return 0, false
}

func castToFloat64(v AllTypeVariant) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}
