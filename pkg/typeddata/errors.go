package typeddata

import "github.com/pkg/errors"

var (
	// ErrSchemaMismatch is returned when a value does not structurally match
	// its declared type: missing or extra fields, a non-struct value for a
	// struct field, an array length that disagrees with a fixed-size array
	// type, or a primitive value of the wrong shape.
	ErrSchemaMismatch = errors.New("typeddata: value does not conform to its declared type")

	// ErrUnsupportedType is returned when a field references a type outside
	// the supported set: not a known primitive, not defined in the registry,
	// and not an array of either.
	ErrUnsupportedType = errors.New("typeddata: unsupported type")
)
