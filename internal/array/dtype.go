// Package array provides the buffer-owning Array type and the non-owning
// View type that aliases a strided window of an Array's buffer.
package array

import "unsafe"

// Scalar is the constraint for supported element types.
// The set is closed: every member has a matching DataType tag.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// DataType is the runtime tag for an element type.
type DataType int

// Supported data types.
const (
	Bool8 DataType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Floating-point elements must be exactly IEEE-754 single and double width.
var (
	_ [4]struct{} = [unsafe.Sizeof(float32(0))]struct{}{}
	_ [8]struct{} = [unsafe.Sizeof(float64(0))]struct{}{}
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Bool8, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool8:
		return "bool8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf returns the tag for T.
func DataTypeOf[T Scalar]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported type")
	}
}
