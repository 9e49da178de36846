// Package ndarray provides the strided multi-dimensional array core of ndkit.
package ndarray

// MaxDims is the hard cap on array rank. Every descriptor in this package
// carries exactly MaxDims slots, right-aligned: an array of rank r uses the
// rightmost r slots, and the leading MaxDims-r slots are fixed at extent 1.
const MaxDims = 4

// DType identifies the storage type of an array's elements.
type DType int

// Supported storage types. A boolean array is Uint8 storage with the
// Boolean flag set on the array; Bool is never a stored dtype.
const (
	Uint8 DType = iota
	Int8
	Uint16
	Int16
	Float
)

// Size returns the byte width of one element.
func (dt DType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Float:
		return 8
	default:
		panic("unknown dtype")
	}
}

// String returns a human-readable name for the dtype.
func (dt DType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Element is the constraint satisfied by every storable element type.
type Element interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~float64
}

// DTypeOf reports the DType corresponding to the element type T.
func DTypeOf[T Element]() DType {
	var dummy T
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case float64:
		return Float
	default:
		panic("unsupported element type")
	}
}
