package ndarray

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// NDArray is a strided, typed, rank-capped multi-dimensional array.
//
// The element at logical index (i0, .., i3) lives at element position
// offset + Σ idx[k]*strides[k] in the shared buffer. Strides are signed, so
// a view can walk its source backwards; offset keeps every reachable
// position inside the buffer.
type NDArray struct {
	buf      *buffer
	dtype    DType
	itemsize int
	boolean  bool
	dense    bool
	ndim     int
	length   int
	offset   int
	shape    Shape
	strides  Strides
}

// NewDense allocates a zero-offset, row-major array of the given rank,
// shape and dtype. Slots of shape left of the logical axes are normalized
// to 1. This is the sole construction path for reduction and transform
// outputs. Fails with ErrAllocation when the element count's storage cannot
// be obtained.
func NewDense(ndim int, shape Shape, dtype DType) (*NDArray, error) {
	for i := 0; i < MaxDims-ndim && i < MaxDims; i++ {
		shape[i] = 1
	}
	if err := shape.validate(ndim); err != nil {
		return nil, errors.Wrap(ErrValue, err.Error())
	}

	length := shape.NumElements()
	itemsize := dtype.Size()
	if length < 0 || length > math.MaxInt/itemsize {
		return nil, errors.Wrapf(ErrAllocation, "cannot allocate %d elements of %s", length, dtype)
	}
	klog.V(2).Infof("ndarray: allocating dense %v %s (%d bytes)", shape.Extents(ndim), dtype, length*itemsize)

	return &NDArray{
		buf:      newBuffer(length * itemsize),
		dtype:    dtype,
		itemsize: itemsize,
		dense:    true,
		ndim:     ndim,
		length:   length,
		shape:    shape,
		strides:  DenseStrides(ndim, shape),
	}, nil
}

// NewView creates an array sharing src's buffer with its own descriptor.
// offsetDelta is added to src's offset, in elements. The buffer's reference
// count is bumped, so the view keeps the storage alive on its own.
func NewView(src *NDArray, ndim int, shape Shape, strides Strides, offsetDelta int) *NDArray {
	src.buf.addRef()
	return &NDArray{
		buf:      src.buf,
		dtype:    src.dtype,
		itemsize: src.itemsize,
		boolean:  src.boolean,
		dense:    isDense(ndim, shape, strides),
		ndim:     ndim,
		length:   shape.NumElements(),
		offset:   src.offset + offsetDelta,
		shape:    shape,
		strides:  strides,
	}
}

// DType returns the storage type.
func (a *NDArray) DType() DType { return a.dtype }

// ItemSize returns the byte width of one element.
func (a *NDArray) ItemSize() int { return a.itemsize }

// Boolean reports whether the array is a logical (boolean-valued) array
// layered over integer storage.
func (a *NDArray) Boolean() bool { return a.boolean }

// Dense reports whether strides form the canonical row-major layout.
func (a *NDArray) Dense() bool { return a.dense }

// NDim returns the logical rank.
func (a *NDArray) NDim() int { return a.ndim }

// Len returns the total element count.
func (a *NDArray) Len() int { return a.length }

// Offset returns the element index into the buffer where iteration begins.
func (a *NDArray) Offset() int { return a.offset }

// Shape returns the right-aligned extent descriptor.
func (a *NDArray) Shape() Shape { return a.shape }

// Strides returns the right-aligned signed element-step descriptor.
func (a *NDArray) Strides() Strides { return a.strides }

// Release drops this array's reference to the shared buffer. The storage
// is freed once the last referencing array releases it.
func (a *NDArray) Release() {
	a.buf.release()
}

// Shared reports whether other references the same buffer.
func (a *NDArray) Shared(other *NDArray) bool {
	return a.buf == other.buf
}

// Buffer interprets the whole backing buffer as a []T, for use with the
// absolute element positions produced by Iter. Panics if T does not match
// the array's dtype.
func Buffer[T Element](a *NDArray) []T {
	if want := DTypeOf[T](); want != a.dtype {
		panic("ndarray: buffer dtype is " + a.dtype.String() + ", not " + want.String())
	}
	data := a.buf.data
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // zero-copy reinterpretation, extent fixed by the allocation
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/a.itemsize)
}

// FloatAt returns the element at absolute buffer position elem as a float,
// whatever the storage type.
func FloatAt(a *NDArray, elem int) float64 {
	switch a.dtype {
	case Uint8:
		return float64(Buffer[uint8](a)[elem])
	case Int8:
		return float64(Buffer[int8](a)[elem])
	case Uint16:
		return float64(Buffer[uint16](a)[elem])
	case Int16:
		return float64(Buffer[int16](a)[elem])
	default:
		return Buffer[float64](a)[elem]
	}
}

// Scalar unwraps the element at the array's base offset as a host scalar:
// int for the integer dtypes, float64 for Float, bool for boolean arrays.
func Scalar(a *NDArray) any {
	if a.boolean {
		return Buffer[uint8](a)[a.offset] != 0
	}
	switch a.dtype {
	case Uint8:
		return int(Buffer[uint8](a)[a.offset])
	case Int8:
		return int(Buffer[int8](a)[a.offset])
	case Uint16:
		return int(Buffer[uint16](a)[a.offset])
	case Int16:
		return int(Buffer[int16](a)[a.offset])
	default:
		return Buffer[float64](a)[a.offset]
	}
}

// Copy returns a dense deep copy of a, walking the source in traversal
// order. Views densify: the copy owns fresh row-major storage.
func Copy(a *NDArray) (*NDArray, error) {
	out, err := NewDense(a.ndim, a.shape, a.dtype)
	if err != nil {
		return nil, err
	}
	out.boolean = a.boolean
	if a.dense {
		copy(out.buf.data, a.buf.data[a.offset*a.itemsize:(a.offset+a.length)*a.itemsize])
		return out, nil
	}
	switch a.dtype {
	case Uint8:
		copyInto[uint8](a, out)
	case Int8:
		copyInto[int8](a, out)
	case Uint16:
		copyInto[uint16](a, out)
	case Int16:
		copyInto[int16](a, out)
	default:
		copyInto[float64](a, out)
	}
	return out, nil
}

func copyInto[T Element](src, dst *NDArray) {
	in := Buffer[T](src)
	out := Buffer[T](dst)
	it := NewIter(src)
	for i := 0; ; i++ {
		out[i] = in[it.Ptr()]
		if !it.Next() {
			break
		}
	}
}
