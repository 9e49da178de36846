package ndarray

// Iter walks every valid index tuple of a descriptor in lexicographic
// order, maintaining the running element position as it goes. It replaces
// dynamic-rank recursion with a fixed-size counter vector and a single
// carry-based advance: the innermost counter steps by its stride, and a
// completed axis rewinds its contribution and carries one step into the
// next-outer axis. Axes absent from a lower-rank array degenerate to
// single-iteration counters, so one routine serves ranks 1 through MaxDims.
type Iter struct {
	shape   Shape
	strides Strides
	idx     [MaxDims]int
	ptr     int
}

// NewIter starts a traversal over a's descriptor at its base offset.
func NewIter(a *NDArray) *Iter {
	return NewDescIter(a.shape, a.strides, a.offset)
}

// NewDescIter starts a traversal over a bare shape/strides descriptor.
// Unused leading slots must hold extent 1.
func NewDescIter(shape Shape, strides Strides, offset int) *Iter {
	return &Iter{shape: shape, strides: strides, ptr: offset}
}

// Ptr returns the current absolute element position in the buffer.
func (it *Iter) Ptr() int { return it.ptr }

// Index returns the current per-axis counters.
func (it *Iter) Index() [MaxDims]int { return it.idx }

// Next advances to the next index tuple. It returns false once the
// outermost counter overflows, i.e. after the last position was visited.
func (it *Iter) Next() bool {
	for ax := MaxDims - 1; ax >= 0; ax-- {
		it.idx[ax]++
		it.ptr += it.strides[ax]
		if it.idx[ax] < it.shape[ax] {
			return true
		}
		it.idx[ax] = 0
		it.ptr -= it.strides[ax] * it.shape[ax]
	}
	return false
}
