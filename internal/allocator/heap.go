package allocator

import "unsafe"

// Heap is a Sticky Immix-style region heap: single-mutator, non-moving,
// never reclaiming a block on its own (that is a future collector's job).
// It owns a head block for small/medium allocations and an overflow block
// for medium allocations that don't fit the head's current hole.
type Heap struct {
	blocks BlockList
}

// NewHeap returns an empty Heap. It acquires no blocks until the first
// Alloc.
func NewHeap() *Heap {
	return &Heap{}
}

// Alloc writes obj into freshly allocated heap space preceded by a Header,
// and returns a RawPtr to it. Go forbids type parameters on methods, so
// this is a free function taking the Heap as its first argument rather
// than a method on Heap.
func Alloc[T HeapObject](h *Heap, obj T) (RawPtr[T], error) {
	sizeBytes := uint32(unsafe.Sizeof(obj))
	allocSize := alignUp(uintptr(HeaderSize) + uintptr(sizeBytes))
	class := classify(allocSize)

	space, err := h.findSpace(allocSize, class)
	if err != nil {
		return RawPtr[T]{}, err
	}

	header := (*Header)(space)
	*header = newHeader(obj.HeapTypeID(), sizeBytes, class)

	object := objectFor(header)
	*(*T)(object) = obj

	return newRawPtr[T](object), nil
}

// AllocArray allocates a raw, zero-initialized byte-array object of the
// given TypeId (one of the ArrayU8/ArrayU16/ArrayU32/ArrayBackingBytes
// family) and sizeBytes length, preceded by a Header. It exists alongside
// Alloc because array backing stores have no single Go value of static
// size to copy in — Text and the ArrayUN types build their contents after
// the bytes are in place.
func AllocArray(h *Heap, typeID TypeId, sizeBytes uint32) (RawPtr[byte], error) {
	allocSize := alignUp(uintptr(HeaderSize) + uintptr(sizeBytes))
	class := classify(allocSize)

	space, err := h.findSpace(allocSize, class)
	if err != nil {
		return RawPtr[byte]{}, err
	}

	header := (*Header)(space)
	*header = newHeader(typeID, sizeBytes, class)

	object := objectFor(header)

	zero := unsafe.Slice((*byte)(object), sizeBytes)
	for i := range zero {
		zero[i] = 0
	}

	return newRawPtr[byte](object), nil
}

// GetHeader returns the Header preceding p's object. Free function for the
// same reason as Alloc: Go forbids type parameters on methods.
func GetHeader[T any](p RawPtr[T]) *Header {
	return headerFor(p.ptr)
}

// GetObject returns a pointer to p's object.
func GetObject[T any](p RawPtr[T]) *T {
	return (*T)(p.ptr)
}

// findSpace routes an allocation request to the head block, the overflow
// block, or a fresh head block that replaces a retired one, according to
// size class. It mirrors
// StickyImmixHeap's allocation policy: large objects are rejected outright,
// medium objects that don't fit the head's current hole go to overflow so a
// still-useful head is never discarded over one bad fit, and everything
// else bump-allocates in the head, retiring it into rest only once it is
// truly exhausted.
func (h *Heap) findSpace(allocSize uintptr, class SizeClass) (unsafe.Pointer, error) {
	if class == SizeLarge {
		return nil, ErrBadRequest
	}

	if h.blocks.head != nil && class == SizeMedium && allocSize > h.blocks.head.CurrentHoleSize() {
		return h.blocks.overflowAlloc(allocSize)
	}

	if h.blocks.head == nil {
		fresh, err := newBumpBlock()
		if err != nil {
			return nil, err
		}

		h.blocks.head = fresh
	}

	if space, ok := h.blocks.head.InnerAlloc(allocSize); ok {
		return space, nil
	}

	h.blocks.rest = append(h.blocks.rest, h.blocks.head)

	fresh, err := newBumpBlock()
	if err != nil {
		return nil, err
	}

	h.blocks.head = fresh

	space, ok := fresh.InnerAlloc(allocSize)
	if !ok {
		// class != Large guarantees allocSize <= BlockCapacity, so a fresh
		// block must have room.
		panic("allocator: unexpected allocation failure in fresh head block")
	}

	return space, nil
}
