package allocator

import "unsafe"

// RawBlock is a contiguous region of memory aligned to its own size. Power-
// of-two alignment lets any interior pointer be masked back down to the
// enclosing block's base address, which the line-mark subsystem (and any
// future collector) relies on.
//
// RawBlock is only ever constructed by BumpBlock; callers never see one
// directly.
type RawBlock struct {
	ptr  unsafe.Pointer
	size uintptr

	// release, when non-nil, returns the backing region to the host. It is
	// only invoked by tests; production code never reclaims a block —
	// block reclamation is a future collector's job.
	release func()
}

// newRawBlock acquires size bytes aligned to size. size must be a power of
// two or ErrBadRequest is returned.
func newRawBlock(size uintptr) (*RawBlock, error) {
	if size == 0 || size&(size-1) != 0 {
		return nil, ErrBadRequest
	}

	ptr, release, err := acquireAlignedRegion(size)
	if err != nil {
		return nil, err
	}

	return &RawBlock{ptr: ptr, size: size, release: release}, nil
}

// AsPtr returns the base address of the block. The contract is read-only:
// mutation happens through offset arithmetic from this pointer, never by
// reassigning it.
func (b *RawBlock) AsPtr() unsafe.Pointer {
	return b.ptr
}

// Release returns the backing region to the host. Only tests call this —
// production BlockLists never reclaim a block once created.
func (b *RawBlock) Release() {
	if b.release != nil {
		b.release()
		b.release = nil
	}
}
