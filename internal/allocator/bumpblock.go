package allocator

import "unsafe"

// BumpBlock bump-allocates downward within one block, hopping across holes
// found by its LineMap when the current hole runs out.
//
// Invariant: 0 <= limit <= cursor <= BlockCapacity, and [limit, cursor) is
// free. Allocation decreases cursor; callers write upward from the
// returned pointer since growth is downward.
type BumpBlock struct {
	block  *RawBlock
	lines  LineMap
	cursor uintptr
	limit  uintptr
}

// newBumpBlock acquires a fresh BlockSize RawBlock with the entire payload
// region available as one hole.
func newBumpBlock() (*BumpBlock, error) {
	block, err := newRawBlock(BlockSize)
	if err != nil {
		return nil, err
	}

	markBase := unsafe.Add(block.AsPtr(), BlockCapacity)

	return &BumpBlock{
		block:  block,
		lines:  newLineMap(markBase),
		cursor: BlockCapacity,
		limit:  0,
	}, nil
}

// CurrentHoleSize reports the number of free bytes in [limit, cursor).
func (b *BumpBlock) CurrentHoleSize() uintptr {
	return b.cursor - b.limit
}

// InnerAlloc bump-allocates allocSize bytes, hopping to the next available
// hole via the line map as needed. It returns (ptr, true) on success, or
// (nil, false) if the block has no room left for allocSize bytes.
func (b *BumpBlock) InnerAlloc(allocSize uintptr) (unsafe.Pointer, bool) {
	for {
		if b.cursor < allocSize {
			return nil, false
		}

		next := alignDown(b.cursor - allocSize)

		if next >= b.limit {
			b.cursor = next
			return unsafe.Add(b.block.AsPtr(), next), true
		}

		if b.limit == 0 {
			return nil, false
		}

		cursor, limit, ok := b.lines.FindNextAvailableHole(b.limit, allocSize)
		if !ok {
			return nil, false
		}

		b.cursor, b.limit = cursor, limit
	}
}
