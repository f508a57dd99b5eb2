package allocator

import "unsafe"

// BlockList holds the head block (small allocations and medium allocations
// that fit its current hole), the overflow block (medium allocations that
// don't), and the retired blocks that have fallen out of both roles. Every
// block ever created is reachable through exactly one of these three slots
// until the heap is destroyed — this module never reclaims a block; that
// is left as a hook for a future tracing collector.
type BlockList struct {
	head     *BumpBlock
	overflow *BumpBlock
	rest     []*BumpBlock
}

// overflowAlloc services a medium allocation that didn't fit the head
// block's current hole, routing it through a dedicated overflow channel so
// a still-useful head block is never retired just because one medium
// object didn't fit.
func (bl *BlockList) overflowAlloc(allocSize uintptr) (unsafe.Pointer, error) {
	if bl.overflow == nil {
		overflow, err := newBumpBlock()
		if err != nil {
			return nil, err
		}

		space, ok := overflow.InnerAlloc(allocSize)
		if !ok {
			// allocSize <= BlockCapacity is a size-class precondition, so a
			// fresh block must have room.
			panic("allocator: unexpected allocation failure in empty overflow block")
		}

		bl.overflow = overflow

		return space, nil
	}

	if space, ok := bl.overflow.InnerAlloc(allocSize); ok {
		return space, nil
	}

	bl.rest = append(bl.rest, bl.overflow)

	fresh, err := newBumpBlock()
	if err != nil {
		return nil, err
	}

	bl.overflow = fresh

	space, ok := fresh.InnerAlloc(allocSize)
	if !ok {
		panic("allocator: unexpected allocation failure in fresh overflow block")
	}

	return space, nil
}
