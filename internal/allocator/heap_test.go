package allocator

import "testing"

type smallObj struct {
	payload [16]byte
}

func (smallObj) HeapTypeID() TypeId { return TypeNumberObject }

// TestHeapSmallAllocationsPackOneBlock allocates 100 small (16-byte
// payload) objects and checks they all land in a single block, are
// pairwise distinct, word-aligned, and round-trip through
// GetHeader/objectFor.
func TestHeapSmallAllocationsPackOneBlock(t *testing.T) {
	h := NewHeap()

	ptrs := make([]RawPtr[smallObj], 100)
	for i := range ptrs {
		p, err := Alloc(h, smallObj{})
		if err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
		ptrs[i] = p
	}

	if h.blocks.overflow != nil {
		t.Fatalf("expected no overflow block for 100 small allocations")
	}

	if len(h.blocks.rest) != 0 {
		t.Fatalf("expected no retired blocks for 100 small allocations, got %d", len(h.blocks.rest))
	}

	seen := map[uintptr]bool{}

	for i, p := range ptrs {
		addr := uintptr(p.AsPtr())

		if addr%WordSize != 0 {
			t.Fatalf("pointer #%d at %#x is not word-aligned", i, addr)
		}

		if seen[addr] {
			t.Fatalf("pointer #%d at %#x duplicates an earlier allocation", i, addr)
		}
		seen[addr] = true

		header := GetHeader(p)
		if header.TypeID() != TypeNumberObject {
			t.Fatalf("pointer #%d header TypeID mismatch", i)
		}

		if objectFor(header) != p.AsPtr() {
			t.Fatalf("pointer #%d: objectFor(GetHeader(p)) != p, header round-trip broken", i)
		}
	}
}
