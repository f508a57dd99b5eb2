package allocator

import (
	"testing"
	"unsafe"
)

type testObj struct {
	a, b uint64
}

func (testObj) HeapTypeID() TypeId { return TypeNumberObject }

func TestHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		typeID    TypeId
		sizeBytes uint32
		class     SizeClass
	}{
		{"small", TypeSymbol, 16, SizeSmall},
		{"medium", TypeText, 4096, SizeMedium},
		{"boundary", TypePair, LineSize, SizeSmall},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHeader(tc.typeID, tc.sizeBytes, tc.class)

			if h.TypeID() != tc.typeID {
				t.Fatalf("TypeID() = %v, want %v", h.TypeID(), tc.typeID)
			}

			if h.Size() != tc.sizeBytes {
				t.Fatalf("Size() = %d, want %d", h.Size(), tc.sizeBytes)
			}

			if h.SizeClass() != tc.class {
				t.Fatalf("SizeClass() = %v, want %v", h.SizeClass(), tc.class)
			}

			if h.Mark() != MarkAllocated {
				t.Fatalf("fresh header mark = %v, want MarkAllocated", h.Mark())
			}

			h.SetMark(MarkMarked)

			if !h.IsMarked() {
				t.Fatalf("IsMarked() = false after SetMark(MarkMarked)")
			}
		})
	}
}

func TestHeaderObjectPointerArithmetic(t *testing.T) {
	buf := make([]byte, HeaderSize+64)
	header := (*Header)(unsafe.Pointer(&buf[0]))
	*header = newHeader(TypeText, 64, SizeSmall)

	object := objectFor(header)
	back := headerFor(object)

	if back != header {
		t.Fatalf("headerFor(objectFor(h)) did not round-trip to the same address")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		size uintptr
		want SizeClass
	}{
		{0, SizeSmall},
		{LineSize, SizeSmall},
		{LineSize + 1, SizeMedium},
		{BlockCapacity, SizeMedium},
		{BlockCapacity + 1, SizeLarge},
	}

	for _, tc := range cases {
		if got := classify(tc.size); got != tc.want {
			t.Errorf("classify(%d) = %v, want %v", tc.size, got, tc.want)
		}
	}
}

func TestRawBlockRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := newRawBlock(0); err != ErrBadRequest {
		t.Fatalf("newRawBlock(0) err = %v, want ErrBadRequest", err)
	}

	if _, err := newRawBlock(3); err != ErrBadRequest {
		t.Fatalf("newRawBlock(3) err = %v, want ErrBadRequest", err)
	}
}

func TestRawBlockAlignment(t *testing.T) {
	block, err := newRawBlock(BlockSize)
	if err != nil {
		t.Fatalf("newRawBlock: %v", err)
	}
	defer block.Release()

	addr := uintptr(block.AsPtr())
	if addr%BlockSize != 0 {
		t.Fatalf("block address %#x is not BlockSize-aligned", addr)
	}
}

func TestBumpBlockFillsThenFails(t *testing.T) {
	b, err := newBumpBlock()
	if err != nil {
		t.Fatalf("newBumpBlock: %v", err)
	}
	defer b.block.Release()

	const allocSize = WordSize * 4

	count := 0
	for {
		if _, ok := b.InnerAlloc(allocSize); !ok {
			break
		}
		count++
		if count > BlockCapacity/int(allocSize)+1 {
			t.Fatalf("InnerAlloc never reported failure")
		}
	}

	if count == 0 {
		t.Fatalf("InnerAlloc never succeeded in an empty block")
	}
}

func TestBumpBlockAllocationsDontOverlap(t *testing.T) {
	b, err := newBumpBlock()
	if err != nil {
		t.Fatalf("newBumpBlock: %v", err)
	}
	defer b.block.Release()

	const allocSize = WordSize * 8

	seen := map[uintptr]bool{}

	for i := 0; i < 10; i++ {
		ptr, ok := b.InnerAlloc(allocSize)
		if !ok {
			t.Fatalf("InnerAlloc failed on iteration %d", i)
		}

		addr := uintptr(ptr)
		if seen[addr] {
			t.Fatalf("InnerAlloc returned address %#x twice", addr)
		}
		seen[addr] = true

		if addr%WordSize != 0 {
			t.Fatalf("InnerAlloc returned unaligned address %#x", addr)
		}
	}
}

func TestHeapAllocSmallObjects(t *testing.T) {
	h := NewHeap()

	p1, err := Alloc(h, testObj{a: 1, b: 2})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	p2, err := Alloc(h, testObj{a: 3, b: 4})
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	o1 := GetObject(p1)
	o2 := GetObject(p2)

	if o1.a != 1 || o1.b != 2 {
		t.Fatalf("first object corrupted: %+v", *o1)
	}

	if o2.a != 3 || o2.b != 4 {
		t.Fatalf("second object corrupted: %+v", *o2)
	}

	if GetHeader(p1).TypeID() != TypeNumberObject {
		t.Fatalf("header TypeID mismatch")
	}
}

func TestHeapRejectsOversizedAllocation(t *testing.T) {
	h := NewHeap()

	_, err := AllocArray(h, TypeArrayBackingBytes, uint32(BlockCapacity+1))
	if err != ErrBadRequest {
		t.Fatalf("AllocArray(oversized) err = %v, want ErrBadRequest", err)
	}
}

func TestHeapAllocArrayZeroInitialized(t *testing.T) {
	h := NewHeap()

	p, err := AllocArray(h, TypeArrayBackingBytes, 256)
	if err != nil {
		t.Fatalf("AllocArray: %v", err)
	}

	data := unsafe.Slice((*byte)(p.AsPtr()), 256)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zero-initialized: %d", i, b)
		}
	}
}

func TestBlockListOverflowRoutesMediumAllocations(t *testing.T) {
	h := NewHeap()

	// A medium allocation large enough that the head's fresh hole won't
	// fit two of them consecutively forces the second into overflow.
	const mediumSize = BlockCapacity - 2*LineSize

	if _, err := AllocArray(h, TypeArrayBackingBytes, uint32(mediumSize)); err != nil {
		t.Fatalf("first medium AllocArray: %v", err)
	}

	if _, err := AllocArray(h, TypeArrayBackingBytes, uint32(mediumSize)); err != nil {
		t.Fatalf("second medium AllocArray: %v", err)
	}

	if h.blocks.overflow == nil {
		t.Fatalf("expected second medium allocation to route through overflow")
	}
}

func TestArenaHeapGrowsAcrossChunks(t *testing.T) {
	a, err := NewArenaHeap(WithChunkSize(256))
	if err != nil {
		t.Fatalf("NewArenaHeap: %v", err)
	}

	for i := 0; i < 10; i++ {
		if _, err := ArenaAllocArray(a, TypeArrayBackingBytes, 64); err != nil {
			t.Fatalf("ArenaAllocArray iteration %d: %v", i, err)
		}
	}

	if len(a.chunks) < 2 {
		t.Fatalf("expected arena to have grown past its first chunk, got %d chunks", len(a.chunks))
	}
}

func TestArenaHeapRejectsZeroChunkSize(t *testing.T) {
	if _, err := NewArenaHeap(WithChunkSize(0)); err == nil {
		t.Fatalf("expected error for zero chunk size")
	}
}
