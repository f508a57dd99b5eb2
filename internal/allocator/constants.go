// Package allocator implements a Sticky Immix-style region allocator: a
// line-marked, bump-allocated block allocator with three size classes and
// two allocation channels (head and overflow), plus the uniform object
// header placed before every heap allocation.
package allocator

import "unsafe"

// Sizing constants. The bit widths are fixed by the wire format shared with
// the tagged-pointer layer in internal/value and MUST NOT change.
const (
	LineSizeBits  = 7
	BlockSizeBits = 15

	LineSize  = 1 << LineSizeBits
	BlockSize = 1 << BlockSizeBits

	// LineCount is the number of line-mark bytes trailing each block.
	LineCount = BlockSize / LineSize

	// BlockCapacity is the usable payload region of a block; the last
	// LineCount bytes hold one mark byte per line.
	BlockCapacity = BlockSize - LineCount
)

// WordSize is the machine word size used for alignment. Every payload
// pointer handed to a mutator is rounded up to this boundary, which is what
// guarantees the two low tag bits TaggedPtr relies on are always clear.
const WordSize = unsafe.Sizeof(uintptr(0))

// alignMask clears the low bits of an address/size below WordSize.
const alignMask = ^uintptr(WordSize - 1)

// alignDown rounds n down to the nearest multiple of WordSize.
func alignDown(n uintptr) uintptr {
	return n & alignMask
}

// alignUp rounds n up to the nearest multiple of WordSize.
func alignUp(n uintptr) uintptr {
	return (n + WordSize - 1) & alignMask
}
