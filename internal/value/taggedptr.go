// Package value implements the pointer representations layered on top of
// internal/allocator's Heap: TaggedPtr (one machine word), FatPtr (its
// lossless decoded form), Value (FatPtr with a scope-bounded lifetime), and
// the AccessScope/Memory discipline that gates dereferencing either.
package value

import (
	"unsafe"

	"github.com/vellum-lang/vellum/internal/allocator"
)

// Tag is the two-bit discriminator packed into a TaggedPtr's low bits.
type Tag uintptr

const (
	TagSymbol Tag = 0
	TagPair   Tag = 1
	TagObject Tag = 2
	TagNumber Tag = 3

	tagMask = 0x3
)

// TaggedPtr is a single machine word: either an inline signed integer, or a
// pointer to a Symbol/Pair/other-heap-object with the variant recovered
// from the low two bits (and, for TagObject, the object's Header).
//
// The all-zero word is Nil and carries no tag of its own — callers must
// check IsNil before reading Tag.
type TaggedPtr uintptr

// Nil is the distinguished all-zero TaggedPtr.
const Nil TaggedPtr = 0

// IsNil reports whether p is the all-zero word.
func (p TaggedPtr) IsNil() bool {
	return p == Nil
}

// Tag returns p's low-two-bit discriminator. Meaningless if p.IsNil().
func (p TaggedPtr) Tag() Tag {
	return Tag(uintptr(p) & tagMask)
}

// NewNumber packs a signed integer into a TaggedPtr. The two low bits used
// by the tag are sacrificed from n's range, matching word >> 2 arithmetic
// decoding: n must fit in WordSize*8-2 bits.
func NewNumber(n int) TaggedPtr {
	return TaggedPtr(uintptr(n)<<2 | uintptr(TagNumber))
}

// Number decodes an inline integer. The shift is arithmetic (on the signed
// int conversion) so negative values round-trip correctly; the two
// discarded low bits carried the tag, not magnitude.
func (p TaggedPtr) Number() int {
	return int(p) >> 2
}

// NewSymbolPtr tags a RawPtr<Symbol> with TagSymbol (the zero tag — the raw
// address is used unmodified, since word alignment already clears its low
// two bits).
func NewSymbolPtr(p allocator.RawPtr[Symbol]) TaggedPtr {
	return TaggedPtr(uintptr(p.AsPtr()))
}

// AsSymbolPtr untags p as a RawPtr<Symbol>. Caller must have checked
// p.Tag() == TagSymbol.
func (p TaggedPtr) AsSymbolPtr() allocator.RawPtr[Symbol] {
	return allocator.RawPtrFromAddr[Symbol](untag(p))
}

// NewPairPtr tags a RawPtr<Pair> with TagPair.
func NewPairPtr(p allocator.RawPtr[Pair]) TaggedPtr {
	return TaggedPtr(uintptr(p.AsPtr()) | uintptr(TagPair))
}

// AsPairPtr untags p as a RawPtr<Pair>. Caller must have checked
// p.Tag() == TagPair.
func (p TaggedPtr) AsPairPtr() allocator.RawPtr[Pair] {
	return allocator.RawPtrFromAddr[Pair](untag(p))
}

// NewObjectPtr tags any other heap pointer with TagObject. The concrete
// type is recovered later from the object's Header, not from the
// TaggedPtr itself.
func NewObjectPtr[T allocator.HeapObject](p allocator.RawPtr[T]) TaggedPtr {
	return TaggedPtr(uintptr(p.AsPtr()) | uintptr(TagObject))
}

// ObjectAddr returns p's untagged address. Valid only when p.Tag() ==
// TagObject; the caller resolves the concrete type via allocator.HeaderAt.
func (p TaggedPtr) ObjectAddr() unsafe.Pointer {
	return untag(p)
}

func untag(p TaggedPtr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(p) &^ tagMask)
}
