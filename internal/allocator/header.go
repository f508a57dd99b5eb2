package allocator

import "unsafe"

// Mark is the tri-state mark used by a future tracing collector: freshly
// allocated objects start Allocated, a collector resets survivors to
// Unmarked before a trace and flips reachable ones to Marked.
type Mark uint8

const (
	MarkAllocated Mark = iota
	MarkUnmarked
	MarkMarked
)

// SizeClass buckets an allocation size into the channel that services it.
type SizeClass uint8

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
)

func classify(allocSize uintptr) SizeClass {
	switch {
	case allocSize <= LineSize:
		return SizeSmall
	case allocSize <= BlockCapacity:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// Header is the fixed-size record placed immediately before every heap
// object. Once written by Alloc/AllocArray, TypeID, Class, and SizeBytes
// are immutable for the object's lifetime — only Mark is ever mutated
// afterward, by the tracer (out of scope for this module).
type Header struct {
	mark      Mark
	class     SizeClass
	typeID    TypeId
	sizeBytes uint32
}

// HeaderSize is the fixed header footprint. It is a word multiple so that
// object = header + HeaderSize preserves whatever alignment the header's
// own address has.
const HeaderSize = unsafe.Sizeof(Header{})

func newHeader(typeID TypeId, sizeBytes uint32, class SizeClass) Header {
	return Header{mark: MarkAllocated, class: class, typeID: typeID, sizeBytes: sizeBytes}
}

// Mark returns the object's current mark state.
func (h *Header) Mark() Mark { return h.mark }

// SetMark overwrites the mark state. This is the only header field a
// collector is ever allowed to touch.
func (h *Header) SetMark(m Mark) { h.mark = m }

// IsMarked reports whether the header's mark is anything but Unmarked.
func (h *Header) IsMarked() bool { return h.mark != MarkUnmarked }

// SizeClass returns the object's size class.
func (h *Header) SizeClass() SizeClass { return h.class }

// Size returns the payload size in bytes, excluding the header.
func (h *Header) Size() uint32 { return h.sizeBytes }

// TypeID returns the object's type discriminator.
func (h *Header) TypeID() TypeId { return h.typeID }

// headerFor returns the Header immediately preceding object.
func headerFor(object unsafe.Pointer) *Header {
	return (*Header)(unsafe.Add(object, -int(HeaderSize)))
}

// HeaderAt is headerFor exported for internal/value's TaggedPtr decode
// path, which only has an untagged address (not a typed RawPtr) to work
// from until it has read the TypeId out of the header.
func HeaderAt(object unsafe.Pointer) *Header {
	return headerFor(object)
}

// objectFor returns the object immediately following header.
func objectFor(header *Header) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(header), HeaderSize)
}
