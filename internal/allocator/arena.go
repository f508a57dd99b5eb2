package allocator

import (
	"fmt"
	"unsafe"
)

// ArenaHeap is a flat, growable bump arena that never marks and never
// reclaims — the backing store for SymbolMap, whose interned Symbol objects
// live for the lifetime of the runtime. It keeps the same Header-prefixed
// layout as Heap so a RawPtr into an ArenaHeap is indistinguishable from
// one into Heap to anything that only reads headers.
//
// Unlike Heap, ArenaHeap grows by appending fresh chunks rather than
// routing between a fixed set of BlockSize blocks: symbols are permanent
// and never need the line-granularity hole-tracking a tracing collector
// would use, so the chunk size is just a tuning knob, not a protocol
// constant.
type ArenaHeap struct {
	chunkSize uintptr
	chunks    [][]byte
	cursor    uintptr // offset into the last chunk
}

// Config holds ArenaHeap tuning knobs, following the functional-options
// style used throughout this package.
type Config struct {
	ChunkSize uintptr
}

type Option func(*Config)

func defaultConfig() *Config {
	return &Config{ChunkSize: 64 * 1024}
}

// WithChunkSize overrides the size of each backing chunk ArenaHeap
// allocates when it runs out of room. Larger chunks amortize the append
// cost for workloads that intern many symbols; smaller ones waste less
// space on programs that intern only a handful.
func WithChunkSize(size uintptr) Option {
	return func(c *Config) { c.ChunkSize = size }
}

// NewArenaHeap returns an empty ArenaHeap. It acquires no backing memory
// until the first allocation.
func NewArenaHeap(opts ...Option) (*ArenaHeap, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.ChunkSize == 0 {
		return nil, fmt.Errorf("allocator: arena chunk size must be greater than 0")
	}

	return &ArenaHeap{chunkSize: config.ChunkSize}, nil
}

// ArenaAlloc writes obj into the arena preceded by a Header and returns a
// RawPtr to it. Like Alloc, it is a free function because Go forbids type
// parameters on methods.
func ArenaAlloc[T HeapObject](a *ArenaHeap, obj T) (RawPtr[T], error) {
	sizeBytes := uint32(unsafe.Sizeof(obj))
	allocSize := alignUp(uintptr(HeaderSize) + uintptr(sizeBytes))

	space, err := a.alloc(allocSize)
	if err != nil {
		return RawPtr[T]{}, err
	}

	header := (*Header)(space)
	*header = newHeader(obj.HeapTypeID(), sizeBytes, classify(allocSize))

	object := objectFor(header)
	*(*T)(object) = obj

	return newRawPtr[T](object), nil
}

// ArenaAllocArray allocates a raw byte-array object in the arena, used by
// Text and SymbolMap for variable-length payloads.
func ArenaAllocArray(a *ArenaHeap, typeID TypeId, sizeBytes uint32) (RawPtr[byte], error) {
	allocSize := alignUp(uintptr(HeaderSize) + uintptr(sizeBytes))

	space, err := a.alloc(allocSize)
	if err != nil {
		return RawPtr[byte]{}, err
	}

	header := (*Header)(space)
	*header = newHeader(typeID, sizeBytes, classify(allocSize))

	object := objectFor(header)
	zero := unsafe.Slice((*byte)(object), sizeBytes)

	for i := range zero {
		zero[i] = 0
	}

	return newRawPtr[byte](object), nil
}

// alloc bump-allocates n word-aligned bytes, appending a fresh chunk when
// the current one can't fit the request. A request larger than chunkSize
// gets a dedicated chunk sized to fit it exactly.
func (a *ArenaHeap) alloc(n uintptr) (unsafe.Pointer, error) {
	n = alignUp(n)

	if len(a.chunks) == 0 || a.cursor+n > uintptr(len(a.chunks[len(a.chunks)-1])) {
		size := a.chunkSize
		if n > size {
			size = n
		}

		a.chunks = append(a.chunks, make([]byte, size))
		a.cursor = 0
	}

	chunk := a.chunks[len(a.chunks)-1]
	ptr := unsafe.Pointer(&chunk[a.cursor])
	a.cursor += n

	return ptr, nil
}
