package value

import "github.com/vellum-lang/vellum/internal/allocator"

// AccessScope is the capability token required for dereferencing a RawPtr
// or decoding a TaggedPtr into a Value. Mutate is the only place one is
// constructed, and it never escapes past the task call that received it.
type AccessScope struct{}

func newAccessScope() *AccessScope {
	return &AccessScope{}
}

// Memory owns the one Heap and one SymbolMap a running program has.
// Everything it exposes outside a mutator task is read-only or routed
// through Mutate.
type Memory struct {
	heap    *allocator.Heap
	symbols *SymbolMap
}

// NewMemory constructs an empty Memory: one Heap, one SymbolMap backed by
// its own permanent ArenaHeap.
func NewMemory(opts ...allocator.Option) (*Memory, error) {
	arena, err := allocator.NewArenaHeap(opts...)
	if err != nil {
		return nil, err
	}

	return &Memory{
		heap:    allocator.NewHeap(),
		symbols: newSymbolMap(arena),
	}, nil
}

// Task is a unit of mutator work: given an open scope, the owning Memory,
// and an input value, it returns an output or a RuntimeError. Go forbids
// type parameters on methods, so Mutate is a free function rather than
// Memory.Mutate.
type Task[In, Out any] func(scope *AccessScope, mem *Memory, input In) (Out, error)

// Mutate is the sole entry point for running mutator code: it opens a
// fresh AccessScope bound to this call, runs task, and returns its
// result. The scope is discarded when Mutate returns — the gap between
// successive Mutate calls is the quiescent point a future collector would
// run in.
func Mutate[In, Out any](mem *Memory, task Task[In, Out], input In) (Out, error) {
	scope := newAccessScope()

	return task(scope, mem, input)
}

// ScopedPtr is a scope-bound handle to a freshly allocated object: Deref
// requires the same scope discipline as AsValue, expressed the same way
// (an unused *AccessScope parameter that only a Mutate caller can hold).
type ScopedPtr[T any] struct {
	raw allocator.RawPtr[T]
}

// Deref dereferences a ScopedPtr. scope is required but unused, matching
// AsValue's structural-capability pattern.
func Deref[T any](scope *AccessScope, p ScopedPtr[T]) *T {
	return allocator.GetObject(p.raw)
}

// Alloc allocates obj on mem's Heap and returns a scope-bound handle to
// it. Free function, not a Memory method, since Go forbids type
// parameters on methods.
func Alloc[T allocator.HeapObject](scope *AccessScope, mem *Memory, obj T) (ScopedPtr[T], error) {
	_ = scope

	raw, err := allocator.Alloc(mem.heap, obj)
	if err != nil {
		return ScopedPtr[T]{}, err
	}

	return ScopedPtr[T]{raw: raw}, nil
}

// AllocTagged allocates obj and returns it as a TaggedPtr instead of a
// typed ScopedPtr, for callers (e.g. Pair.First/Second) that need the
// uniform pointer representation. It reads the freshly written header back
// through decodeObject to recover obj's concrete FatPtr variant, then
// Encode routes Pair and Symbol to their dedicated tag bits rather than
// the general TagObject tag the other value types use. For the six
// VM-internal types with no FatPtr variant (ArrayBackingBytes and the
// like), decodeObject panics, so AllocTagged does too.
func AllocTagged[T allocator.HeapObject](scope *AccessScope, mem *Memory, obj T) (TaggedPtr, error) {
	_ = scope

	raw, err := allocator.Alloc(mem.heap, obj)
	if err != nil {
		return Nil, err
	}

	return Encode(decodeObject(raw.AsPtr())), nil
}

// AllocArray allocates a zero-initialized raw byte array of the given
// TypeId and length on mem's Heap.
func AllocArray(scope *AccessScope, mem *Memory, typeID allocator.TypeId, sizeBytes uint32) (ScopedPtr[byte], error) {
	_ = scope

	raw, err := allocator.AllocArray(mem.heap, typeID, sizeBytes)
	if err != nil {
		return ScopedPtr[byte]{}, err
	}

	return ScopedPtr[byte]{raw: raw}, nil
}

// LookupSym interns name, returning its TaggedPtr. Equal strings passed on
// different calls return equal TaggedPtrs; it is a pure lookup/insert
// against mem's SymbolMap, not an allocation on mem's Heap.
func LookupSym(scope *AccessScope, mem *Memory, name string) (TaggedPtr, error) {
	_ = scope

	return mem.symbols.Lookup(name)
}

