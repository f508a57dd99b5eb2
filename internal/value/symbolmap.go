package value

import "github.com/vellum-lang/vellum/internal/allocator"

// SymbolMap interns name strings to Symbol pointers. Backed by an
// ArenaHeap rather than the regular Heap, since interned symbols must
// outlive any collection the regular Heap might one day be subject to.
// No sync.RWMutex guards the map: single-mutator discipline means it is
// only ever touched from inside one Mutate call at a time.
type SymbolMap struct {
	arena *allocator.ArenaHeap
	names map[string]allocator.RawPtr[Symbol]
}

func newSymbolMap(arena *allocator.ArenaHeap) *SymbolMap {
	return &SymbolMap{
		arena: arena,
		names: make(map[string]allocator.RawPtr[Symbol]),
	}
}

// Lookup returns name's interned TaggedPtr, allocating and interning a
// fresh Symbol (copying name's bytes into the arena) the first time it is
// seen. Equal strings always return equal TaggedPtrs; unequal strings
// always return unequal ones, since the map holds the single interned
// RawPtr for each distinct string.
func (m *SymbolMap) Lookup(name string) (TaggedPtr, error) {
	if existing, ok := m.names[name]; ok {
		return NewSymbolPtr(existing), nil
	}

	data, err := allocator.ArenaAllocArray(m.arena, allocator.TypeArrayBackingBytes, uint32(len(name)))
	if err != nil {
		return Nil, err
	}

	copy(bytesOf(data, uint32(len(name))), name)

	sym, err := allocator.ArenaAlloc(m.arena, Symbol{Data: data, Len: uint32(len(name))})
	if err != nil {
		return Nil, err
	}

	m.names[name] = sym

	return NewSymbolPtr(sym), nil
}

// String reads a Symbol's bytes back out as a Go string. Requires a scope
// like any other dereference.
func (s *Symbol) String(scope *AccessScope) string {
	_ = scope

	return string(bytesOf(s.Data, s.Len))
}
