package value

import "github.com/vellum-lang/vellum/internal/allocator"

// SourcePos is an optional source-text position, mirroring the Rust
// original's Option<SourcePos> fields on Pair: Valid is false for "no
// position known" rather than using a nil pointer, since heap objects here
// live in memory the Go garbage collector does not scan and must not hold
// Go-managed pointers.
type SourcePos struct {
	Pos   allocator.SourcePosition
	Valid bool
}

// Pair is a cons cell: two tagged pointers plus the source positions their
// values were parsed from, used for diagnostics further up the stack.
type Pair struct {
	First, Second       TaggedPtr
	FirstPos, SecondPos SourcePos
}

func (Pair) HeapTypeID() allocator.TypeId { return allocator.TypePair }

// Symbol is an interned name: a pointer to its bytes in permanent arena
// storage plus their length. Symbols are never copied or mutated after
// interning (SymbolMap.Lookup), so two Symbols are the same symbol iff
// their RawPtr addresses are equal.
type Symbol struct {
	Data allocator.RawPtr[byte]
	Len  uint32
}

func (Symbol) HeapTypeID() allocator.TypeId { return allocator.TypeSymbol }

// Text is a heap string: a pointer to a byte-array backing object plus its
// length. Unlike Symbol, Text lives in the ordinary Heap and is not
// interned.
type Text struct {
	Data allocator.RawPtr[byte]
	Len  uint32
}

func (Text) HeapTypeID() allocator.TypeId { return allocator.TypeText }

// Bytes views t's contents as a []byte. Requires a scope like any other
// dereference.
func (t *Text) Bytes(scope *AccessScope) []byte {
	_ = scope

	return bytesOf(t.Data, t.Len)
}

// NumberObject boxes a number that doesn't fit TaggedPtr's inline integer
// range, as a float64.
type NumberObject struct {
	Value float64
}

func (NumberObject) HeapTypeID() allocator.TypeId { return allocator.TypeNumberObject }

// ArrayU8, ArrayU16, ArrayU32 are fixed-width-element dynamic arrays: a
// pointer to their packed element bytes (an ArrayBackingBytes allocation)
// plus element count. They differ only in element width, mirrored here as
// three distinct types rather than one generic type because HeapTypeID
// must return a distinct TypeId per width and Go type parameters can't
// appear in a TypeId switch case.
type ArrayU8 struct {
	Data allocator.RawPtr[byte]
	Len  uint32
}

func (ArrayU8) HeapTypeID() allocator.TypeId { return allocator.TypeArrayU8 }

type ArrayU16 struct {
	Data allocator.RawPtr[byte]
	Len  uint32
}

func (ArrayU16) HeapTypeID() allocator.TypeId { return allocator.TypeArrayU16 }

type ArrayU32 struct {
	Data allocator.RawPtr[byte]
	Len  uint32
}

func (ArrayU32) HeapTypeID() allocator.TypeId { return allocator.TypeArrayU32 }

// The following are opaque placeholders: heap types whose TypeId this
// module must be able to allocate, decode (FatPtr/Value), and hold a
// Header for, but whose field layout belongs to collaborators (dictionary
// container, VM bytecode/closures) entirely out of this module's scope.
// Each carries just enough to be a distinct, correctly-sized Go type.

// Dict is a dynamic dictionary container; its key/value storage policy is
// the dictionary container's concern, not this module's.
type Dict struct{ _ [0]byte }

func (Dict) HeapTypeID() allocator.TypeId { return allocator.TypeDict }

// Function is a compiled function object; its code/closure layout belongs
// to the compiler and VM.
type Function struct{ _ [0]byte }

func (Function) HeapTypeID() allocator.TypeId { return allocator.TypeFunction }

// List is a dynamic list container.
type List struct{ _ [0]byte }

func (List) HeapTypeID() allocator.TypeId { return allocator.TypeList }

// Partial is a partially-applied function value.
type Partial struct{ _ [0]byte }

func (Partial) HeapTypeID() allocator.TypeId { return allocator.TypePartial }

// Upvalue is a captured-variable cell used by closures.
type Upvalue struct{ _ [0]byte }

func (Upvalue) HeapTypeID() allocator.TypeId { return allocator.TypeUpvalue }

// ArrayBackingBytes, ArrayOpcode, ByteCode, CallFrameList,
// InstructionStream, and Thread are VM-internal bookkeeping types. They
// have Headers and TypeIds (every heap allocation does) but deliberately
// have no FatPtr/Value variant: decoding a TAG_OBJECT pointer whose header
// names one of them is a fatal invariant violation (see fatptr.go's
// Decode), since no well-formed TaggedPtr in the value layer should ever
// address one.
type ArrayBackingBytes struct{ _ [0]byte }

func (ArrayBackingBytes) HeapTypeID() allocator.TypeId { return allocator.TypeArrayBackingBytes }

type ArrayOpcode struct{ _ [0]byte }

func (ArrayOpcode) HeapTypeID() allocator.TypeId { return allocator.TypeArrayOpcode }

type ByteCode struct{ _ [0]byte }

func (ByteCode) HeapTypeID() allocator.TypeId { return allocator.TypeByteCode }

type CallFrameList struct{ _ [0]byte }

func (CallFrameList) HeapTypeID() allocator.TypeId { return allocator.TypeCallFrameList }

type InstructionStream struct{ _ [0]byte }

func (InstructionStream) HeapTypeID() allocator.TypeId { return allocator.TypeInstructionStream }

type Thread struct{ _ [0]byte }

func (Thread) HeapTypeID() allocator.TypeId { return allocator.TypeThread }
