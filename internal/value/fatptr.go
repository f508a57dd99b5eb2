package value

import (
	"fmt"
	"unsafe"

	"github.com/vellum-lang/vellum/internal/allocator"
)

// FatPtr is the lossless decoded form of a TaggedPtr: a closed sum over
// Nil, an inline Number, and one variant per concrete heap-pointer type.
// It carries type information but no scope lifetime — Value is the
// scope-bound counterpart with identical shape.
//
// Represented as a marker interface with an unexported method rather than
// a Go sum-of-structs, so the exhaustive-match discipline this closed set
// requires is enforced at the type level: adding a heap type means adding
// both a struct and a Decode case together, or code decoding an
// undispatched TypeId panics instead of silently misdecoding.
type FatPtr interface {
	isFatPtr()
}

type FatNil struct{}

func (FatNil) isFatPtr() {}

type FatNumber int

func (FatNumber) isFatPtr() {}

type FatArrayU8 struct{ Ptr allocator.RawPtr[ArrayU8] }

func (FatArrayU8) isFatPtr() {}

type FatArrayU16 struct{ Ptr allocator.RawPtr[ArrayU16] }

func (FatArrayU16) isFatPtr() {}

type FatArrayU32 struct{ Ptr allocator.RawPtr[ArrayU32] }

func (FatArrayU32) isFatPtr() {}

type FatDict struct{ Ptr allocator.RawPtr[Dict] }

func (FatDict) isFatPtr() {}

type FatFunction struct{ Ptr allocator.RawPtr[Function] }

func (FatFunction) isFatPtr() {}

type FatList struct{ Ptr allocator.RawPtr[List] }

func (FatList) isFatPtr() {}

type FatNumberObject struct{ Ptr allocator.RawPtr[NumberObject] }

func (FatNumberObject) isFatPtr() {}

type FatPair struct{ Ptr allocator.RawPtr[Pair] }

func (FatPair) isFatPtr() {}

type FatPartial struct{ Ptr allocator.RawPtr[Partial] }

func (FatPartial) isFatPtr() {}

type FatSymbol struct{ Ptr allocator.RawPtr[Symbol] }

func (FatSymbol) isFatPtr() {}

type FatText struct{ Ptr allocator.RawPtr[Text] }

func (FatText) isFatPtr() {}

type FatUpvalue struct{ Ptr allocator.RawPtr[Upvalue] }

func (FatUpvalue) isFatPtr() {}

// Decode converts a TaggedPtr to its lossless FatPtr form. For TagObject it
// reads the object's Header through allocator.HeaderAt to recover the
// concrete type.
//
// Decode panics on an unmapped TypeId — six TypeIds (ArrayBackingBytes,
// ArrayOpcode, ByteCode, CallFrameList, InstructionStream, Thread) are
// VM-internal bookkeeping types that are never reachable through a
// TAG_OBJECT tagged pointer in well-formed memory; seeing one here means
// the heap is corrupt, matching ObjectHeader::get_object_fatptr's panic on
// an unrecognized type_id.
func Decode(p TaggedPtr) FatPtr {
	if p.IsNil() {
		return FatNil{}
	}

	switch p.Tag() {
	case TagNumber:
		return FatNumber(p.Number())
	case TagSymbol:
		return FatSymbol{Ptr: p.AsSymbolPtr()}
	case TagPair:
		return FatPair{Ptr: p.AsPairPtr()}
	case TagObject:
		return decodeObject(p.ObjectAddr())
	default:
		panic("value: impossible TaggedPtr tag")
	}
}

// Encode converts a FatPtr to its TaggedPtr form, the inverse of Decode.
// Pair and Symbol get their own dedicated tag bits; every other variant
// goes through the general TagObject representation, since the concrete
// type in that case is recovered later from the object's Header rather
// than from the tag itself.
func Encode(f FatPtr) TaggedPtr {
	switch v := f.(type) {
	case FatNil:
		return Nil
	case FatNumber:
		return NewNumber(int(v))
	case FatSymbol:
		return NewSymbolPtr(v.Ptr)
	case FatPair:
		return NewPairPtr(v.Ptr)
	case FatArrayU8:
		return NewObjectPtr(v.Ptr)
	case FatArrayU16:
		return NewObjectPtr(v.Ptr)
	case FatArrayU32:
		return NewObjectPtr(v.Ptr)
	case FatDict:
		return NewObjectPtr(v.Ptr)
	case FatFunction:
		return NewObjectPtr(v.Ptr)
	case FatList:
		return NewObjectPtr(v.Ptr)
	case FatNumberObject:
		return NewObjectPtr(v.Ptr)
	case FatPartial:
		return NewObjectPtr(v.Ptr)
	case FatText:
		return NewObjectPtr(v.Ptr)
	case FatUpvalue:
		return NewObjectPtr(v.Ptr)
	default:
		panic("value: unreachable FatPtr variant")
	}
}

func decodeObject(addr unsafe.Pointer) FatPtr {
	switch typeID := allocator.HeaderAt(addr).TypeID(); typeID {
	case allocator.TypeArrayU8:
		return FatArrayU8{Ptr: allocator.RawPtrFromAddr[ArrayU8](addr)}
	case allocator.TypeArrayU16:
		return FatArrayU16{Ptr: allocator.RawPtrFromAddr[ArrayU16](addr)}
	case allocator.TypeArrayU32:
		return FatArrayU32{Ptr: allocator.RawPtrFromAddr[ArrayU32](addr)}
	case allocator.TypeDict:
		return FatDict{Ptr: allocator.RawPtrFromAddr[Dict](addr)}
	case allocator.TypeFunction:
		return FatFunction{Ptr: allocator.RawPtrFromAddr[Function](addr)}
	case allocator.TypeList:
		return FatList{Ptr: allocator.RawPtrFromAddr[List](addr)}
	case allocator.TypeNumberObject:
		return FatNumberObject{Ptr: allocator.RawPtrFromAddr[NumberObject](addr)}
	case allocator.TypePair:
		return FatPair{Ptr: allocator.RawPtrFromAddr[Pair](addr)}
	case allocator.TypePartial:
		return FatPartial{Ptr: allocator.RawPtrFromAddr[Partial](addr)}
	case allocator.TypeSymbol:
		return FatSymbol{Ptr: allocator.RawPtrFromAddr[Symbol](addr)}
	case allocator.TypeText:
		return FatText{Ptr: allocator.RawPtrFromAddr[Text](addr)}
	case allocator.TypeUpvalue:
		return FatUpvalue{Ptr: allocator.RawPtrFromAddr[Upvalue](addr)}
	default:
		// ArrayBackingBytes, ArrayOpcode, ByteCode, CallFrameList,
		// InstructionStream, and Thread are VM-internal bookkeeping types
		// never reachable through a TAG_OBJECT tagged pointer in
		// well-formed memory; reaching here means the heap is corrupt.
		panic(fmt.Sprintf("value: object header has non-value-bearing type %s behind TAG_OBJECT", typeID))
	}
}
