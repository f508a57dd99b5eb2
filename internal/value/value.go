package value

import "github.com/vellum-lang/vellum/internal/allocator"

// Value is FatPtr's scope-bound counterpart: identical variants, but each
// pointer-carrying case holds a dereferenced *T rather than a raw RawPtr.
// A Value can only be produced by AsValue, which requires an *AccessScope
// — the structural rule that a heap object is only dereferenced while a
// mutator scope is open.
type Value interface {
	isValue()
}

type ValueNil struct{}

func (ValueNil) isValue() {}

type ValueNumber int

func (ValueNumber) isValue() {}

type ValueArrayU8 struct{ Ref *ArrayU8 }

func (ValueArrayU8) isValue() {}

type ValueArrayU16 struct{ Ref *ArrayU16 }

func (ValueArrayU16) isValue() {}

type ValueArrayU32 struct{ Ref *ArrayU32 }

func (ValueArrayU32) isValue() {}

type ValueDict struct{ Ref *Dict }

func (ValueDict) isValue() {}

type ValueFunction struct{ Ref *Function }

func (ValueFunction) isValue() {}

type ValueList struct{ Ref *List }

func (ValueList) isValue() {}

type ValueNumberObject struct{ Ref *NumberObject }

func (ValueNumberObject) isValue() {}

type ValuePair struct{ Ref *Pair }

func (ValuePair) isValue() {}

type ValuePartial struct{ Ref *Partial }

func (ValuePartial) isValue() {}

type ValueSymbol struct{ Ref *Symbol }

func (ValueSymbol) isValue() {}

type ValueText struct{ Ref *Text }

func (ValueText) isValue() {}

type ValueUpvalue struct{ Ref *Upvalue }

func (ValueUpvalue) isValue() {}

// AsValue converts a FatPtr into its scope-bound Value, dereferencing any
// pointer-carrying variant through the heap. scope is unused at runtime —
// Go has no borrow checker to thread a lifetime through — but its
// presence in the signature is the structural guarantee that code with no
// AccessScope in hand cannot call this.
func AsValue(scope *AccessScope, f FatPtr) Value {
	switch v := f.(type) {
	case FatNil:
		return ValueNil{}
	case FatNumber:
		return ValueNumber(v)
	case FatArrayU8:
		return ValueArrayU8{Ref: allocator.GetObject(v.Ptr)}
	case FatArrayU16:
		return ValueArrayU16{Ref: allocator.GetObject(v.Ptr)}
	case FatArrayU32:
		return ValueArrayU32{Ref: allocator.GetObject(v.Ptr)}
	case FatDict:
		return ValueDict{Ref: allocator.GetObject(v.Ptr)}
	case FatFunction:
		return ValueFunction{Ref: allocator.GetObject(v.Ptr)}
	case FatList:
		return ValueList{Ref: allocator.GetObject(v.Ptr)}
	case FatNumberObject:
		return ValueNumberObject{Ref: allocator.GetObject(v.Ptr)}
	case FatPair:
		return ValuePair{Ref: allocator.GetObject(v.Ptr)}
	case FatPartial:
		return ValuePartial{Ref: allocator.GetObject(v.Ptr)}
	case FatSymbol:
		return ValueSymbol{Ref: allocator.GetObject(v.Ptr)}
	case FatText:
		return ValueText{Ref: allocator.GetObject(v.Ptr)}
	case FatUpvalue:
		return ValueUpvalue{Ref: allocator.GetObject(v.Ptr)}
	default:
		panic("value: unreachable FatPtr variant")
	}
}
