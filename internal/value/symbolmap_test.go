package value

import "testing"

func TestSymbolInterningEqualNamesReturnEqualPointers(t *testing.T) {
	mem, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}

	type result struct{ a, b, c TaggedPtr }

	r, err := Mutate(mem, func(scope *AccessScope, mem *Memory, _ struct{}) (result, error) {
		a, err := LookupSym(scope, mem, "foo")
		if err != nil {
			return result{}, err
		}

		b, err := LookupSym(scope, mem, "foo")
		if err != nil {
			return result{}, err
		}

		c, err := LookupSym(scope, mem, "bar")
		if err != nil {
			return result{}, err
		}

		return result{a, b, c}, nil
	}, struct{}{})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	if r.a != r.b {
		t.Fatalf("LookupSym(\"foo\") twice returned unequal TaggedPtrs: %v != %v", r.a, r.b)
	}

	if r.a == r.c {
		t.Fatalf("LookupSym(\"foo\") and LookupSym(\"bar\") returned equal TaggedPtrs")
	}
}

func TestSymbolBytesSurviveRoundTrip(t *testing.T) {
	mem, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}

	got, err := Mutate(mem, func(scope *AccessScope, mem *Memory, name string) (string, error) {
		tagged, err := LookupSym(scope, mem, name)
		if err != nil {
			return "", err
		}

		sym := Decode(tagged).(FatSymbol)
		ref := AsValue(scope, sym).(ValueSymbol).Ref

		return ref.String(scope), nil
	}, "a-longer-symbol-name")
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}

	if got != "a-longer-symbol-name" {
		t.Fatalf("symbol bytes round-trip: got %q", got)
	}
}
