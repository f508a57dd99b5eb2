// Command vellum-memcheck is a smoke test for internal/value's Memory: it
// runs one mutate call that allocates a pair, interns a symbol, tags both,
// decodes them back, and reports what it saw.
package main

import (
	"fmt"
	"log"

	"github.com/vellum-lang/vellum/internal/value"
)

type report struct {
	symbolName string
	pairFirst  int
	pairSecond int
}

func main() {
	mem, err := value.NewMemory()
	if err != nil {
		log.Fatalf("vellum-memcheck: NewMemory: %v", err)
	}

	r, err := value.Mutate(mem, runCheck, struct{}{})
	if err != nil {
		log.Fatalf("vellum-memcheck: mutate failed: %v", err)
	}

	fmt.Printf("symbol: %s\n", r.symbolName)
	fmt.Printf("pair:   (%d . %d)\n", r.pairFirst, r.pairSecond)
}

func runCheck(scope *value.AccessScope, mem *value.Memory, _ struct{}) (report, error) {
	sym, err := value.LookupSym(scope, mem, "vellum")
	if err != nil {
		return report{}, err
	}

	pairTag, err := value.AllocTagged(scope, mem, value.Pair{
		First:  value.NewNumber(1),
		Second: value.NewNumber(2),
	})
	if err != nil {
		return report{}, err
	}

	symRef := value.AsValue(scope, value.Decode(sym).(value.FatSymbol)).(value.ValueSymbol).Ref
	pair := value.AsValue(scope, value.Decode(pairTag).(value.FatPair)).(value.ValuePair).Ref

	return report{
		symbolName: symRef.String(scope),
		pairFirst:  pair.First.Number(),
		pairSecond: pair.Second.Number(),
	}, nil
}
