package parser

import (
	"fmt"

	"github.com/crystalline-labs/slipc/internal/diag"
	"github.com/crystalline-labs/slipc/internal/symtab"
)

// checkArg unifies a function's i-th parameter slot against the
// argument node resolved for that slot. The four cases:
//
//  1. the slot is still generic but the function's internal
//     element-count is already known: adopt it for this slot.
//  2. the slot and the argument both carry a known count: they must
//     agree, or this is an ArityMismatch.
//  3. the slot is known but the argument is not: the argument adopts
//     the slot's count.
//  4. the slot is still generic but the argument's count is known:
//     it pins both the slot and the function's internal count,
//     and — if the function's own declared return count was itself
//     generic — the function's return count too.
//
// When neither the slot nor the argument carries a count, nothing is
// decided yet; a later argument, or the post-loop back-fill, may
// still resolve it.
func checkArg(fn *symtab.Node, i int, arg *symtab.Node) error {
	if fn.Params[i] == 0 && fn.NInt != 0 {
		fn.Params[i] = fn.NInt
	}

	switch {
	case fn.Params[i] != 0 && arg.N != 0:
		if arg.N != fn.Params[i] {
			return diag.New(diag.ArityMismatch, arg.Pos,
				fmt.Sprintf("argument %d of %q has element-count %d, want %d", i, fn.Key, arg.N, fn.Params[i]),
				"", "")
		}
	case fn.Params[i] != 0 && arg.N == 0:
		arg.N = fn.Params[i]
	case fn.Params[i] == 0 && arg.N != 0:
		fn.Params[i] = arg.N
		fn.NInt = arg.N
		if fn.N == 0 {
			fn.N = fn.NInt
		}
	}

	return nil
}
