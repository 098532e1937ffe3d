package symtab

import "github.com/crystalline-labs/slipc/internal/lexer"

// MaxParams is the largest number of argument/element slots a single
// node carries: a function's parameter count and a vector's element
// count are both bounded to 4.
const MaxParams = 4

// Node is the unified symbol descriptor: the same shape serves as a
// symbol-table row (a template waiting to be copied) and as a
// parse-tree node (a copy filled in with resolved children). Kind says
// which of the fields below are meaningful; unused fields are left at
// their zero value.
type Node struct {
	Kind Kind

	// Key is the table lookup key: an operator character for a
	// builtin Function, or an identifier spelling otherwise.
	Key     string
	Builtin bool

	// Poly marks a Function or Constant whose rendering depends on
	// its resolved element-count rather than a single fixed template.
	Poly bool

	// Out is the fixed rendering template for a non-poly Function,
	// Constant, or Macro.
	Out string
	// Out1..Out4 are the per-arity rendering templates for a poly
	// Function or Constant, selected by NInt (Function) or N
	// (Constant).
	Out1, Out2, Out3, Out4 string

	// NParam is the declared argument count of a Function (1..4).
	NParam int
	// Params holds each argument slot's declared element-count, 0
	// meaning generic (to be inferred from the argument supplied at
	// that slot).
	Params [MaxParams]int

	// N is this node's own inferred or declared element-count: the
	// vector width for a Vector, the declared/inferred return width
	// for a Function, Constant, or Variable, always 1 for a Literal.
	N int
	// NInt is a Function's internal element-count, unified across its
	// generic parameter slots (and its return width, when that is
	// itself declared generic). It is meaningless for other kinds.
	NInt int

	// Args holds a Function's NParam resolved argument nodes.
	Args [MaxParams]*Node
	// Elem holds a Vector's resolved element nodes; NElem of them are
	// populated.
	Elem  [MaxParams]*Node
	NElem int

	// Real is the literal's numeric value (Literal only); Text is its
	// exact source spelling, rendered verbatim so a literal round-trips
	// unchanged (e.g. "2." stays "2.", "-.5" stays "-.5") rather than
	// being reformatted from Real.
	Real float64
	Text string

	Pos lexer.Position
}

// Clone copies n into a fresh Node, the way a table lookup hands the
// caller its own private copy of a descriptor to fill in with
// resolved children during parsing.
func (n *Node) Clone() *Node {
	c := *n
	return &c
}
