package symtab

// Default returns the built-in symbol table: the closed set of
// arithmetic operators every host program gets for free, plus a small
// demonstration set of identifier functions and constants in the
// spirit of a real host binding file (originally "slip.binds", an
// external data file the reference implementation #included and this
// port treats as loadable user data — see LoadFile). The entries here
// exist so the compiler has something to resolve against out of the
// box and so the end-to-end tests exercise every Kind.
func Default() *Table {
	t := &Table{}

	t.Add(
		// '+' '-' '*' '/' are fully generic: both argument slots infer
		// their element-count from whichever argument is evaluated
		// first, and dispatch a different render template per
		// resolved width. Out1 is the scalar infix spelling; Out2..4
		// are the vector function-call spellings.
		Node{
			Kind: Function, Builtin: true, Key: "+", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0},
			Out1: "+", Out2: "add2", Out3: "add3", Out4: "add4",
		},
		Node{
			Kind: Function, Builtin: true, Key: "-", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0},
			Out1: "-", Out2: "sub2", Out3: "sub3", Out4: "sub4",
		},
		Node{
			Kind: Function, Builtin: true, Key: "*", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0},
			Out1: "*", Out2: "mul2", Out3: "mul3", Out4: "mul4",
		},
		Node{
			Kind: Function, Builtin: true, Key: "/", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0},
			Out1: "/", Out2: "div2", Out3: "div3", Out4: "div4",
		},
		// '~' is the sole unary builtin: negate. At scalar arity it
		// renders as a prefix "-"; at vector arity it dispatches to a
		// named negation helper, same as the binary operators do.
		Node{
			Kind: Function, Builtin: true, Key: "~", Poly: true,
			NParam: 1, Params: [MaxParams]int{0},
			Out1: "-", Out2: "neg2", Out3: "neg3", Out4: "neg4",
		},

		// dot is the one identifier function whose declared N is
		// fixed (a dot product always returns a scalar) while its two
		// argument slots stay generic: whichever width its arguments
		// settle on, the rendered call is always plain "dot(...)".
		Node{
			Kind: Function, Key: "dot", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0}, N: 1,
			Out1: "dot", Out2: "dot", Out3: "dot", Out4: "dot",
		},
		// mix(a, b, t) blends two values of matching, generic width
		// by a fixed-scalar interpolation factor.
		Node{
			Kind: Function, Key: "mix", Poly: true,
			NParam: 3, Params: [MaxParams]int{0, 0, 1},
			Out1: "mix", Out2: "mix", Out3: "mix", Out4: "mix",
		},
		// app(rotation, vector) applies a transform to a value of
		// generic, matching width.
		Node{
			Kind: Function, Key: "app", Poly: true,
			NParam: 2, Params: [MaxParams]int{0, 0},
			Out1: "app", Out2: "app", Out3: "app", Out4: "app",
		},
		// sin/cos/sqrt are ordinary monomorphic scalar functions: a
		// single fixed param slot, a single fixed return width, no
		// polymorphism at all.
		Node{Kind: Function, Key: "sin", NParam: 1, Params: [MaxParams]int{1}, N: 1, Out: "sin"},
		Node{Kind: Function, Key: "cos", NParam: 1, Params: [MaxParams]int{1}, N: 1, Out: "cos"},
		Node{Kind: Function, Key: "sqrt", NParam: 1, Params: [MaxParams]int{1}, N: 1, Out: "sqrt"},

		// one/zero are polymorphic constants: used bare they are
		// unresolvable (a Constant has no arguments to infer N from),
		// but an explicit arity suffix or surrounding context pins
		// them to whichever width the caller needs.
		Node{
			Kind: Constant, Key: "one", Poly: true,
			Out1: "1.0", Out2: "vec2(1.0)", Out3: "vec3(1.0)", Out4: "vec4(1.0)",
		},
		Node{
			Kind: Constant, Key: "zero", Poly: true,
			Out1: "0.0", Out2: "vec2(0.0)", Out3: "vec3(0.0)", Out4: "vec4(0.0)",
		},
		// dt is a fixed scalar constant, the kind of per-frame host
		// uniform a real binding file would declare.
		Node{Kind: Constant, Key: "dt", N: 1, Out: "dt"},
		Node{Kind: Constant, Key: "pi", N: 1, Out: "3.14159265"},
		// fwd is a fixed v3 constant (the world-forward axis), the kind
		// of pre-pinned vector uniform that lets a generic function
		// like app/dot settle its internal element-count from a single
		// argument without needing every sibling spelled out.
		Node{Kind: Constant, Key: "fwd", N: 3, Out: "vec3(0.0, 0.0, 1.0)"},

		// tau is a Macro: like a Constant it takes no arguments, but
		// unlike a Constant it is never polymorphic — it always
		// stands for one fixed host expression.
		Node{Kind: Macro, Key: "tau", N: 1, Out: "6.28318530"},
	)

	return t
}
