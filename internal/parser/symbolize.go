// Package parser implements the symbol resolver and the
// recursive-descent parser with bidirectional vector-arity
// unification: together they turn a token stream into a fully typed
// expression tree.
package parser

import (
	"fmt"

	"github.com/crystalline-labs/slipc/internal/diag"
	"github.com/crystalline-labs/slipc/internal/lexer"
	"github.com/crystalline-labs/slipc/internal/symtab"
)

// symbolize resolves one already-scanned token into a fresh node: a
// table lookup for an operator or identifier, or a synthesized
// Literal/Variable/Vector/VectorTail/None node when no lookup applies.
// An explicit arity suffix on the token only takes effect when the
// resolved node's own element-count is still zero — a table entry
// with a fixed, non-generic count is never overridden by a suffix.
func symbolize(tok lexer.Token, table *symtab.Table, source, file string) (*symtab.Node, error) {
	switch tok.Type {
	case lexer.REAL:
		return &symtab.Node{Kind: symtab.Literal, N: 1, Real: tok.Real, Text: tok.Literal, Pos: tok.Pos}, nil

	case lexer.IDENT:
		if n, ok := table.FindIdentifier(tok.Literal); ok {
			n.Pos = tok.Pos
			applySuffix(n, tok)
			return n, nil
		}
		n := &symtab.Node{Kind: symtab.Variable, Key: tok.Literal, Pos: tok.Pos}
		applySuffix(n, tok)
		return n, nil

	case lexer.OPERATOR:
		n, ok := table.FindOperator(tok.Literal)
		if !ok {
			return nil, diag.New(diag.UnknownOperator, tok.Pos,
				fmt.Sprintf("unknown operator %q", tok.Literal), source, file)
		}
		n.Pos = tok.Pos
		applySuffix(n, tok)
		return n, nil

	case lexer.VECOPEN:
		return &symtab.Node{Kind: symtab.Vector, Pos: tok.Pos}, nil

	case lexer.VECCLOSE:
		return &symtab.Node{Kind: symtab.VectorTail, Pos: tok.Pos}, nil

	case lexer.EOL:
		return &symtab.Node{Kind: symtab.None, Pos: tok.Pos}, nil

	default:
		panic("parser: symbolize given a token of unrecognized type")
	}
}

// applySuffix folds a token's explicit "'" / "'N" arity suffix into a
// node whose own element-count is still unset. A Function node's
// internal element-count adopts the suffix the same way, so a suffix
// on an operator or function call pins its generic parameter slots
// exactly as an argument's resolved width would.
func applySuffix(n *symtab.Node, tok lexer.Token) {
	if n.N == 0 {
		n.N = tok.Arity
		if n.Kind == symtab.Function && n.NInt == 0 {
			n.NInt = tok.Arity
		}
	}
}
