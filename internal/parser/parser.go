package parser

import (
	"fmt"

	"github.com/crystalline-labs/slipc/internal/diag"
	"github.com/crystalline-labs/slipc/internal/lexer"
	"github.com/crystalline-labs/slipc/internal/symtab"
)

// Parser drives a Lexer through one embedded expression at a time,
// resolving and structurally parsing it against a symbol Table.
type Parser struct {
	lex    *lexer.Lexer
	table  *symtab.Table
	source string
	file   string
}

// New creates a Parser reading from l and resolving identifiers and
// operators against table. source and file are used only to enrich
// diagnostics with a caret-annotated source line; either may be left
// empty.
func New(l *lexer.Lexer, table *symtab.Table, source, file string) *Parser {
	return &Parser{lex: l, table: table, source: source, file: file}
}

// Parse resolves and parses exactly one expression, returning its
// fully typed root node together with the token that terminated it
// (a ',' ':' ';' '\n' or end-of-input EOL). The continuation driver
// uses the terminator to decide whether, and how, to keep going.
func (p *Parser) Parse() (*symtab.Node, lexer.Token, error) {
	tok, err := p.lex.NextToken()
	if err != nil {
		return nil, lexer.Token{}, p.wrapLexErr(err)
	}

	node, err := symbolize(tok, p.table, p.source, p.file)
	if err != nil {
		return nil, lexer.Token{}, err
	}

	if node.Kind == symtab.None {
		return node, tok, nil
	}

	if err := p.parseSym(node); err != nil {
		return nil, lexer.Token{}, err
	}

	trailer, err := p.lex.NextToken()
	if err != nil {
		return nil, lexer.Token{}, p.wrapLexErr(err)
	}
	if trailer.Type != lexer.EOL {
		return nil, lexer.Token{}, diag.New(diag.UnexpectedTrailer, trailer.Pos,
			fmt.Sprintf("unexpected input %q after a complete expression", trailer.Literal), p.source, p.file)
	}

	return node, trailer, nil
}

func (p *Parser) wrapLexErr(err error) error {
	lexErr, ok := err.(*lexer.LexError)
	if !ok {
		return err
	}
	return diag.New(diag.Kind(lexErr.Kind), lexErr.Pos, lexErr.Message, p.source, p.file)
}

// parseSym structurally recurses into node's children, if it has any.
// Constant, Macro, Variable, and Literal nodes are terminal.
func (p *Parser) parseSym(node *symtab.Node) error {
	switch node.Kind {
	case symtab.Function:
		return p.parseFunction(node)
	case symtab.Vector:
		return p.parseVector(node)
	default:
		return nil
	}
}

// parseFunction reads exactly node.NParam arguments in order,
// unifying each against its parameter slot as it arrives, then signals
// InferenceFailure if the function's internal element-count never
// resolved despite having generic slots, and finally back-fills that
// resolved count into any argument still left at zero.
func (p *Parser) parseFunction(node *symtab.Node) error {
	infer := false
	for i := 0; i < node.NParam; i++ {
		if node.Params[i] == 0 {
			infer = true
		}
	}

	for i := 0; i < node.NParam; i++ {
		tok, err := p.lex.NextToken()
		if err != nil {
			return p.wrapLexErr(err)
		}
		arg, err := symbolize(tok, p.table, p.source, p.file)
		if err != nil {
			return err
		}
		if err := p.parseSym(arg); err != nil {
			return err
		}
		if err := checkArg(node, i, arg); err != nil {
			return err
		}
		node.Args[i] = arg
	}

	if node.NInt == 0 && infer {
		return diag.New(diag.InferenceFailure, node.Pos,
			fmt.Sprintf("could not infer the element-count of function %q", node.Key), p.source, p.file)
	}

	for i := 0; i < node.NParam; i++ {
		if node.Args[i].N == 0 {
			node.Args[i].N = node.NInt
			node.Params[i] = node.NInt
		}
	}

	return nil
}

// parseVector reads elements until a ']' token closes the literal (or
// input runs out first, which closes it just the same — an
// unterminated vector is never reported as a missing ']'), rejecting
// an element whose own element-count could not be determined and
// rejecting a literal whose total element-count would exceed the
// four-slot limit.
func (p *Parser) parseVector(node *symtab.Node) error {
	for {
		tok, err := p.lex.NextToken()
		if err != nil {
			return p.wrapLexErr(err)
		}

		elem, err := symbolize(tok, p.table, p.source, p.file)
		if err != nil {
			return err
		}
		if elem.Kind == symtab.VectorTail || elem.Kind == symtab.None {
			return nil
		}

		if err := p.parseSym(elem); err != nil {
			return err
		}
		if elem.N == 0 {
			return diag.New(diag.VectorElementArityUnknown, elem.Pos,
				"vector element's element-count could not be determined", p.source, p.file)
		}
		if node.NElem >= symtab.MaxParams {
			return diag.New(diag.VectorOverflow, elem.Pos,
				"vector literal has more than 4 elements", p.source, p.file)
		}

		node.Elem[node.NElem] = elem
		node.NElem++
		node.N += elem.N
		if node.N > symtab.MaxParams {
			return diag.New(diag.VectorOverflow, elem.Pos,
				"vector literal's total element-count exceeds 4", p.source, p.file)
		}
	}
}
