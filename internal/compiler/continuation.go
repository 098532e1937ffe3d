// Package compiler implements the continuation driver: it chains the
// lexer, symbolizer/parser, and translator across one embedded region,
// handling the ':' link between successive top-level expressions the
// same way the reference implementation's self-recursing parse()
// function does.
package compiler

import (
	"io"
	"strings"

	"github.com/crystalline-labs/slipc/internal/lexer"
	"github.com/crystalline-labs/slipc/internal/parser"
	"github.com/crystalline-labs/slipc/internal/symtab"
	"github.com/crystalline-labs/slipc/internal/translator"
)

// Options controls the optional diagnostic dumps the CLI exposes only
// as build-time toggles, never as runtime flags. The zero value runs
// silently.
type Options struct {
	// DumpTokens traces every token scanned to Debug.
	DumpTokens bool
	// DumpSymbols writes a tree rendering of each resolved expression
	// to Debug once parsing completes.
	DumpSymbols bool
	// Debug receives the dumps above. Dumps are skipped entirely when
	// it is nil, regardless of the two flags.
	Debug io.Writer
}

// Compile renders one embedded region — a chain of top-level
// expressions, each ending in a separator (',', ';', ':', or end of
// input) — into host-language text. Any separator chains into a
// further expression when one actually follows it, not just ':'; the
// separator's own spelling decides how the chain link is rendered. in
// is the expression text immediately following the escape character;
// line and column locate its first byte within the host file, so
// diagnostics raised anywhere in the chain point back at the right
// place.
func Compile(in string, table *symtab.Table, source, file string, line, column int, opts Options) (string, error) {
	var out strings.Builder
	l := lexer.New(in, line, column)
	if opts.DumpTokens && opts.Debug != nil {
		l.Trace = opts.Debug
	}

	for {
		node, eol, err := parser.New(l, table, source, file).Parse()
		if err != nil {
			return "", err
		}
		if node.Kind == symtab.None {
			return out.String(), nil
		}

		if opts.DumpSymbols && opts.Debug != nil {
			symtab.Dump(opts.Debug, node, 0)
		}

		text, err := translator.New(source, file).Translate(node)
		if err != nil {
			return "", err
		}
		out.WriteString(text)

		// Peek on a throwaway copy of the cursor to see whether another
		// expression actually follows this separator: Lexer holds only
		// plain values, so copying it is as cheap as the reference
		// implementation's own pointer-copy lookahead, and leaves l
		// itself untouched either way.
		peek := *l
		peek.Trace = nil
		tok, peekErr := peek.NextToken()
		more := peekErr != nil || tok.Type != lexer.EOL

		if !more {
			out.WriteString(closingSeparator(eol.Literal))
			return out.String(), nil
		}

		if eol.Literal == ":" {
			out.WriteString(" : ")
		} else {
			out.WriteString(eol.Literal + " ")
		}
	}
}

// closingSeparator normalizes the punctuation that ends the final
// expression in a chain. An implicit terminator (end of input reached
// without an explicit ',' ';' or ':') becomes ';', the separator every
// compiled region needs in the host text; ':' gets a leading space with
// no trailing one (nothing follows it to separate from); anything else
// is echoed unchanged.
func closingSeparator(eol string) string {
	switch eol {
	case "", "\n", "\x00":
		return ";"
	case ":":
		return " :"
	default:
		return eol
	}
}
