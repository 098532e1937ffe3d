package lexer

import "fmt"

// Position identifies a location in the source text passed to the
// compiler after the host driver has stripped the escape character.
// Line and Column are 1-indexed; Offset is the 0-indexed byte offset
// into the expression text handed to the lexer for this invocation.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String renders a position as "line:column", the form used throughout
// diagnostics.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
