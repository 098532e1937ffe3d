// Package diag formats compiler diagnostics with source context and a
// caret pointing at the offending column, the same presentation the
// rest of this toolchain's compilers use for their own error output.
package diag

// Kind tags a diagnostic with which of the compiler's defined failure
// modes produced it.
type Kind string

const (
	// LexBadChar: the scanner found a character outside the closed
	// operator/identifier/digit/delimiter sets.
	LexBadChar Kind = "LexBadChar"
	// LiteralMalformed: a real-number literal had more than one
	// decimal point or otherwise failed to parse.
	LiteralMalformed Kind = "LiteralMalformed"
	// UnknownOperator: an operator-class character had no matching
	// builtin Function entry in the symbol table.
	UnknownOperator Kind = "UnknownOperator"
	// VectorOverflow: a vector literal's total element-count exceeds
	// the four-slot limit.
	VectorOverflow Kind = "VectorOverflow"
	// VectorElementArityUnknown: a vector literal's element could not
	// be resolved to a known element-count.
	VectorElementArityUnknown Kind = "VectorElementArityUnknown"
	// ArityMismatch: a function argument's resolved element-count
	// conflicts with that argument slot's already-pinned count.
	ArityMismatch Kind = "ArityMismatch"
	// InferenceFailure: a function or constant's element-count could
	// not be determined from any argument, suffix, or declaration.
	InferenceFailure Kind = "InferenceFailure"
	// UnexpectedTrailer: input remained after a complete expression
	// where an end-of-expression terminator was expected.
	UnexpectedTrailer Kind = "UnexpectedTrailer"
)
