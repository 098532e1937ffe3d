// Package translator implements the table-driven translator: it walks
// a fully arity-resolved expression tree and renders it into
// host-language text using each node's resolved rendering template.
package translator

import (
	"fmt"
	"strings"

	"github.com/crystalline-labs/slipc/internal/diag"
	"github.com/crystalline-labs/slipc/internal/symtab"
)

// Translator renders resolved expression trees. source and file are
// carried only to enrich diagnostics raised during rendering (an
// unresolved polymorphic Constant) with a caret-annotated line.
type Translator struct {
	source string
	file   string
}

// New creates a Translator. source and file may be left empty.
func New(source, file string) *Translator {
	return &Translator{source: source, file: file}
}

// Translate renders node's host-language text.
func (tr *Translator) Translate(node *symtab.Node) (string, error) {
	switch node.Kind {
	case symtab.Function:
		return tr.renderFunction(node)
	case symtab.Constant:
		return tr.renderConstant(node)
	case symtab.Macro:
		return node.Out, nil
	case symtab.Variable:
		return node.Key, nil
	case symtab.Literal:
		return node.Text, nil
	case symtab.Vector:
		return tr.renderVector(node)
	default:
		panic("translator: cannot render a " + node.Kind.String() + " node")
	}
}

// renderFunction renders a Function call. Its own rendering template
// is printed ahead of the opening parenthesis, with one exception: a
// builtin operator resolved to scalar arity prints nothing ahead of
// the parenthesis and instead renders its operator symbol between (or
// before) its arguments, as infix or prefix notation — still wrapped
// in the same parenthesis pair every other call gets, so a generated
// "a + b" never needs the surrounding host expression to guess at its
// precedence.
func (tr *Translator) renderFunction(node *symtab.Node) (string, error) {
	scalarBuiltin := node.Builtin && node.NInt == 1

	var sb strings.Builder
	if !scalarBuiltin {
		tmpl, err := tr.selectFunctionTemplate(node)
		if err != nil {
			return "", err
		}
		sb.WriteString(tmpl)
	}
	sb.WriteString("(")

	args := make([]string, node.NParam)
	for i := 0; i < node.NParam; i++ {
		s, err := tr.Translate(node.Args[i])
		if err != nil {
			return "", err
		}
		args[i] = s
	}

	switch {
	case scalarBuiltin && node.NParam == 1:
		sb.WriteString(node.Out1)
		sb.WriteString(args[0])
	case scalarBuiltin && node.NParam == 2:
		sb.WriteString(args[0])
		sb.WriteString(" ")
		sb.WriteString(node.Out1)
		sb.WriteString(" ")
		sb.WriteString(args[1])
	default:
		sb.WriteString(strings.Join(args, ", "))
	}

	sb.WriteString(")")
	return sb.String(), nil
}

func (tr *Translator) selectFunctionTemplate(node *symtab.Node) (string, error) {
	if !node.Poly {
		return node.Out, nil
	}
	switch node.NInt {
	case 0:
		return node.Out, nil
	case 1:
		return node.Out1, nil
	case 2:
		return node.Out2, nil
	case 3:
		return node.Out3, nil
	case 4:
		return node.Out4, nil
	default:
		return "", diag.New(diag.InferenceFailure, node.Pos,
			fmt.Sprintf("function %q has an invalid internal element-count %d", node.Key, node.NInt), tr.source, tr.file)
	}
}

func (tr *Translator) renderConstant(node *symtab.Node) (string, error) {
	if !node.Poly {
		return node.Out, nil
	}
	switch node.N {
	case 1:
		return node.Out1, nil
	case 2:
		return node.Out2, nil
	case 3:
		return node.Out3, nil
	case 4:
		return node.Out4, nil
	default:
		return "", diag.New(diag.InferenceFailure, node.Pos,
			fmt.Sprintf("cannot infer the element-count of constant %q", node.Key), tr.source, tr.file)
	}
}

// renderVector renders a vector literal. When its sole element's own
// element-count already equals the vector's, the wrapper is elided
// entirely and the element renders in its place — the case a
// single-element "[ sin cos 1 ]" leans on to disappear into "sin(cos(1))".
func (tr *Translator) renderVector(node *symtab.Node) (string, error) {
	if node.NElem == 0 {
		panic("translator: vector node has no elements")
	}

	first := node.Elem[0]
	if first.N == node.N {
		return tr.Translate(first)
	}

	var prefix string
	switch node.N {
	case 2:
		prefix = "(ff) { "
	case 3:
		prefix = "(v3) { "
	case 4:
		prefix = "(v4) { "
	default:
		panic(fmt.Sprintf("translator: vector has an invalid element-count %d", node.N))
	}

	parts := make([]string, node.NElem)
	for i := 0; i < node.NElem; i++ {
		s, err := tr.Translate(node.Elem[i])
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	return prefix + strings.Join(parts, ", ") + " }", nil
}
