package symtab

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// entryFile is the on-disk shape of a symbol-table binding file: the
// Go-native analogue of the reference implementation's "slip.binds",
// which was a C header textually #included into the compiler. Here it
// is ordinary host-supplied data, loaded at startup rather than
// compiled in, so a host project can add identifiers without touching
// this module's source.
type entryFile struct {
	Operators []yamlEntry `yaml:"operators"`
	Functions []yamlEntry `yaml:"functions"`
	Constants []yamlEntry `yaml:"constants"`
	Macros    []yamlEntry `yaml:"macros"`
}

type yamlEntry struct {
	Key    string `yaml:"key"`
	Poly   bool   `yaml:"poly"`
	N      int    `yaml:"n"`
	Out    string `yaml:"out"`
	Out1   string `yaml:"out1"`
	Out2   string `yaml:"out2"`
	Out3   string `yaml:"out3"`
	Out4   string `yaml:"out4"`
	NParam int    `yaml:"n_param"`
	Params []int  `yaml:"params"`
}

func (e yamlEntry) toNode(kind Kind, builtin bool) (Node, error) {
	n := Node{
		Kind: kind, Builtin: builtin, Key: e.Key, Poly: e.Poly,
		N: e.N, Out: e.Out, Out1: e.Out1, Out2: e.Out2, Out3: e.Out3, Out4: e.Out4,
		NParam: e.NParam,
	}
	if len(e.Params) > MaxParams {
		return Node{}, fmt.Errorf("symtab: entry %q declares %d params, max is %d", e.Key, len(e.Params), MaxParams)
	}
	for i, p := range e.Params {
		n.Params[i] = p
	}
	return n, nil
}

// LoadFile reads a YAML binding file and returns the Table it
// describes. The four top-level keys (operators, functions, constants,
// macros) correspond to the four non-terminal-or-variable Kinds a
// binding file can populate; Variable and Literal are always
// synthesized by the symbolizer and never appear in a binding file.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("symtab: reading %s: %w", path, err)
	}

	var file entryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("symtab: parsing %s: %w", path, err)
	}

	t := &Table{}
	for _, e := range file.Operators {
		n, err := e.toNode(Function, true)
		if err != nil {
			return nil, err
		}
		t.Add(n)
	}
	for _, e := range file.Functions {
		n, err := e.toNode(Function, false)
		if err != nil {
			return nil, err
		}
		t.Add(n)
	}
	for _, e := range file.Constants {
		n, err := e.toNode(Constant, false)
		if err != nil {
			return nil, err
		}
		t.Add(n)
	}
	for _, e := range file.Macros {
		n, err := e.toNode(Macro, false)
		if err != nil {
			return nil, err
		}
		t.Add(n)
	}

	return t, nil
}
