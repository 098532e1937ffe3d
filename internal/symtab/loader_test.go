package symtab

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.yaml")
	const doc = `
operators:
  - key: "+"
    poly: true
    n_param: 2
    params: [0, 0]
    out1: "+"
    out2: "add2"
functions:
  - key: "len"
    n_param: 1
    params: [0]
    n: 1
    out: "length"
constants:
  - key: "half"
    n: 1
    out: "0.5"
macros:
  - key: "eps"
    n: 1
    out: "1e-6"
`
	if err := writeFile(path, doc); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	plus, ok := table.FindOperator("+")
	if !ok {
		t.Fatal("expected + operator to load")
	}
	if plus.Out2 != "add2" || plus.NParam != 2 {
		t.Errorf("plus = %+v, want Out2=add2 NParam=2", plus)
	}

	length, ok := table.FindIdentifier("len")
	if !ok || length.Kind != Function || length.Out != "length" {
		t.Errorf("len = %+v, ok=%v, want Function out=length", length, ok)
	}

	half, ok := table.FindIdentifier("half")
	if !ok || half.Kind != Constant || half.Out != "0.5" {
		t.Errorf("half = %+v, ok=%v, want Constant out=0.5", half, ok)
	}

	eps, ok := table.FindIdentifier("eps")
	if !ok || eps.Kind != Macro || eps.Out != "1e-6" {
		t.Errorf("eps = %+v, ok=%v, want Macro out=1e-6", eps, ok)
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing binding file")
	}
}

func TestLoadFile_TooManyParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "binds.yaml")
	const doc = `
functions:
  - key: "over"
    n_param: 5
    params: [0, 0, 0, 0, 0]
`
	if err := writeFile(path, doc); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected an error for a function declaring more than 4 params")
	}
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
