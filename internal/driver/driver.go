// Package driver implements the host-file driver: a byte-for-byte
// passthrough of arbitrary host text that recognizes one reserved
// escape character and, on each occurrence outside a string or
// character literal, hands the remainder of the line to the
// compiler's continuation driver, splicing its compiled text in place
// of the escape and everything that followed it on that line.
package driver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/crystalline-labs/slipc/internal/compiler"
	"github.com/crystalline-labs/slipc/internal/symtab"
)

// Default delimiter characters, named constants matching the reference
// implementation's escape/vec_beg/vec_end/eol_def.
const (
	Escape            = '$'
	VectorOpen        = '['
	VectorClose       = ']'
	DefaultTerminator = ';'
)

// Options controls driver behavior that the CLI exposes only as
// build-time toggles, never as runtime flags.
type Options struct {
	// ParseOnly suppresses the byte-for-byte passthrough of host text:
	// dst receives only the compiled expression output plus the newline
	// written after each input line, isolating the compiler's own output
	// from whatever host file it was embedded in.
	ParseOnly bool
	// Compiler is forwarded unchanged to every compiler.Compile call.
	Compiler compiler.Options
}

// Run streams src to dst line by line, compiling each escaped region
// against table and writing everything else through unchanged (unless
// opts.ParseOnly suppresses that passthrough). Progress messages
// ("compile \"path\"", "OK") go to progress, the same two lines the
// reference driver writes to stderr; pass nil to silence them.
func Run(src io.Reader, dst io.Writer, progress io.Writer, table *symtab.Table, path string, opts Options) error {
	if progress != nil {
		fmt.Fprintf(progress, "compile %q\n", path)
	}

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := compileLine(dst, scanner.Bytes(), table, path, lineNo, opts); err != nil {
			return err
		}
		if _, err := io.WriteString(dst, "\n"); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if progress != nil {
		fmt.Fprintln(progress, "OK")
	}
	return nil
}

// compileLine echoes line byte-for-byte up to its first unescaped,
// unquoted occurrence of the escape character, then hands everything
// after it to the continuation driver and writes the compiled result
// in its place — the rest of the physical line is consumed by that one
// compiled region, exactly as in the reference driver, which never
// resumes raw passthrough after an escape on the same line. Under
// opts.ParseOnly, the passthrough bytes themselves are never written;
// only the compiled output reaches dst.
func compileLine(dst io.Writer, line []byte, table *symtab.Table, path string, lineNo int, opts Options) error {
	inString := false
	inChar := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '"':
			inString = !inString
		case '\'':
			inChar = !inChar
		}

		if c != Escape || inString || inChar {
			if opts.ParseOnly {
				continue
			}
			if _, err := dst.Write(line[i : i+1]); err != nil {
				return err
			}
			continue
		}

		rest := string(line[i+1:])
		out, err := compiler.Compile(rest, table, string(line), path, lineNo, i+2, opts.Compiler)
		if err != nil {
			return err
		}
		_, err = io.WriteString(dst, out)
		return err
	}

	return nil
}
