package cmd

import (
	"fmt"
	"os"

	"github.com/crystalline-labs/slipc/internal/compiler"
	"github.com/crystalline-labs/slipc/internal/diag"
	"github.com/crystalline-labs/slipc/internal/driver"
	"github.com/crystalline-labs/slipc/internal/symtab"
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags (-ldflags -X), the same
	// pattern the teacher uses for its own rootCmd.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// DumpTokens, DumpSymbols, and ParseOnly are compile-time feature
	// toggles: documented only, never runtime flags. The only way to
	// flip them is -ldflags -X at build time, same as
	// Version/GitCommit/BuildDate above.
	DumpTokens  = "false"
	DumpSymbols = "false"
	ParseOnly   = "false"
)

var tableFile string

var rootCmd = &cobra.Command{
	Use:   "slipc [file]",
	Short: "Embedded vector-math expression compiler",
	Long: `slipc preprocesses a host source file, rewriting every escaped
embedded expression in place with host-language text generated from a
symbol table, and passing every other byte through unchanged.

The default input file is "main.c" when none is given.`,
	Args:    cobra.MaximumNArgs(1),
	Version: Version,
	RunE:    runCompile,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVar(&tableFile, "table", "", "path to a YAML symbol-table file (default: built-in table)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCompile(_ *cobra.Command, args []string) error {
	path := "main.c"
	if len(args) == 1 {
		path = args[0]
	}

	table := symtab.Default()
	if tableFile != "" {
		loaded, err := symtab.LoadFile(tableFile)
		if err != nil {
			return err
		}
		table = loaded
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("slipc: opening %s: %w", path, err)
	}
	defer src.Close()

	opts := driver.Options{
		ParseOnly: ParseOnly == "true",
		Compiler: compiler.Options{
			DumpTokens:  DumpTokens == "true",
			DumpSymbols: DumpSymbols == "true",
			Debug:       os.Stderr,
		},
	}

	if err := driver.Run(src, os.Stdout, os.Stderr, table, path, opts); err != nil {
		if diagErr, ok := err.(*diag.Error); ok {
			fmt.Fprintln(os.Stderr, diagErr.FormatWithContext(1, true))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}

	return nil
}
