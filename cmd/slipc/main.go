// Command slipc runs the embedded vector-math expression compiler
// over a host source file, splicing compiled host-language text in
// place of each escaped region and passing everything else through
// unchanged.
package main

import (
	"os"

	"github.com/crystalline-labs/slipc/cmd/slipc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
