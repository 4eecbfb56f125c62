// Command holoscript is a thin CLI wrapper around the HoloScript compiler
// core: parse, lex, and validate source files from the shell.
package main

import (
	"os"

	"github.com/holoscript-lang/go-holoscript/cmd/holoscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
