// Command floyd is the peripheral CLI driver: it reads a JSON AST file
// produced by the external parser and runs it through the semantic core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
