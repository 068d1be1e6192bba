// Package src contains the Main function of qruuid. It is in package src
// because the project's root main.go imports it.
package src

import (
	"fmt"
	"os"

	"github.com/ironsmile/qruuid/src/cmd"
)

// Main is the only thing run in the project's root main.go file. For all
// intents and purposes this is the main function.
func Main() {
	root := cmd.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)

		if cmd.IsInputError(err) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Run 'qruuid --help' for usage.")
		os.Exit(1)
	}
}
