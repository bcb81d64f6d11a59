// Command thermo is the CLI front end to the NASA Glenn thermodynamic
// database: species lookup, property tables over temperature sweeps, XML
// export and subset emission.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
