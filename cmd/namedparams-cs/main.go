// namedparams-cs reports C# calls with 4 or more arguments where not every argument is named.
//
// Usage:
//
//	namedparams-cs ./src
//	namedparams-cs --format sarif --exclude '**/obj/**' 'src/**/*.cs' > results.sarif
//
// Exit status is 1 when anything was reported and 2 on errors.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "namedparams-cs: %v\n", err)
		os.Exit(2)
	}
}
