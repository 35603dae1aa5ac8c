// fsfind is a find(1)-like utility that searches folder trees by name.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/fsfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
