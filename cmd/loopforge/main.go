// Command loopforge builds synthetic control-flow graphs and benchmarks two
// loop-recognition engines against them.
package main

import (
	"fmt"
	"os"

	"github.com/gophloop/loopforge/cmd/loopforge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
