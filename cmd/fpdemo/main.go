// Command fpdemo drives the iterative demo algorithms described as
// external collaborators of the fixed-point arithmetic core: a
// reciprocal by Newton-Raphson iteration and a square root by
// bisection. Both subcommands consume only the library's public API.
package main

import (
	"os"

	"github.com/nmoseley/fplib/cmd/fpdemo/command"
)

func main() {
	if err := command.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
