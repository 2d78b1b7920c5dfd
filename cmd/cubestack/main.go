// cubestack - CLI for solving and exploring the six-cube stacking puzzle.
package main

import (
	"github.com/seamusw/cubestack/internal/cli"
)

func main() {
	cli.Execute()
}
