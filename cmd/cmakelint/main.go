// Command cmakelint checks CMake source files for style problems.
package main

import (
	"os"

	"github.com/gouzil/cmake-lint/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
