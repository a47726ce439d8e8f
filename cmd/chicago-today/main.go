package main

import (
	"os"

	"github.com/tartampluch/chicago-today/internal/cli"
)

// main delegates to cli.Execute so deferred calls finish before os.Exit.
func main() {
	os.Exit(cli.Execute())
}
