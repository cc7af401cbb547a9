// cmd/gembench/main.go
package main

import (
	cmd "github.com/mwiater/gembench/internal/cli"
)

// main starts the gembench CLI application by delegating to the
// cobra root command defined in the gembench package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
