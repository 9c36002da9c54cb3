// The hello command writes a fixed greeting to standard output and exits
// with status 0. It consumes no arguments, environment, or configuration.
package main

import (
	"os"

	"github.com/wilbur182/salmon/internal/greeting"
)

func main() {
	_ = greeting.Fprintln(os.Stdout)
	os.Exit(0)
}
