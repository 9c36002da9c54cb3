// Package greeting holds the fixed greeting emitted by cmd/hello. The
// text is deliberately constant: the hello binary takes no input and has
// no other output.
package greeting

import (
	"fmt"
	"io"
)

// Text is the greeting line, without the trailing newline.
const Text = "Hello, world!"

// Fprintln writes the greeting and a newline to w.
func Fprintln(w io.Writer) error {
	_, err := fmt.Fprintln(w, Text)
	return err
}
