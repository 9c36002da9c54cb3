package greeting

import (
	"bytes"
	"testing"
)

func TestFprintlnExactOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Fprintln(&buf); err != nil {
		t.Fatalf("Fprintln: %v", err)
	}
	if got := buf.String(); got != "Hello, world!\n" {
		t.Errorf("output = %q, want %q", got, "Hello, world!\n")
	}
}

func TestFprintlnIdempotent(t *testing.T) {
	var a, b bytes.Buffer
	_ = Fprintln(&a)
	_ = Fprintln(&b)
	if a.String() != b.String() {
		t.Error("repeated invocations should produce identical output")
	}
}
