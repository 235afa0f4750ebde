package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g := mustEmpty(t, 3, 2)
	g.ToggleCell(0, 1)
	g.ToggleCell(1, 2)

	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatal(err)
	}

	want := "  ██  \n    ██\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display wrote %q, want %q", got, want)
	}
}

func TestTerminalRendererClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Clear(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != ansiClear {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}
