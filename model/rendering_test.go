package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	g, _ := NewGrid(2, 2, Checkerboard)
	var out bytes.Buffer
	r := NewTerminalRenderer(&out)
	r.Display(NewView(g))

	want := cursorHome + gridPosBlock + gridPosEmpty + "\n" + gridPosEmpty + gridPosBlock + "\n"
	if out.String() != want {
		t.Fatalf("display = %q, want %q", out.String(), want)
	}

	out.Reset()
	r.Status("Gen: 0", false, "help")
	if !strings.Contains(out.String(), "Gen: 0") || !strings.Contains(out.String(), "help") {
		t.Fatalf("status output %q missing text", out.String())
	}
}
