package token

import (
	"strings"
	"testing"
)

func TestCaret(t *testing.T) {
	e := NewDecodeErr(ErrTooManyPops, "C))I", 2)
	got := e.Caret()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) < 4 {
		t.Fatalf("short rendering:\n%s", got)
	}
	if lines[len(lines)-2] != "  C))I" {
		t.Errorf("input line: got %q", lines[len(lines)-2])
	}
	if lines[len(lines)-1] != "    ^" {
		t.Errorf("caret line: got %q", lines[len(lines)-1])
	}
	for _, ln := range lines[1 : len(lines)-2] {
		if len(ln) > 70 {
			t.Errorf("message line longer than 70: %q", ln)
		}
	}
}

func TestDecodeErrString(t *testing.T) {
	e := RingSizeErr("C8", 1, 8)
	msg := e.Error()
	if !strings.Contains(msg, "ring sized 8") || !strings.Contains(msg, "offset 1") {
		t.Errorf("unexpected message %q", msg)
	}
}
