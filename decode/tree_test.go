package decode

import (
	"strings"
	"testing"
)

func TestTreeString(t *testing.T) {
	tr := &Tree{}
	c := tr.Add("C", -1)
	tr.Add("F", c)
	tr.Add("Cl", c)
	o := tr.Add("O", c)
	tr.Add("C", o)
	if got, want := tr.String(), "C(F)(Cl)OC"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestTreeRingClosure(t *testing.T) {
	tr := &Tree{}
	last := -1
	for range 6 {
		last = tr.Add("c", last)
	}
	if !tr.AddRingClosure(last, 6, "") {
		t.Fatal("ring closure failed")
	}
	if tr.AddRingClosure(last, 7, "") {
		t.Error("ring of 7 closed on a chain of 6")
	}
	if tr.AddRingClosure(last, 0, "") {
		t.Error("ring of 0 closed")
	}
	if got, want := tr.String(), "c1ccccc1"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestTreeAncestor(t *testing.T) {
	tr := &Tree{}
	a := tr.Add("A", -1)
	b := tr.Add("B", a)
	c := tr.Add("C", b)
	if got, ok := tr.Ancestor(c, 2); !ok || got != a {
		t.Errorf("got %d, %t", got, ok)
	}
	if _, ok := tr.Ancestor(c, 3); ok {
		t.Error("ancestor above the root")
	}
}

func TestTreeDeepChain(t *testing.T) {
	tr := &Tree{}
	last := -1
	const n = 200000
	for range n {
		last = tr.Add("C", last)
	}
	if got := tr.String(); got != strings.Repeat("C", n) {
		t.Errorf("got %d bytes, want %d", len(got), n)
	}
}

func TestWalkBack(t *testing.T) {
	levels := [][]int{{0, 1, 2}, {4, 5}, {7}}
	for n, want := range map[int]int{1: 7, 2: 5, 3: 4, 4: 2, 6: 0} {
		got, ok := walkBack(levels, n)
		if !ok || got != want {
			t.Errorf("walkBack(%d) = %d, %t, want %d", n, got, ok, want)
		}
	}
	if _, ok := walkBack(levels, 7); ok {
		t.Error("walked past the start")
	}
}
