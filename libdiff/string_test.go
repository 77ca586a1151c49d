package libdiff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffStringEqual(t *testing.T) {
	if edits := DiffString("c1ccccc1", "c1ccccc1"); edits != nil {
		t.Errorf("expected no edits, got %v", edits)
	}
}

func TestDiffStringApply(t *testing.T) {
	pairs := [][2]string{
		{"C%10CC%10", "C1CC1"},
		{"C1CC(OC)CC1", "C1CC(OC)CC1O"},
		{`N\1CC=C1\Br`, `N1CC=C/1\Br`},
		{"CCO", ""},
		{"", "CCO"},
		{"[C@@]12(NC1)CO2", "[C@@]21(NC2)CO1"},
	}
	for _, p := range pairs {
		edits := DiffString(p[0], p[1])
		if len(edits) == 0 {
			t.Errorf("%q %q: no edits", p[0], p[1])
			continue
		}
		got, err := apply(p[0], edits)
		if err != nil {
			t.Errorf("%q %q: %v", p[0], p[1], err)
			continue
		}
		if got != p[1] {
			t.Errorf("apply %v to %q: got %q want %q", edits, p[0], got, p[1])
		}
	}
}

func TestDiffStringReplace(t *testing.T) {
	edits := DiffString("CCO", "CCN")
	want := []Edit{{Op: Replace, At: 2, From: "O", To: "N"}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if Size(edits) != 1 {
		t.Errorf("size %d", Size(edits))
	}
}

func TestRender(t *testing.T) {
	buf := &strings.Builder{}
	if err := Render(buf, "CCO", DiffString("CCO", "CCN"), nil, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "CC[-O-]{+N+}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

// apply applies edits produced by DiffString to from.
func apply(from string, edits []Edit) (string, error) {
	buf := &strings.Builder{}
	i := 0
	for _, e := range edits {
		if e.At < i || e.At+len(e.From) > len(from) {
			return "", fmt.Errorf("edit %s out of range", e)
		}
		if from[e.At:e.At+len(e.From)] != e.From {
			return "", fmt.Errorf("edit %s does not match %q", e, from)
		}
		buf.WriteString(from[i:e.At])
		buf.WriteString(e.To)
		i = e.At + len(e.From)
	}
	buf.WriteString(from[i:])
	return buf.String(), nil
}
