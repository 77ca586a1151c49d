// Package libdiff computes character diffs of short strings, such as a
// SMILES string and the result of its round trip through DeepSMILES.
package libdiff

import (
	"fmt"
	"io"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is one change. At is the byte offset in the source string, From the
// removed text and To the inserted text.
type Edit struct {
	Op   Op
	At   int
	From string
	To   string
}

func (e Edit) String() string {
	switch e.Op {
	case Delete:
		return fmt.Sprintf("%d: -%q", e.At, e.From)
	case Insert:
		return fmt.Sprintf("%d: +%q", e.At, e.To)
	default:
		return fmt.Sprintf("%d: %q -> %q", e.At, e.From, e.To)
	}
}

// DiffString returns the edits turning from into to, nil if they are equal.
// A deletion directly followed by an insertion is reported as a Replace.
func DiffString(from, to string) []Edit {
	if from == to {
		return nil
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffCleanupSemantic(diffCfg.DiffMain(from, to, false))
	var res []Edit
	ri := 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			if n := len(res); n != 0 && res[n-1].Op == Delete && res[n-1].At+len(res[n-1].From) == ri {
				// insert after delete -> make replace
				res[n-1].Op = Replace
				res[n-1].To = diff.Text
				continue
			}
			res = append(res, Edit{Op: Insert, At: ri, To: diff.Text})
		case diffpatch.DiffDelete:
			res = append(res, Edit{Op: Delete, At: ri, From: diff.Text})
			ri += len(diff.Text)
		case diffpatch.DiffEqual:
			ri += len(diff.Text)
		}
	}
	return res
}

// Size is the number of bytes touched by edits.
func Size(edits []Edit) int {
	n := 0
	for _, e := range edits {
		n += max(len(e.From), len(e.To))
	}
	return n
}

// Painter colors a span. fatih/color's SprintfFunc values are Painters.
type Painter func(format string, a ...any) string

// Render writes from with deletions painted by del and insertions by ins.
// Nil painters mark spans with [-...-] and {+...+}.
func Render(w io.Writer, from string, edits []Edit, del, ins Painter) error {
	if del == nil {
		del = func(f string, a ...any) string { return "[-" + fmt.Sprintf(f, a...) + "-]" }
	}
	if ins == nil {
		ins = func(f string, a ...any) string { return "{+" + fmt.Sprintf(f, a...) + "+}" }
	}
	buf := &strings.Builder{}
	i := 0
	for _, e := range edits {
		buf.WriteString(from[i:e.At])
		if e.From != "" {
			buf.WriteString(del("%s", e.From))
		}
		if e.To != "" {
			buf.WriteString(ins("%s", e.To))
		}
		i = e.At + len(e.From)
	}
	buf.WriteString(from[i:])
	_, err := io.WriteString(w, buf.String())
	return err
}
