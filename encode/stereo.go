package encode

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

type closureKind int

const (
	closing closureKind = iota
	opening
)

// closure is one mention of a ring bond on an atom.
type closure struct {
	kind closureKind
	pos  int
	// closePos is the offset of the closing mention of an opening.
	closePos int
	// text is the ring-size token of a closing.
	text string
}

func (c closure) String() string {
	if c.kind == opening {
		return fmt.Sprintf("open@%d(closed@%d)", c.pos, c.closePos)
	}
	return fmt.Sprintf("close@%d(%s)", c.pos, c.text)
}

// compare orders ring bonds as they are written in DeepSMILES: closings
// first in input order, then openings in the order of their closing
// mentions.
func (c closure) compare(o closure) int {
	if c.kind != o.kind {
		return cmp.Compare(c.kind, o.kind)
	}
	if c.kind == opening {
		return cmp.Compare(c.closePos, o.closePos)
	}
	return cmp.Compare(c.pos, o.pos)
}

// shouldInvert reports whether reordering recs into DeepSMILES order is an
// odd permutation of the neighbours of their atom.
func shouldInvert(recs []closure) bool {
	if len(recs) <= 1 {
		return false
	}
	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, closure.compare)
	seq := make([]int, len(sorted))
	for i := range sorted {
		seq[i] = sorted[i].pos
	}
	return inversions(seq)%2 == 1
}

// inversions counts the pairs of seq which are out of order.
func inversions(seq []int) int {
	n := 0
	for i := 0; i < len(seq)-1; i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				n++
			}
		}
	}
	return n
}

// InvertStereo swaps each '@' tetrahedral marker in an atom for '@@' and
// vice versa.
func InvertStereo(atom string) string {
	if !strings.Contains(atom, "@") {
		return atom
	}
	buf := &strings.Builder{}
	for i := 0; i < len(atom); i++ {
		c := atom[i]
		buf.WriteByte(c)
		if c != '@' {
			continue
		}
		if i+1 < len(atom) && atom[i+1] == '@' {
			i++
			continue
		}
		buf.WriteByte('@')
	}
	return buf.String()
}
