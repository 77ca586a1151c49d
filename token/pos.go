package token

import (
	"fmt"
	"strconv"
)

// Pos is an offset into a single-line document.
type Pos struct {
	I int
	D string
}

func (p Pos) String() string {
	lo := min(max(0, p.I-5), len(p.D))
	sample := p.D[lo:min(max(lo, p.I+5), len(p.D))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
}
