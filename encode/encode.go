package encode

import (
	"strings"

	"github.com/baoilleach/deepsmiles/debug"
	"github.com/baoilleach/deepsmiles/token"
)

// ringOpen records the first mention of a ring-closure numeral.
type ringOpen struct {
	depth int
	bond  string
	at    int // output index of the atom carrying the opening
	pos   int
}

// Encode returns the DeepSMILES form of smi. With neither rings nor
// branches enabled smi is returned unchanged.
func Encode(smi string, opts ...EncodeOption) string {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.rings && !es.branches {
		return smi
	}
	toks, _ := token.Tokenize(nil, smi, token.Lenient(true))
	if debug.Tokens() {
		token.PrintTokens(debug.Writer(), toks, "encode")
	}
	var (
		out []string
		// number of atoms written directly at each open nesting level
		levels = []int{0}
		depth  = 0
		opens  = map[string]ringOpen{}
		marks  = map[int][]closure{}
	)
	for i := range toks {
		tok := &toks[i]
		switch tok.Type {
		case token.TBond:
			// carried by the following atom or ring closure
		case token.TOpen:
			levels = append(levels, 0)
			if !es.branches {
				out = append(out, "(")
			}
		case token.TClose:
			n := 0
			if len(levels) > 0 {
				n = levels[len(levels)-1]
				levels = levels[:len(levels)-1]
				depth -= n
			}
			if es.branches {
				out = append(out, strings.Repeat(")", n))
			} else {
				out = append(out, ")")
			}
		case token.TAtom:
			if len(levels) == 0 {
				levels = append(levels, 0)
			}
			levels[len(levels)-1]++
			depth++
			out = append(out, tok.Bond+tok.Text)
		case token.TRing:
			if !es.rings {
				out = append(out, tok.Bond+tok.Text)
				continue
			}
			key := tok.Key()
			ro, ok := opens[key]
			if !ok {
				opens[key] = ringOpen{depth: depth, bond: tok.Bond, at: len(out) - 1, pos: tok.Pos}
				continue
			}
			delete(opens, key)
			bond := tok.Bond
			if bond == "" {
				bond = reverseBond(ro.bond)
			}
			size := depth - ro.depth + 1
			if ro.at >= 0 && strings.Contains(out[ro.at], "@") {
				marks[ro.at] = append(marks[ro.at], closure{kind: opening, pos: ro.pos, closePos: tok.Pos})
			}
			at := len(out) - 1
			marks[at] = append(marks[at], closure{kind: closing, pos: tok.Pos, text: bond + token.FormatRing(size)})
		}
	}
	res := assemble(out, marks)
	if debug.Encode() {
		debug.Logf("encode %q -> %q (rings=%t branches=%t)\n", smi, res, es.rings, es.branches)
	}
	return res
}

// reverseBond returns the bond symbol as seen from the other end of the
// bond. Only the directional bonds change.
func reverseBond(b string) string {
	switch b {
	case "/":
		return `\`
	case `\`:
		return "/"
	}
	return b
}

// assemble joins the output pieces, appending the ring-size tokens recorded
// for each atom and correcting its tetrahedral stereo where the new order of
// its ring bonds requires it.
func assemble(out []string, marks map[int][]closure) string {
	buf := &strings.Builder{}
	for i, x := range out {
		recs := marks[i]
		if len(recs) == 0 {
			buf.WriteString(x)
			continue
		}
		if shouldInvert(recs) {
			if debug.Stereo() {
				debug.Logf("inverting stereo of %q, ring bonds %v\n", x, recs)
			}
			x = InvertStereo(x)
		}
		buf.WriteString(x)
		for _, r := range recs {
			if r.kind == closing {
				buf.WriteString(r.text)
			}
		}
	}
	return buf.String()
}
