package decode

import (
	"io"
	"strings"

	"github.com/baoilleach/deepsmiles/debug"
	"github.com/baoilleach/deepsmiles/token"
)

// decodeRings decodes ring sizes in DeepSMILES that keeps SMILES branch
// parentheses.
func decodeRings(src string) (string, error) {
	var (
		sc  = token.NewScanner(src, token.WithNotation(token.DeepSMILES))
		out []string
		// output indices of the atoms written directly at each open
		// parenthesis level
		levels   = [][]int{nil}
		splices  = map[int]string{}
		closures = 0
	)
	for {
		tok, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch tok.Type {
		case token.TBond:
		case token.TOpen:
			levels = append(levels, nil)
			out = append(out, "(")
		case token.TClose:
			if len(levels) == 1 {
				return "", token.NewDecodeErr(token.ErrUnbalanced, src, tok.Pos)
			}
			levels = levels[:len(levels)-1]
			out = append(out, ")")
		case token.TRing:
			if len(out) == 0 {
				return "", token.NewDecodeErr(token.ErrNoAtom, src, tok.Pos)
			}
			opener, ok := walkBack(levels, tok.Ring)
			if !ok {
				return "", token.RingSizeErr(src, tok.Pos, tok.Ring)
			}
			closures++
			sym := token.FormatRing(closures)
			out[len(out)-1] += tok.Bond + sym
			splices[opener] += sym
		case token.TAtom:
			top := len(levels) - 1
			levels[top] = append(levels[top], len(out))
			out = append(out, tok.Bond+tok.Text)
		}
	}
	buf := &strings.Builder{}
	for i, x := range out {
		buf.WriteString(x)
		buf.WriteString(splices[i])
	}
	res := buf.String()
	if debug.Decode() {
		debug.Logf("decode rings %q -> %q (%d closures)\n", src, res, closures)
	}
	return res, nil
}

// walkBack returns the n-th atom, counting from 1, on the path walked
// backwards from the most recent atom: each level from innermost to
// outermost, each level from its latest atom to its earliest.
func walkBack(levels [][]int, n int) (int, bool) {
	if n < 1 {
		return -1, false
	}
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		if n <= len(lvl) {
			return lvl[len(lvl)-n], true
		}
		n -= len(lvl)
	}
	return -1, false
}
