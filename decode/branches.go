package decode

import (
	"io"

	"github.com/baoilleach/deepsmiles/debug"
	"github.com/baoilleach/deepsmiles/token"
)

// decodeBranches decodes pop-operator branches, and ring sizes when rings
// is set. Without rings, ring-closure numerals are SMILES numerals and are
// kept verbatim on the atom they follow.
func decodeBranches(src string, rings bool) (string, error) {
	notation := token.SMILES
	if rings {
		notation = token.DeepSMILES
	}
	var (
		sc    = token.NewScanner(src, token.WithNotation(notation))
		tree  = &Tree{}
		stack []int
		last  = -1
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
		case token.TClose:
			if len(stack) == 0 {
				return "", token.NewDecodeErr(token.ErrTooManyPops, src, tok.Pos)
			}
			stack = stack[:len(stack)-1]
		case token.TRing:
			if !rings {
				tree.Append(last, tok.Bond+tok.Text)
				continue
			}
			if !tree.AddRingClosure(last, tok.Ring, tok.Bond) {
				return "", token.RingSizeErr(src, tok.Pos, tok.Ring)
			}
		default:
			// '(' has no meaning in the pop notation and is carried as
			// an atom.
			parent := -1
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			} else if last >= 0 {
				return "", token.NewDecodeErr(token.ErrDetached, src, tok.Pos)
			}
			last = tree.Add(tok.Bond+tok.Text, parent)
			stack = append(stack, last)
		}
	}
	res := tree.String()
	if debug.Decode() {
		debug.Logf("decode branches %q -> %q (rings=%t, %d atoms)\n", src, res, rings, tree.Len())
	}
	return res, nil
}
