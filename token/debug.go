package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(w, "\t%s `%s` %d\n", t.Type, t.Text, t.Pos)
	}
}
