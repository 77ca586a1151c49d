package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TAtom TokenType = iota
	TBond
	TRing
	TOpen
	TClose
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TAtom:  "TAtom",
		TBond:  "TBond",
		TRing:  "TRing",
		TOpen:  "TOpen",
		TClose: "TClose",
	}[t]
}

// Token is one lexical unit of its source string.
//
// Bond is the bond symbol written immediately before the token, or "" when
// there is none. It is only set for atoms and ring closures.
type Token struct {
	Type TokenType
	Pos  int
	Text string
	Bond string
	// Ring is the parsed value of a ring-closure numeral.
	Ring int
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos + len(t.Text)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %d", t.Type, t.Text, t.Pos)
}

// Notation selects how ring-closure numerals are read.
type Notation int

const (
	SMILES Notation = iota
	DeepSMILES
)

func (n Notation) String() string {
	switch n {
	case SMILES:
		return "smiles"
	case DeepSMILES:
		return "deepsmiles"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

const BondChars = `-=#$:/\`

func IsBond(c byte) bool {
	switch c {
	case '-', '=', '#', '$', ':', '/', '\\':
		return true
	}
	return false
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsRingStart reports whether c begins a ring-closure numeral.
func IsRingStart(c byte) bool {
	return IsDigit(c) || c == '%'
}

// FormatRing renders a ring-closure number or ring size in the three-tier
// form: a bare digit below 10, %NN below 100, %(N) otherwise.
func FormatRing(n int) string {
	switch {
	case n < 10:
		return strconv.Itoa(n)
	case n < 100:
		return fmt.Sprintf("%%%d", n)
	default:
		return fmt.Sprintf("%%(%d)", n)
	}
}
