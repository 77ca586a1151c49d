package token

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type TokenOpt func(*Scanner)

// WithNotation selects how ring-closure numerals are read. The default is
// [SMILES].
func WithNotation(n Notation) TokenOpt {
	return func(s *Scanner) { s.notation = n }
}

// Lenient makes the scanner accept malformed input instead of failing:
// unterminated bracket atoms run to the end of the input, malformed ring
// numerals are returned with Ring set to -1 and leading bonds or ring
// closures are allowed.
func Lenient(v bool) TokenOpt {
	return func(s *Scanner) { s.lenient = v }
}

type Scanner struct {
	src      string
	i        int
	notation Notation
	lenient  bool
	sawAtom  bool
}

func NewScanner(src string, opts ...TokenOpt) *Scanner {
	s := &Scanner{src: src}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next token, or io.EOF once the input is consumed.
func (s *Scanner) Next() (Token, error) {
	if s.i >= len(s.src) {
		return Token{}, io.EOF
	}
	tok, err := s.scan()
	if err != nil {
		return Token{}, err
	}
	s.i = tok.End()
	return tok, nil
}

func (s *Scanner) scan() (Token, error) {
	i := s.i
	c := s.src[i]
	switch {
	case IsBond(c):
		if !s.sawAtom && !s.lenient {
			return Token{}, NewDecodeErr(ErrNoAtom, s.src, i)
		}
		return Token{Type: TBond, Pos: i, Text: s.src[i : i+1]}, nil
	case c == '(':
		return Token{Type: TOpen, Pos: i, Text: "("}, nil
	case c == ')':
		return Token{Type: TClose, Pos: i, Text: ")"}, nil
	case IsRingStart(c):
		if !s.sawAtom && !s.lenient {
			return Token{}, NewDecodeErr(ErrNoAtom, s.src, i)
		}
		tok, err := s.ring(i)
		if err != nil {
			return Token{}, err
		}
		tok.Bond = s.bondBefore(i)
		return tok, nil
	}
	n, err := s.atomLen(i)
	if err != nil {
		return Token{}, err
	}
	s.sawAtom = true
	return Token{
		Type: TAtom,
		Pos:  i,
		Text: s.src[i : i+n],
		Bond: s.bondBefore(i),
	}, nil
}

func (s *Scanner) bondBefore(i int) string {
	if i > 0 && IsBond(s.src[i-1]) {
		return s.src[i-1 : i]
	}
	return ""
}

// atomLen returns the length of the atom starting at i: a bracket atom, one
// of the two-letter halogens Cl and Br, or a single character.
func (s *Scanner) atomLen(i int) (int, error) {
	d := s.src[i:]
	switch {
	case d[0] == '[':
		j := strings.IndexByte(d, ']')
		if j == -1 {
			if s.lenient {
				return len(d), nil
			}
			return 0, NewDecodeErr(ErrUnterminated, s.src, i)
		}
		return j + 1, nil
	case strings.HasPrefix(d, "Cl"), strings.HasPrefix(d, "Br"):
		return 2, nil
	}
	_, sz := utf8.DecodeRuneInString(d)
	return sz, nil
}

func (s *Scanner) ring(i int) (Token, error) {
	d := s.src[i:]
	tok := Token{Type: TRing, Pos: i}
	if IsDigit(d[0]) {
		tok.Text = d[:1]
		tok.Ring = int(d[0] - '0')
		return tok, nil
	}
	if len(d) > 1 && d[1] == '(' {
		j := strings.IndexByte(d[2:], ')')
		if j == -1 {
			if s.lenient {
				tok.Text, tok.Ring = d, -1
				return tok, nil
			}
			return Token{}, NewDecodeErr(ErrUnterminatedPct, s.src, i)
		}
		tok.Text = d[:j+3]
		v, ok := digits(d[2 : j+2])
		if !ok {
			if s.lenient {
				tok.Ring = -1
				return tok, nil
			}
			return Token{}, NewDecodeErr(ErrRingNumeral, s.src, i)
		}
		tok.Ring = v
		return tok, nil
	}
	n := asciiDigits(d[1:min(3, len(d))])
	if n != 2 {
		if s.lenient {
			tok.Text, tok.Ring = d[:min(3, len(d))], -1
			return tok, nil
		}
		return Token{}, NewDecodeErr(ErrRingNumeral, s.src, i)
	}
	// after %NN a third digit is taken as part of the same numeral.
	if s.notation == DeepSMILES && len(d) > 3 && IsDigit(d[3]) {
		n = 3
	}
	tok.Text = d[:n+1]
	tok.Ring, _ = strconv.Atoi(d[1 : n+1])
	return tok, nil
}

func digits(d string) (int, bool) {
	if d == "" || asciiDigits(d) != len(d) {
		return 0, false
	}
	v, err := strconv.Atoi(d)
	if err != nil {
		return 0, false
	}
	return v, true
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) && IsDigit(d[i]) {
		i++
	}
	return i
}

// Key identifies the ring bond a ring-closure token refers to. Numerals
// with the same value denote the same bond whatever their written form.
func (t *Token) Key() string {
	if t.Ring < 0 {
		return t.Text
	}
	return strconv.Itoa(t.Ring)
}
