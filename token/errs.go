package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoAtom          = errors.New("ring closure or bond symbol must be preceded by an atom")
	ErrUnterminated    = errors.New("there is a '[' without the corresponding ']'")
	ErrUnterminatedPct = errors.New("'%(' is missing the corresponding close parenthesis")
	ErrRingNumeral     = errors.New("'%' should be followed by at least two digits")
	ErrRingSize        = errors.New("there is no corresponding atom on which to place the ring opening symbol")
	ErrTooManyPops     = errors.New("too many close parentheses - there is no corresponding atom to pop off the stack")
	ErrDetached        = errors.New("atom has no parent - preceding pop operators removed every atom from the stack")
	ErrUnbalanced      = errors.New("close parenthesis without a matching open parenthesis")
)

// DecodeErr is returned for every malformed DeepSMILES input.
type DecodeErr struct {
	Input string
	Pos   int
	Err   error
	// Detail qualifies Err, eg the ring size that could not be placed.
	Detail string
}

func NewDecodeErr(e error, input string, pos int) *DecodeErr {
	return &DecodeErr{Err: e, Input: input, Pos: pos}
}

func RingSizeErr(input string, pos, size int) *DecodeErr {
	return &DecodeErr{
		Err:    ErrRingSize,
		Input:  input,
		Pos:    pos,
		Detail: fmt.Sprintf("for the ring sized %d", size),
	}
}

func (e *DecodeErr) Unwrap() error {
	return e.Err
}

// Message returns the human readable explanation, without position.
func (e *DecodeErr) Message() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " " + e.Detail
}

func (e *DecodeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.Position().String())
}

func (e *DecodeErr) Position() *Pos {
	return &Pos{I: e.Pos, D: e.Input}
}

// Caret renders the message followed by the input with a caret under the
// offending offset.
func (e *DecodeErr) Caret() string {
	return e.CaretFunc(nil)
}

// CaretFunc is like Caret but passes the message and caret lines through
// paint, for instance to color them.
func (e *DecodeErr) CaretFunc(paint func(string, ...any) string) string {
	if paint == nil {
		paint = fmt.Sprintf
	}
	buf := &strings.Builder{}
	buf.WriteString("DeepSMILES cannot be decoded to SMILES\n")
	for _, ln := range wrap(e.Message(), 70) {
		buf.WriteString(paint("%s", ln))
		buf.WriteByte('\n')
	}
	buf.WriteString("  ")
	buf.WriteString(e.Input)
	buf.WriteByte('\n')
	buf.WriteString("  ")
	buf.WriteString(strings.Repeat(" ", e.Pos))
	buf.WriteString(paint("%s", "^"))
	buf.WriteByte('\n')
	return buf.String()
}

func wrap(msg string, width int) []string {
	var (
		res []string
		ln  string
	)
	for _, w := range strings.Fields(msg) {
		switch {
		case ln == "":
			ln = w
		case len(ln)+1+len(w) > width:
			res = append(res, ln)
			ln = w
		default:
			ln += " " + w
		}
	}
	if ln != "" {
		res = append(res, ln)
	}
	return res
}
