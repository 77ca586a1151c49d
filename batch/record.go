package batch

import (
	"errors"
	"strconv"

	"github.com/baoilleach/deepsmiles/token"
)

// Record is the result of converting one input line.
type Record struct {
	Line   int    `json:"line" yaml:"line"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	// Offset is the byte offset of a decode error within Input.
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Diff shows how a round trip changed Input.
	Diff string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

func (r Record) OK() bool {
	return r.Error == ""
}

// Text renders the record as "output", "output\tname", or for failures
// "line N: error".
func (r Record) Text() string {
	if !r.OK() {
		s := "line " + strconv.Itoa(r.Line) + ": " + r.Error
		if r.Diff != "" {
			s += " (" + r.Diff + ")"
		}
		return s
	}
	if r.Name != "" {
		return r.Output + "\t" + r.Name
	}
	return r.Output
}

func (r *Record) setErr(err error) {
	var de *token.DecodeErr
	if errors.As(err, &de) {
		r.Error = de.Message()
		off := de.Pos
		r.Offset = &off
		return
	}
	r.Error = err.Error()
}

// env is the record as seen by filter expressions.
type env struct {
	Line   int    `expr:"line"`
	Name   string `expr:"name"`
	Input  string `expr:"input"`
	Output string `expr:"output"`
	Error  string `expr:"error"`
	OK     bool   `expr:"ok"`
	LenIn  int    `expr:"len_in"`
	LenOut int    `expr:"len_out"`
}

func (r Record) env() env {
	return env{
		Line:   r.Line,
		Name:   r.Name,
		Input:  r.Input,
		Output: r.Output,
		Error:  r.Error,
		OK:     r.OK(),
		LenIn:  len(r.Input),
		LenOut: len(r.Output),
	}
}
