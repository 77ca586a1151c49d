package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Texter is implemented by values with a one-line text rendering.
type Texter interface {
	Text() string
}

// Writer writes a stream of values: one line per value for text and json,
// a document stream for yaml.
type Writer struct {
	w   io.Writer
	f   Format
	enc *json.Encoder
	n   int
}

func NewWriter(w io.Writer, f Format) *Writer {
	res := &Writer{w: w, f: f}
	if f == JSONFormat {
		res.enc = json.NewEncoder(w)
		res.enc.SetEscapeHTML(false)
	}
	return res
}

func (w *Writer) Write(v any) error {
	defer func() { w.n++ }()
	switch w.f {
	case JSONFormat:
		return w.enc.Encode(v)
	case YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w.w, "---\n"); err != nil {
			return err
		}
		_, err = w.w.Write(d)
		return err
	default:
		var s string
		if t, ok := v.(Texter); ok {
			s = t.Text()
		} else {
			s = fmt.Sprint(v)
		}
		_, err := io.WriteString(w.w, s+"\n")
		return err
	}
}

// Count is the number of values written.
func (w *Writer) Count() int {
	return w.n
}
