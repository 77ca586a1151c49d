// Package batch converts streams of SMILES or DeepSMILES lines.
//
// Each non-blank line not starting with '#' holds a string, optionally
// followed by whitespace and a name. Lines are converted concurrently by a
// fixed number of workers sharing one Converter, and records are emitted in
// input order. Gzip-compressed input is detected and decompressed.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/klauspost/compress/gzip"
	"golang.org/x/sync/errgroup"

	"github.com/baoilleach/deepsmiles"
	"github.com/baoilleach/deepsmiles/libdiff"
)

type Direction int

const (
	Encode Direction = iota
	Decode
	RoundTrip
)

var ErrDirection = errors.New("bad direction")

func ParseDirection(v string) (Direction, error) {
	switch v {
	case "encode", "e":
		return Encode, nil
	case "decode", "d":
		return Decode, nil
	case "roundtrip", "r":
		return RoundTrip, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrDirection, v)
}

func (d Direction) String() string {
	switch d {
	case Encode:
		return "encode"
	case Decode:
		return "decode"
	case RoundTrip:
		return "roundtrip"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ErrRoundTrip is the record error for a round trip which changed the text.
var ErrRoundTrip = errors.New("round trip changed the input")

// MaxLine is the longest accepted input line.
const MaxLine = 1 << 20

type Option func(*Runner)

func WithDirection(d Direction) Option {
	return func(r *Runner) { r.dir = d }
}

// Workers sets the number of concurrent workers; n < 1 means GOMAXPROCS.
func Workers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// Where keeps only records for which the expression is true.
func Where(src string) Option {
	return func(r *Runner) { r.where = src }
}

type Runner struct {
	conv    *deepsmiles.Converter
	dir     Direction
	workers int
	where   string
	filter  *vm.Program
}

func New(conv *deepsmiles.Converter, opts ...Option) (*Runner, error) {
	r := &Runner{conv: conv}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	if r.where != "" {
		prg, err := expr.Compile(r.where, expr.Env(env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("error compiling %q: %w", r.where, err)
		}
		r.filter = prg
	}
	return r, nil
}

// Stats counts the records of a run.
type Stats struct {
	Lines   int
	Failed  int
	Dropped int
}

type job struct {
	rec Record
	res chan Record
}

// Run converts every line of in and calls emit with each kept record in
// input order. Emit is never called concurrently. Run returns the first error
// from reading, filtering or emit, or ctx.Err() if ctx is done first.
func (r *Runner) Run(ctx context.Context, in io.Reader, emit func(Record) error) (Stats, error) {
	var stats Stats
	src, err := Decompress(in)
	if err != nil {
		return stats, err
	}
	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan *job)
	order := make(chan *job, r.workers)

	g.Go(func() error {
		defer close(jobs)
		defer close(order)
		sc := bufio.NewScanner(src)
		sc.Buffer(make([]byte, 0, 64*1024), MaxLine)
		ln := 0
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			ln++
			rec, ok := parseLine(ln, sc.Text())
			if !ok {
				continue
			}
			j := &job{rec: rec, res: make(chan Record, 1)}
			select {
			case order <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return sc.Err()
	})
	for range r.workers {
		g.Go(func() error {
			for j := range jobs {
				j.res <- r.convert(j.rec)
			}
			return nil
		})
	}
	g.Go(func() error {
		for j := range order {
			var rec Record
			select {
			case rec = <-j.res:
			case <-ctx.Done():
				return ctx.Err()
			}
			stats.Lines++
			if !rec.OK() {
				stats.Failed++
			}
			keep, err := r.keep(rec)
			if err != nil {
				return err
			}
			if !keep {
				stats.Dropped++
				continue
			}
			if err := emit(rec); err != nil {
				return err
			}
		}
		return nil
	})
	err = g.Wait()
	return stats, err
}

func (r *Runner) keep(rec Record) (bool, error) {
	if r.filter == nil {
		return true, nil
	}
	v, err := expr.Run(r.filter, rec.env())
	if err != nil {
		return false, fmt.Errorf("line %d: error evaluating %q: %w", rec.Line, r.where, err)
	}
	b, _ := v.(bool)
	return b, nil
}

func (r *Runner) convert(rec Record) Record {
	switch r.dir {
	case Encode:
		rec.Output = r.conv.Encode(rec.Input)
	case Decode:
		out, err := r.conv.Decode(rec.Input)
		if err != nil {
			rec.setErr(err)
			break
		}
		rec.Output = out
	case RoundTrip:
		enc := r.conv.Encode(rec.Input)
		out, err := r.conv.Decode(enc)
		if err != nil {
			rec.setErr(err)
			break
		}
		rec.Output = out
		if out != rec.Input {
			rec.Error = ErrRoundTrip.Error()
			buf := &strings.Builder{}
			libdiff.Render(buf, rec.Input, libdiff.DiffString(rec.Input, out), nil, nil)
			rec.Diff = buf.String()
		}
	}
	return rec
}

func parseLine(ln int, text string) (Record, bool) {
	text = strings.TrimSpace(text)
	if text == "" || text[0] == '#' {
		return Record{}, false
	}
	rec := Record{Line: ln, Input: text}
	if i := strings.IndexAny(text, " \t"); i != -1 {
		rec.Input = text[:i]
		rec.Name = strings.TrimSpace(text[i:])
	}
	return rec, true
}

var gzipMagic = []byte{0x1f, 0x8b}

// Decompress returns in, or a decompressing reader if in starts with the
// gzip magic number.
func Decompress(in io.Reader) (io.Reader, error) {
	br := bufio.NewReader(in)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if !bytes.Equal(head, gzipMagic) {
		return br, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("error reading gzip input: %w", err)
	}
	return zr, nil
}
