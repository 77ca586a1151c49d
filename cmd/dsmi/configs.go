package main

import (
	"fmt"
	"io"
	"os"

	"github.com/baoilleach/deepsmiles"
	"github.com/baoilleach/deepsmiles/config"
	"github.com/baoilleach/deepsmiles/format"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Rings    bool   `cli:"name=r aliases=rings desc='ring closures as ring sizes'"`
	Branches bool   `cli:"name=b aliases=branches desc='branches as pop operators'"`
	File     string `cli:"name=config desc='option document (yaml or json)'"`
	Patch    string `cli:"name=patch desc='json patch applied to the option document'"`
	Color    bool   `cli:"name=color desc='print diagnostics in color'"`

	OutFormat format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// optSet reports whether the named main option was given, and its value.
func (cfg *MainConfig) optSet(name string) (bool, bool) {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		if opt.Value == nil {
			return false, false
		}
		v, _ := (*opt.Value).(bool)
		return v, true
	}
	return false, false
}

// converter builds the converter from the option document, $DSMI_OPTIONS
// and the -r and -b flags, in increasing precedence. Options absent from
// all three default to true.
func (cfg *MainConfig) converter() (*deepsmiles.Converter, error) {
	opts, err := config.FromEnv(cfg.File, cfg.Patch).Options()
	if err != nil {
		return nil, err
	}
	for _, k := range deepsmiles.OptionNames() {
		if _, ok := opts[k]; !ok {
			opts[k] = true
		}
	}
	if v, ok := cfg.optSet("r"); ok {
		opts[deepsmiles.OptRings] = v
	}
	if v, ok := cfg.optSet("b"); ok {
		opts[deepsmiles.OptBranches] = v
	}
	return deepsmiles.FromOptions(opts)
}

type painter struct {
	err, del, ins func(string, ...any) string
}

// painter returns the colors for w, nil when w does not get color.
func (cfg *MainConfig) painter(w io.Writer) *painter {
	if _, set := cfg.optSet("color"); set {
		if !cfg.Color {
			return nil
		}
		return newPainter()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return newPainter()
	}
	return nil
}

func newPainter() *painter {
	return &painter{
		err: color.New(color.FgRed, color.Bold).SprintfFunc(),
		del: color.New(color.FgRed).SprintfFunc(),
		ins: color.New(color.FgGreen).SprintfFunc(),
	}
}

type EncodeConfig struct {
	*MainConfig
	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Decode *cli.Command
}

type RoundTripConfig struct {
	*MainConfig
	Quiet     bool `cli:"name=q desc='only report failures'"`
	RoundTrip *cli.Command
}

type BatchConfig struct {
	*MainConfig
	Direction string `cli:"name=d aliases=direction desc='encode, decode or roundtrip' default=encode"`
	Workers   int    `cli:"name=j desc='number of workers (default GOMAXPROCS)'"`
	Where     string `cli:"name=where desc='keep records matching expression'"`
	Stats     bool   `cli:"name=stats desc='log counts when done'"`
	Batch     *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr  string `cli:"name=addr desc='HTTP listen address (default $DSMI_ADDR or localhost:9124)'"`
	Gops  bool   `cli:"name=gops desc='start a gops agent'"`
	Serve *cli.Command
}
