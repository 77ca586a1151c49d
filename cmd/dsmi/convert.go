package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baoilleach/deepsmiles"
	"github.com/scott-cotton/cli"
)

func encodeArgs(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	conv, err := cfg.converter()
	if err != nil {
		return err
	}
	smis, err := inputs(cc.In, args)
	if err != nil {
		return err
	}
	for _, smi := range smis {
		fmt.Fprintln(cc.Out, conv.Encode(smi))
	}
	return nil
}

func decodeArgs(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	conv, err := cfg.converter()
	if err != nil {
		return err
	}
	dsmis, err := inputs(cc.In, args)
	if err != nil {
		return err
	}
	p := cfg.painter(os.Stderr)
	failed := 0
	for _, dsmi := range dsmis {
		smi, err := conv.Decode(dsmi)
		if err != nil {
			if err := reportDecodeErr(os.Stderr, p, err); err != nil {
				return err
			}
			failed++
			continue
		}
		fmt.Fprintln(cc.Out, smi)
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// reportDecodeErr writes the caret rendering of a decode error to w.
func reportDecodeErr(w io.Writer, p *painter, err error) error {
	var de *deepsmiles.DecodeError
	if !errors.As(err, &de) {
		return err
	}
	if p == nil {
		_, err = io.WriteString(w, de.Caret())
	} else {
		_, err = io.WriteString(w, de.CaretFunc(p.err))
	}
	return err
}
