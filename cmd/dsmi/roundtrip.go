package main

import (
	"fmt"
	"io"
	"os"

	"github.com/baoilleach/deepsmiles"
	"github.com/baoilleach/deepsmiles/libdiff"
	"github.com/scott-cotton/cli"
)

func roundTrip(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
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
	p := cfg.painter(cc.Out)
	failed := 0
	for _, smi := range smis {
		ok, err := roundTripOne(cc.Out, p, conv, smi, cfg.Quiet)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		theLog.Warn("round trip", "inputs", len(smis), "failed", failed)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundTripOne reports one round trip of smi on w. It returns false when
// the encoding does not decode.
func roundTripOne(w io.Writer, p *painter, conv *deepsmiles.Converter, smi string, quiet bool) (bool, error) {
	enc := conv.Encode(smi)
	dec, err := conv.Decode(enc)
	if err != nil {
		fmt.Fprintf(w, "%s -> %s: FAIL\n", smi, enc)
		return false, reportDecodeErr(os.Stderr, p, err)
	}
	if dec == smi {
		if !quiet {
			fmt.Fprintf(w, "%s -> %s: ok\n", smi, enc)
		}
		return true, nil
	}
	if quiet {
		return true, nil
	}
	edits := libdiff.DiffString(smi, dec)
	fmt.Fprintf(w, "%s -> %s -> %s: %d changed\n  ", smi, enc, dec, libdiff.Size(edits))
	var del, ins libdiff.Painter
	if p != nil {
		del, ins = p.del, p.ins
	}
	if err := libdiff.Render(w, smi, edits, del, ins); err != nil {
		return true, err
	}
	_, err = io.WriteString(w, "\n")
	return true, err
}
