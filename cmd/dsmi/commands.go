package main

import (
	"github.com/baoilleach/deepsmiles/format"
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{OutFormat: format.TextFormat}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dsmi").
		WithSynopsis("dsmi [opts] command [opts]").
		WithDescription("dsmi converts between SMILES and DeepSMILES.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dsmiMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			RoundTripCommand(cfg),
			BatchCommand(cfg),
			ServeCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [smiles...]").
		WithDescription("encode SMILES arguments, or lines of stdin, as DeepSMILES").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeArgs(cfg, cc, args)
		})
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Decode, "decode").
		WithAliases("d", "dec").
		WithSynopsis("decode [deepsmiles...]").
		WithDescription("decode DeepSMILES arguments, or lines of stdin, to SMILES").
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeArgs(cfg, cc, args)
		})
}

func RoundTripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundTripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.RoundTrip, "roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [-q] [smiles...]").
		WithDescription("encode then decode SMILES, showing how the result differs").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return roundTrip(cfg, cc, args)
		})
}

func BatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BatchConfig{MainConfig: mainCfg, Direction: "encode"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Batch, "batch").
		WithAliases("b").
		WithSynopsis("batch [-d direction] [-j n] [-where expr] [files]").
		WithDescription("convert files of one string per line, optionally gzipped").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runBatch(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>] [-gops]").
		WithDescription("serve encode and decode over HTTP").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
