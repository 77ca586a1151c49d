package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baoilleach/deepsmiles/batch"
	"github.com/baoilleach/deepsmiles/format"
	"github.com/scott-cotton/cli"
)

func runBatch(cfg *BatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Batch.Parse(cc, args)
	if err != nil {
		return err
	}
	dir, err := batch.ParseDirection(cfg.Direction)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	conv, err := cfg.converter()
	if err != nil {
		return err
	}
	runner, err := batch.New(conv,
		batch.WithDirection(dir),
		batch.Workers(cfg.Workers),
		batch.Where(cfg.Where))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	out := format.NewWriter(cc.Out, cfg.OutFormat)
	emit := func(rec batch.Record) error {
		return out.Write(rec)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var total batch.Stats
	for _, arg := range args {
		stats, err := batchFile(ctx, runner, cc.In, arg, emit)
		total.Lines += stats.Lines
		total.Failed += stats.Failed
		total.Dropped += stats.Dropped
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}
	if cfg.Stats {
		theLog.Info("batch", "direction", dir, "lines", total.Lines,
			"failed", total.Failed, "dropped", total.Dropped, "written", out.Count())
	}
	return nil
}

func batchFile(ctx context.Context, runner *batch.Runner, stdin io.Reader, path string, emit func(batch.Record) error) (batch.Stats, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return batch.Stats{}, err
		}
		defer f.Close()
		r = f
	}
	return runner.Run(ctx, r, emit)
}
