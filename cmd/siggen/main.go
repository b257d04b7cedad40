// Command siggen synthesizes a periodic signal, processes it in chunks and
// prints its statistics.
//
// Usage:
//
//	siggen [flags]
//
// Examples:
//
//	siggen --kind sine --frequency 5 --samples 2000 --end 2
//	siggen --kind square --process lowpass --cutoff 20 --plain
//	siggen --process bandpass --low 2 --high 8 --chunk 250 --spectrum
//
// Press q or ctrl+c while the progress bar is shown to cancel.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	ossignal "os/signal"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/algo-siggen/dsp/chunk"
	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/internal/logging"
	"go.uber.org/zap"
)

var version = "0.1.0"

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("siggen"),
		kong.Description("Periodic signal generator with chunked filtering"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if cliArgs.Version {
		printVersion(version)
		return
	}

	if err := run(cliArgs); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}

func run(cliArgs *CLI) error {
	logger, err := logging.New(
		logging.WithLevel(cliArgs.LogLevel),
		logging.WithFields(map[string]any{"cmd": "siggen"}),
	)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	req, err := cliArgs.request()
	if err != nil {
		return err
	}

	ctx, stop := ossignal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var res chunk.Result
	if cliArgs.Plain {
		res, err = runPlain(ctx, cliArgs, logger, req)
	} else {
		res, err = runInteractive(ctx, cancel, cliArgs, logger, req)
	}
	if errors.Is(err, core.ErrCancelled) {
		printWarning("cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	return printReport(os.Stdout, cliArgs, req, res)
}

func runPlain(ctx context.Context, cliArgs *CLI, logger *zap.Logger, req chunk.Request) (chunk.Result, error) {
	obs := chunk.ObserverFuncs{
		OnProgress: func(p int) { fmt.Fprintf(os.Stderr, "%s %3d%%\n", KeyStyle.Render("progress"), p) },
	}
	d := chunk.New(
		chunk.WithProcessorOptions(core.WithBlockSize(cliArgs.Chunk)),
		chunk.WithLogger(logger),
		chunk.WithObserver(obs),
	)
	return d.Run(ctx, req)
}

func runInteractive(ctx context.Context, cancel context.CancelFunc, cliArgs *CLI, logger *zap.Logger, req chunk.Request) (chunk.Result, error) {
	m := newModel(cliArgs.title(), cancel)
	d := chunk.New(
		chunk.WithProcessorOptions(core.WithBlockSize(cliArgs.Chunk)),
		chunk.WithLogger(logger),
		chunk.WithObserver(m.observer()),
	)

	job := d.Start(ctx, req)
	if _, err := tea.NewProgram(m, tea.WithOutput(os.Stderr)).Run(); err != nil {
		cancel()
		_, _ = job.Wait()
		return chunk.Result{}, fmt.Errorf("ui: %w", err)
	}
	return job.Wait()
}
