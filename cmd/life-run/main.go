// Command life-run advances a board without a window and prints the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/cli"
	"torus-life/internal/config"
	"torus-life/internal/render"
	"torus-life/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:], config.Environ()); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runFlags struct {
	generations int
	logEvery    int
	quiet       bool
}

func (r *runFlags) bind(fs *flag.FlagSet) {
	fs.IntVar(&r.generations, "generations", 100, "number of generations to compute")
	fs.IntVar(&r.logEvery, "log-every", 10, "log population every N generations (0 disables)")
	fs.BoolVar(&r.quiet, "quiet", false, "do not print the final board")
}

// run encapsulates the runner so it can be tested without os.Exit.
func run(ctx context.Context, outW, logW io.Writer, args []string, env map[string]string) error {
	var rf runFlags
	cfg, exit, err := cli.Parse("life-run", args, logW, env, rf.bind)
	if err != nil {
		return err
	}
	if exit {
		return nil
	}
	if rf.generations < 0 {
		return &cli.ExitError{Code: 2, Message: "generations must not be negative"}
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	session, err := app.NewSession(cfg.Settings, logger)
	if err != nil {
		return err
	}
	engine := session.Engine()
	logger.Info("Run started.", "resolution", engine.Resolution(), "generations", rf.generations, "population", engine.Population())

	for i := 0; i < rf.generations; i++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("Run interrupted.", "generation", engine.Generation())
			return fmt.Errorf("run interrupted at generation %d: %w", engine.Generation(), err)
		}
		session.StepOnce()
		if rf.logEvery > 0 && engine.Generation()%rf.logEvery == 0 {
			logger.Info("Generation computed.", "generation", engine.Generation(), "population", engine.Population())
		}
	}
	logger.Info("Run finished.", "generation", engine.Generation(), "population", engine.Population())

	if rf.quiet {
		return nil
	}
	if err := render.WriteText(outW, session.View()); err != nil {
		return fmt.Errorf("write board: %w", err)
	}
	_, err = fmt.Fprintln(outW, ui.StatusLine(session.Parameters()))
	return err
}
