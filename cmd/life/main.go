//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/cli"
	"torus-life/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, exit, err := cli.Parse("life", os.Args[1:], os.Stderr, config.Environ(), nil)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if exit {
		return
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	session, err := app.NewSession(cfg.Settings, logger)
	if err != nil {
		logger.Error("Startup failed.", "error", err)
		os.Exit(1)
	}
	game := app.New(session, cfg.HUDWidth)

	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(cfg.FramesPerSecond)
	ebiten.SetWindowSize(cfg.BoardSize+cfg.HUDWidth, cfg.BoardSize)

	logger.Info("Window opening.", "resolution", cfg.Resolution, "board_size", cfg.BoardSize, "steps_per_second", cfg.StepsPerSecond)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("Game loop failed.", "error", err)
		os.Exit(1)
	}
}
