// Command gridpath is an interactive A* shortest-path visualiser for the
// terminal. Left click places nodes (start, then end, then barriers), right
// click removes them, Space runs the search, Q cancels it, R resets the
// board, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), `
gridpath - interactive A* pathfinding visualiser.

Usage:
  gridpath [options]

Options:
`)
		fs.PrintDefaults()
	}

	configFlag := fs.String("config", "gridpath.hcl", "path to the HCL configuration file")
	sizeFlag := fs.Int("size", config.DefaultGridSize, "cells per side of the board")
	delayFlag := fs.Int("delay", 0, "milliseconds between search steps")
	soundFlag := fs.Bool("sound", false, "audible cue when a run completes")
	asciiFlag := fs.Bool("ascii", false, "monochrome glyph rendering")
	logLevelFlag := fs.String("log-level", "info", "logging level: debug, info, warn, or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", *logLevelFlag, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// The config file is optional unless the user pointed at one explicitly.
	explicitConfig := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})
	cfg, err := config.Load(*configFlag, explicitConfig)
	if err != nil {
		return err
	}

	// Flags that were set on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.GridSize = *sizeFlag
		case "delay":
			cfg.StepDelayMs = *delayFlag
		case "sound":
			cfg.Sound = *soundFlag
		case "ascii":
			cfg.ASCII = *asciiFlag
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}
	slog.Debug("configuration resolved",
		"grid_size", cfg.GridSize,
		"step_delay", cfg.StepDelay(),
		"sound", cfg.Sound,
		"ascii", cfg.ASCII)

	g, err := grid.New(cfg.GridSize)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Fini()

	var uiOpts []tui.Option
	if cfg.ASCII {
		uiOpts = append(uiOpts, tui.WithASCII())
	}
	if cfg.Sound {
		uiOpts = append(uiOpts, tui.WithSound())
	}
	ui := tui.New(screen, uiOpts...)

	sess := session.New(g,
		session.WithRenderer(ui),
		session.WithStepDelay(cfg.StepDelay()))

	ui.Run(sess)

	return nil
}
