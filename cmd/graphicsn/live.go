package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/demo"
	"github.com/michaeljayl/graphicsn/internal/gui"
	"github.com/michaeljayl/graphicsn/internal/viz"
)

func viewerOptions(cfg *config.Config, log *slog.Logger) viz.Options {
	opts := viz.Options{
		FPS:   cfg.Viewer.FPS,
		Theme: cfg.Viewer.Theme,
		Log:   log,
	}
	if watch {
		opts.Watch = configFile
	}
	return opts
}

// runMenu opens the terminal launcher when no subcommand is given.
func runMenu(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	return viz.Run(viz.NewMenu(cfg, viewerOptions(cfg, log)))
}

// runDemo starts the named demo in the terminal, or in a window with --gui.
func runDemo(name string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if watch && configFile == "" {
			return fmt.Errorf("--watch needs --config")
		}
		log, closeLog, err := newLogger(!useGUI)
		if err != nil {
			return err
		}
		defer closeLog()

		cfg, err := resolveConfig(cmd, name)
		if err != nil {
			return err
		}
		log.Info("starting", "demo", name, "gui", useGUI)

		if useGUI {
			d, err := newDemo(name, cfg, log)
			if err != nil {
				return err
			}
			return gui.Run(d, gui.Options{FPS: 2 * cfg.Viewer.FPS, Log: log})
		}

		m, err := viz.Launch(name, cfg, viewerOptions(cfg, log))
		if err != nil {
			return err
		}
		return viz.Run(m)
	}
}

func newDemo(name string, cfg *config.Config, log *slog.Logger) (demo.Demo, error) {
	switch name {
	case "klein":
		k, err := demo.NewKlein(cfg.Klein, log)
		if err != nil {
			return nil, err
		}
		return k, nil
	case "strings":
		s, err := demo.NewStrings(cfg.Strings, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown demo %q (want klein or strings)", name)
}
