package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michaeljayl/graphicsn/internal/config"
)

// resolveConfig layers the settings: defaults, then --config, then
// --preset for the named demo, then any flag set on the command line. An
// empty demoName keeps the demo the config file selects.
func resolveConfig(cmd *cobra.Command, demoName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if demoName == "" {
		demoName = cfg.Demo
	}
	cfg.Demo = demoName

	if preset != "" {
		p := config.GetPreset(demoName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(demoName))
		}
		switch demoName {
		case "klein":
			cfg.Klein = p.Klein
		case "strings":
			cfg.Strings = p.Strings
		}
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}

	switch demoName {
	case "klein":
		k := &cfg.Klein
		if changed("v") {
			k.V = kleinV
		}
		if changed("color") {
			k.Color = kleinColor
		}
		if changed("opacity") {
			k.Opacity = opacity
		}
		if changed("ball") {
			k.ShowBall = showBall
		}
		if changed("speed") {
			k.Speed = speed
		}
	case "strings":
		s := &cfg.Strings
		if changed("n") {
			s.N = depth
		}
		if changed("base") {
			s.Base = base
			s.Digits = nil
		}
		if changed("model") {
			s.Model = model
		}
		if changed("color") {
			s.Color = strColor
		}
		if changed("one-color") {
			s.OneColor = oneColor
		}
		if changed("digits") {
			on, err := parseDigits(digits, s.Base)
			if err != nil {
				return nil, err
			}
			s.Digits = on
		}
	}

	if frameRate > 0 {
		cfg.Viewer.FPS = frameRate
	}
	if theme != "" {
		cfg.Viewer.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDigits turns "0,2,3" into per-digit toggles for base.
func parseDigits(list string, base int) ([]bool, error) {
	if base < config.MinBase || base > config.MaxBase {
		return nil, &config.InvalidParameterError{Field: "base", Value: base, Reason: fmt.Sprintf("want %d..%d", config.MinBase, config.MaxBase)}
	}
	on := make([]bool, base)
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.Atoi(field)
		if err != nil {
			return nil, &config.InvalidParameterError{Field: "digit", Value: field, Reason: "not an integer"}
		}
		if d < 0 || d >= base {
			return nil, &config.InvalidParameterError{Field: "digit", Value: d, Reason: fmt.Sprintf("want 0..%d", base-1)}
		}
		on[d] = true
	}
	return on, nil
}
