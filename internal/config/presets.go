package config

import "sort"

var Presets = map[string]map[string]*Config{
	"klein": {
		"walk": {
			Demo:  "klein",
			Klein: Klein{Color: DefaultKleinColor, Opacity: 1, ShowBall: true, V: 0.5, USegments: 200, VSegments: 200, Speed: 0.07},
		},
		"ghost": {
			Demo:  "klein",
			Klein: Klein{Color: "#88ccff", Opacity: 0.35, ShowBall: true, V: 0.2, USegments: 120, VSegments: 120, Speed: 0.1},
		},
		"coarse": {
			Demo:  "klein",
			Klein: Klein{Color: DefaultKleinColor, Opacity: 1, V: 0.5, USegments: 40, VSegments: 24, Speed: 0.07},
		},
	},
	"strings": {
		"binary": {
			Demo:    "strings",
			Strings: Strings{N: 4, Base: 2, Model: "keyboard", Color: DefaultStringsColor},
		},
		"cantor": {
			Demo:    "strings",
			Strings: Strings{N: 4, Base: 3, Model: "keyboard", Color: DefaultStringsColor, Digits: []bool{true, false, true}},
		},
		"staircase": {
			Demo:    "strings",
			Strings: Strings{N: 3, Base: 4, Model: "keyboard lofted", Color: DefaultStringsColor},
		},
		"rings": {
			Demo:    "strings",
			Strings: Strings{N: 3, Base: 6, Model: "disks", Color: DefaultStringsColor},
		},
		"orbits": {
			Demo:    "strings",
			Strings: Strings{N: 3, Base: 6, Model: "spheres", Color: "#ffaa33", OneColor: true},
		},
		"carpet": {
			Demo:    "strings",
			Strings: Strings{N: 3, Base: 9, Model: "squares", Color: DefaultStringsColor, Digits: []bool{true, true, true, true, false, true, true, true, true}},
		},
	},
}

// GetPreset returns a copy of the named preset with defaults filled in for
// the other demo, or nil if it does not exist.
func GetPreset(demo, preset string) *Config {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	p, ok := demoPresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Demo = p.Demo
	switch demo {
	case "klein":
		cfg.Klein = p.Klein
	case "strings":
		cfg.Strings = p.Strings
		cfg.Strings.Digits = append([]bool(nil), p.Strings.Digits...)
	}
	return cfg
}

func ListPresets(demo string) []string {
	demoPresets, ok := Presets[demo]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(demoPresets))
	for name := range demoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
