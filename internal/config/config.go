package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultKleinColor   = "#1562c9"
	DefaultKleinV       = 0.5
	DefaultSegments     = 200
	DefaultSpeed        = 0.07
	DefaultStringsColor = "#3366ff"
	DefaultModel        = "keyboard"
	DefaultFPS          = 30
	DefaultTheme        = "cyberpunk"

	MinN    = 1
	MaxN    = 4
	MinBase = 2
	MaxBase = 10
	MaxV    = 0.9
)

type Config struct {
	Demo    string  `yaml:"demo" toml:"demo"`
	Klein   Klein   `yaml:"klein" toml:"klein"`
	Strings Strings `yaml:"strings" toml:"strings"`
	Viewer  Viewer  `yaml:"viewer" toml:"viewer"`
}

// Klein is the settings surface of the Klein bottle demo.
type Klein struct {
	Color     string  `yaml:"color" toml:"color"`
	Opacity   float64 `yaml:"opacity" toml:"opacity"`
	ShowBall  bool    `yaml:"show_ball" toml:"show_ball"`
	V         float64 `yaml:"v" toml:"v"`
	USegments int     `yaml:"u_segments" toml:"u_segments"`
	VSegments int     `yaml:"v_segments" toml:"v_segments"`
	Speed     float64 `yaml:"speed" toml:"speed"`
}

// Strings is the settings surface of the string system demo. Digits[i]
// enables digit i; entries past len(Digits) count as enabled.
type Strings struct {
	N        int    `yaml:"n" toml:"n"`
	Base     int    `yaml:"base" toml:"base"`
	Model    string `yaml:"model" toml:"model"`
	Color    string `yaml:"color" toml:"color"`
	OneColor bool   `yaml:"one_color" toml:"one_color"`
	Digits   []bool `yaml:"digits,omitempty" toml:"digits,omitempty"`
}

type Viewer struct {
	FPS   int    `yaml:"fps" toml:"fps"`
	Theme string `yaml:"theme" toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Demo:    "strings",
		Klein:   DefaultKlein(),
		Strings: DefaultStrings(),
		Viewer:  Viewer{FPS: DefaultFPS, Theme: DefaultTheme},
	}
}

func DefaultKlein() Klein {
	return Klein{
		Color:     DefaultKleinColor,
		Opacity:   1,
		V:         DefaultKleinV,
		USegments: DefaultSegments,
		VSegments: DefaultSegments,
		Speed:     DefaultSpeed,
	}
}

func DefaultStrings() Strings {
	return Strings{
		N:     1,
		Base:  2,
		Model: DefaultModel,
		Color: DefaultStringsColor,
	}
}

// Include returns the enabled digits of [0, Base) in ascending order.
func (s Strings) Include() []int {
	out := make([]int, 0, s.Base)
	for i := 0; i < s.Base; i++ {
		if s.DigitEnabled(i) {
			out = append(out, i)
		}
	}
	return out
}

// DigitEnabled reports whether digit i is switched on.
func (s Strings) DigitEnabled(i int) bool {
	if i < len(s.Digits) {
		return s.Digits[i]
	}
	return true
}

// WithDigit returns a copy of s with digit i set to on.
func (s Strings) WithDigit(i int, on bool) Strings {
	n := s.Base
	if i >= n {
		n = i + 1
	}
	digits := make([]bool, n)
	for j := range digits {
		digits[j] = s.DigitEnabled(j)
	}
	digits[i] = on
	s.Digits = digits
	return s
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch format(path) {
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func format(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}
