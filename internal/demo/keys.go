package demo

import (
	"fmt"
	"math"

	"github.com/michaeljayl/graphicsn/internal/config"
)

// Settings keys shared by the hosts. Key reports whether k is a settings
// key; the error is the rejected change, if any.

const (
	vStep       = 0.1
	opacityStep = 0.25
	speedFactor = 1.25
)

func round1(x float64) float64 { return math.Round(x*10) / 10 }

// Key handles b (ball), [ and ] (walker v), o (opacity) and s/S (speed).
func (k *Klein) Key(key string) (bool, error) {
	cfg := k.Config()
	switch key {
	case "b":
		cfg.ShowBall = !cfg.ShowBall
	case "]":
		cfg.V = round1(cfg.V + vStep)
	case "[":
		cfg.V = round1(cfg.V - vStep)
	case "o":
		cfg.Opacity -= opacityStep
		if cfg.Opacity < 0 {
			cfg.Opacity = 1
		}
	case "s":
		cfg.Speed *= speedFactor
	case "S":
		cfg.Speed /= speedFactor
	default:
		return false, nil
	}
	return true, k.Apply(cfg)
}

// Key handles n/N (depth), b/B (base), m/M (model), c (one color) and the
// digits 0-9, which toggle that digit. Changing the base re-enables every
// digit.
func (s *Strings) Key(key string) (bool, error) {
	cfg := s.Config()
	switch {
	case key == "n":
		cfg.N++
	case key == "N":
		cfg.N--
	case key == "b":
		cfg.Base++
		cfg.Digits = nil
	case key == "B":
		cfg.Base--
		cfg.Digits = nil
	case key == "m":
		cfg.Model = shiftModel(cfg.Model, 1)
	case key == "M":
		cfg.Model = shiftModel(cfg.Model, -1)
	case key == "c":
		cfg.OneColor = !cfg.OneColor
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		i := int(key[0] - '0')
		if i >= cfg.Base {
			return true, &config.InvalidParameterError{
				Field:  "digit",
				Value:  i,
				Reason: fmt.Sprintf("base %d has digits 0..%d", cfg.Base, cfg.Base-1),
			}
		}
		cfg = cfg.WithDigit(i, !cfg.DigitEnabled(i))
	default:
		return false, nil
	}
	return true, s.Apply(cfg)
}

func shiftModel(name string, by int) string {
	names := config.ModelNames
	for i, n := range names {
		if n == name {
			return names[(i+by+len(names))%len(names)]
		}
	}
	return names[0]
}
