// Package demo holds the controllers behind the two interactive scenes.
//
// A controller owns its scene graph and everything animating it. Hosts call
// Tick once per frame and draw whatever Scene returns; settings changes go
// through Apply, which either takes effect completely or not at all.
package demo

import (
	"io"
	"log/slog"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

// Demo is what a host needs to drive and draw a scene.
type Demo interface {
	Name() string
	Tick(dt float64)
	Scene() (*scene.Graph, scene.NodeID)
	// CameraDistance is how far from the origin the default camera sits.
	CameraDistance() float64
	// Key applies a single-key settings change.
	Key(k string) (handled bool, err error)
	// Reload applies the demo's part of a full config.
	Reload(cfg *config.Config) error
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return log
}
