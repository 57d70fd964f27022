//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"sparse-life/internal/config"
	"sparse-life/internal/core"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("app: GUI support requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder; Run reports ErrNoGUI.
func New(core.Sim, config.ViewConfig, *slog.Logger) *Game { return &Game{} }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run reports ErrNoGUI.
func Run(*Game, string, config.ViewConfig) error { return ErrNoGUI }
