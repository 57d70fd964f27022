//go:build !ebiten

package ui

import "sparse-life/pkg/sims/life"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD() *HUD { return nil }

// Update never reports a click in the headless build.
func (h *HUD) Update(life.Status) (life.Command, bool) { return 0, false }

// Captures always reports false in the headless build.
func (h *HUD) Captures(int, int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
