//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sparse-life/internal/camera"
	"sparse-life/internal/config"
	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/scene"
	"sparse-life/internal/ui"
	"sparse-life/pkg/sims/life"
)

const ageLevels = 16

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	scene   *scene.Scene
	cam     *camera.Camera
	painter *render.GridPainter
	grid    *core.ByteGrid
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *slog.Logger

	palette   []color.RGBA
	showAges  bool
	frame     time.Duration
	synced    uint64
	hasSynced bool

	panning      bool
	lastX, lastY int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, view config.ViewConfig, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	tps := view.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		sim:      sim,
		scene:    scene.New(),
		cam:      camera.New(float64(view.Width), float64(view.Height), view.Zoom, float64(sim.Boundary().Edge)),
		painter:  render.NewGridPainter(),
		grid:     core.NewByteGrid(1, 1),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(),
		logger:   logger,
		palette:  render.AgePalette(ageLevels),
		showAges: true,
		frame:    time.Second / time.Duration(tps),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	if cmd, ok := g.hud.Update(g.sim.Status()); ok {
		g.do(cmd)
	}
	g.overlay.Update()
	g.handlePointer()

	g.sim.Tick(g.frame)
	g.sync()
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.do(life.CmdTogglePause)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.do(life.CmdSpeedUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.do(life.CmdSlowDown)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.do(life.CmdStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.do(life.CmdReset)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		seed := time.Now().UnixNano()
		g.sim.Reset(seed)
		g.logger.Info("reset", "seed", seed)
	case inpututil.IsKeyJustPressed(ebiten.KeyA):
		g.showAges = !g.showAges
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.cam.Reset()
	}
}

func (g *Game) do(cmd life.Command) {
	g.sim.Do(cmd)
	st := g.sim.Status()
	g.logger.Debug("command", "cmd", cmd.String(), "duration_ms", st.DurationMS(), "paused", st.Paused)
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()

	drag := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if drag && g.panning {
		g.cam.Pan(float64(g.lastX-mx), float64(g.lastY-my))
	}
	g.panning = drag
	g.lastX, g.lastY = mx, my

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.ZoomAt(math.Pow(1.15, wy), float64(mx), float64(my))
	}

	if g.hud.Captures(mx, my) {
		return
	}
	wx, wy := g.cam.ScreenToWorld(float64(mx), float64(my))
	inside := mx >= 0 && my >= 0 && float64(mx) < g.cam.ViewportW && float64(my) < g.cam.ViewportH
	ptr := life.Pointer{X: wx, Y: wy, Valid: inside}
	g.sim.Paint(ptr, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// sync mirrors the committed generation into the scene when it changed.
func (g *Game) sync() {
	v := g.sim.Version()
	if g.hasSynced && v == g.synced {
		return
	}
	g.scene.Sync(g.sim.Alive())
	g.synced = v
	g.hasSynced = true
}

// Draw renders the visible part of the lattice and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)

	view := g.cam.VisibleCells()
	ox, oy := g.cam.CellOrigin(view.MinX, view.MinY)
	if g.showAges {
		render.RasterizeAges(g.grid, view, g.scene, len(g.palette))
		g.painter.Blit(screen, g.grid, g.palette, ox, oy, g.cam.Zoom)
	} else {
		render.Rasterize(g.grid, view, g.sim.Alive())
		g.painter.BlitBinary(screen, g.grid, color.White, render.Background, ox, oy, g.cam.Zoom)
	}

	g.overlay.Draw(screen, g.cam, g.sim.Boundary())
	g.hud.Draw(screen)
}

// Layout follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string, view config.ViewConfig) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(view.Width, view.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if view.TPS > 0 {
		ebiten.SetTPS(view.TPS)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
