// Package termview is a terminal front-end built on gocui.
package termview

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"sparse-life/internal/core"
	"sparse-life/internal/render"
	"sparse-life/internal/scene"
	"sparse-life/pkg/sims/life"
)

const (
	fieldView  = "field"
	statusView = "status"
	headerView = "header"
	helpView   = "help"

	leftColumnWidth = 28
	panStep         = 8
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Terminal drives a simulation from a gocui main loop. A ticker goroutine
// feeds wall-clock deltas to Tick; the scene and views are only touched from
// the main loop.
type Terminal struct {
	sim    core.Sim
	g      *gocui.Gui
	k      []keyBinding
	logger *slog.Logger

	scene  *scene.Scene
	grid   *core.ByteGrid
	synced uint64
	fresh  bool

	// Lattice coordinate at the centre of the field view.
	cx, cy int

	frame time.Duration
	clock *core.Clock
	quit  chan struct{}
}

// New creates the terminal UI. frame is the redraw interval.
func New(sim core.Sim, frame time.Duration, logger *slog.Logger) (*Terminal, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if frame <= 0 {
		frame = 50 * time.Millisecond
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("creating terminal ui: %w", err)
	}
	g.Mouse = true

	t := &Terminal{
		sim:    sim,
		g:      g,
		logger: logger,
		scene:  scene.New(),
		grid:   core.NewByteGrid(1, 1),
		fresh:  true,
		frame:  frame,
		clock:  core.NewClock(time.Second),
		quit:   make(chan struct{}),
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", t.command(life.CmdTogglePause), ""},
		{'+', "+", "Faster", t.command(life.CmdSpeedUp), ""},
		{'=', "", "", t.command(life.CmdSpeedUp), ""},
		{'-', "-", "Slower", t.command(life.CmdSlowDown), ""},
		{'n', "N", "Step", t.command(life.CmdStep), ""},
		{'r', "R", "Reset", t.command(life.CmdReset), ""},
		{'s', "S", "New seed", t.cmdNewSeed, ""},
		{'c', "C", "Centre", t.cmdCentre, ""},
		{gocui.KeyArrowLeft, "ARROWS", "Pan", t.pan(-panStep, 0), ""},
		{gocui.KeyArrowRight, "", "", t.pan(panStep, 0), ""},
		{gocui.KeyArrowUp, "", "", t.pan(0, -panStep), ""},
		{gocui.KeyArrowDown, "", "", t.pan(0, panStep), ""},
		{gocui.MouseLeft, "MOUSE", "Spawn cell", t.cmdMouseClick, fieldView},
	}
	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return t, nil
}

func (t *Terminal) initKeyBindings() error {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("binding %v: %w", kb.key, err)
		}
	}
	return nil
}

// Run blocks until the user quits.
func (t *Terminal) Run() error {
	defer t.g.Close()
	go t.tick()
	err := t.g.MainLoop()
	close(t.quit)
	if err != nil && !errors.Is(err, gocui.ErrQuit) {
		return fmt.Errorf("terminal main loop: %w", err)
	}
	return nil
}

func (t *Terminal) tick() {
	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			t.sim.Tick(t.clock.Delta())
			t.g.Update(t.refresh)
		}
	}
}

// refresh redraws the status and field views. It runs on the main loop.
func (t *Terminal) refresh(g *gocui.Gui) error {
	if v := t.sim.Version(); t.fresh || v != t.synced {
		t.scene.Sync(t.sim.Snapshot().All())
		t.synced = v
		t.fresh = false
	}
	if v, err := g.View(statusView); err == nil {
		t.renderStatus(v)
	}
	if v, err := g.View(fieldView); err == nil {
		t.renderField(v)
	}
	return nil
}

func (t *Terminal) renderField(v *gocui.View) {
	v.Clear()
	w, h := v.Size()
	if w <= 0 || h <= 0 {
		return
	}
	render.RasterizeAges(t.grid, fieldRect(t.cx, t.cy, w, h), t.scene, len(ageFillers))
	_, _ = fmt.Fprint(v, renderField(t.grid, ageFillers))
}

func (t *Terminal) renderStatus(v *gocui.View) {
	st := t.sim.Status()
	v.Clear()
	mode := aurora.Colorize("running", aurora.CyanFg).String()
	if st.Paused {
		mode = aurora.Colorize("paused", aurora.BlueFg).String()
	}
	for _, line := range strings.Split(st.String(), "\n") {
		name, value, _ := strings.Cut(line, ": ")
		_, _ = fmt.Fprintln(v, renderProp(name, "%s", value))
	}
	_, _ = fmt.Fprintln(v, renderProp("Pending", "%d", st.Pending))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%s", mode))
	_, _ = fmt.Fprintln(v, renderProp("Centre", "%d, %d", t.cx, t.cy))
	_, _ = fmt.Fprintln(v, " "+progressBar(st.Progress, leftColumnWidth-5))
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *Terminal) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(headerView, -1, -1, maxX, 1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		_, _ = fmt.Fprintf(v, " %s (seed %d)", t.sim.Name(), t.sim.Seed())
	}

	if v, err := g.SetView(statusView, 0, 2, leftColumnWidth, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
	}

	if v, err := g.SetView(fieldView, leftColumnWidth+1, 2, maxX-1, maxY-4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Lattice"
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.helpLine())
	}
	return t.refresh(g)
}

func (t *Terminal) helpLine() string {
	b := bytes.Buffer{}
	b.WriteString("KEYS: ")
	first := true
	for _, k := range t.k {
		if k.name == "" {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(aurora.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (t *Terminal) command(cmd life.Command) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.sim.Do(cmd)
		t.logger.Debug("command", "cmd", cmd.String())
		return nil
	}
}

func (t *Terminal) pan(dx, dy int) func(*gocui.View) error {
	return func(*gocui.View) error {
		t.cx += dx
		t.cy += dy
		return nil
	}
}

func (t *Terminal) cmdCentre(*gocui.View) error {
	t.cx, t.cy = 0, 0
	return nil
}

func (t *Terminal) cmdNewSeed(*gocui.View) error {
	seed := time.Now().UnixNano()
	t.sim.Reset(seed)
	t.logger.Debug("reset", "seed", seed)
	if v, err := t.g.View(headerView); err == nil {
		v.Clear()
		_, _ = fmt.Fprintf(v, " %s (seed %d)", t.sim.Name(), seed)
	}
	return nil
}

func (t *Terminal) cmdQuit(*gocui.View) error {
	return gocui.ErrQuit
}

func (t *Terminal) cmdMouseClick(v *gocui.View) error {
	x, y := v.Cursor()
	w, h := v.Size()
	r := fieldRect(t.cx, t.cy, w, h)
	t.sim.Paint(life.Pointer{X: float64(r.MinX + x), Y: float64(r.MinY + y), Valid: true}, true)
	return nil
}
