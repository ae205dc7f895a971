//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"ndca/internal/classify"
	"ndca/internal/core"
	"ndca/internal/render"
	"ndca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type layered interface {
	Layers() int
	Layer() int
	SetLayer(int)
}

type classifier interface {
	Classify() classify.Result
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.NewColors(color.White, color.Black)),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedStep(cfg.Rate),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if l, ok := g.sim.(layered); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
			l.SetLayer(l.Layer() - 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
			l.SetLayer(l.Layer() + 1)
		}
	}
	if c, ok := g.sim.(classifier); ok && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		c.Classify()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.clock.SetRate(g.clock.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.clock.SetRate(max(1, g.clock.Rate()/2))
	}

	due := g.clock.Due(time.Now())
	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for i := 0; i < due; i++ {
			g.sim.Step()
		}
	}

	g.hud.Update(g.status())
	return nil
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s @ %d gen/s", state, g.clock.Rate())
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.sim.Size(), g.scale, g.hud.Width())
}
