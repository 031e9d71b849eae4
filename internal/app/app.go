//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Generation rates selectable with the number keys.
const (
	slowTPS   = 5
	normalTPS = 10
	fastTPS   = 60
)

// board is the extended control surface a simulation may offer beyond
// core.Sim. The life sim implements all of it.
type board interface {
	Clear()
	Randomize(p float64)
	Generation() int
	Population() int
}

// Game adapts a core simulation to the ebiten.Game interface and owns the
// driver-loop state: pause flag, one-shot step request, and generation
// pacing.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	stepOnce bool
	seed     int64
	density  float64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(),
		pacer:    core.NewFixedStep(normalTPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		seed:     cfg.Seed,
		density:  cfg.Density,
	}
}

// Update handles keyboard input and advances the simulation when the pacer
// fires or a one-shot step is pending.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if b, ok := g.sim.(board); ok {
			b.Clear()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if b, ok := g.sim.(board); ok {
			b.Randomize(g.density)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.sim.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.pacer.SetTPS(slowTPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.pacer.SetTPS(normalTPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		g.pacer.SetTPS(fastTPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	// Poll the pacer every frame so the accumulator drains while paused and
	// unpausing does not replay the backlog.
	fired := g.pacer.ShouldStep()
	shouldStep := g.stepOnce || (!g.paused && fired)
	if shouldStep {
		g.sim.Step()
		g.stepOnce = false
	}
	return nil
}

// Draw renders the current simulation state and the HUD readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.status())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

func (g *Game) status() ui.Status {
	st := ui.Status{TPS: g.pacer.TPS(), Paused: g.paused}
	if b, ok := g.sim.(board); ok {
		st.Generation = b.Generation()
		st.Population = b.Population()
	}
	return st
}
