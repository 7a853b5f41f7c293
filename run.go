package canvasflow

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size. Zero uses the scene size.
	Width, Height int
	// ShowFPS draws FPS, TPS and the settle state in the top-left corner.
	ShowFPS bool
	// ExitWhenScriptDone closes the window once an attached TestRunner
	// has finished.
	ExitWhenScriptDone bool
}

// game adapts a Scene and its Engine to ebiten.Game.
type game struct {
	scene  *Scene
	engine *Engine
	cfg    RunConfig

	fpsText    string
	sinceStats time.Duration
}

// Run opens a window and drives scene and engine until the window is
// closed. Each frame processes input, ticks the settle animation by one
// update interval and composites the scene.
func Run(scene *Scene, engine *Engine, cfg RunConfig) error {
	if scene == nil || engine == nil {
		return fmt.Errorf("canvasflow: Run needs a scene and an engine")
	}
	w, h := cfg.Width, cfg.Height
	if w == 0 || h == 0 {
		sw, sh := scene.Size()
		w, h = int(sw), int(sh)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	return ebiten.RunGame(&game{scene: scene, engine: engine, cfg: cfg})
}

func (g *game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.scene.Update()
	g.engine.Tick(dt)

	if g.cfg.ShowFPS {
		g.sinceStats += dt
		if g.sinceStats >= 500*time.Millisecond || g.fpsText == "" {
			g.sinceStats = 0
			g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s #%d",
				ebiten.ActualFPS(), ebiten.ActualTPS(), g.engine.State(), g.engine.CurrentIndex())
		}
	}

	if g.cfg.ExitWhenScriptDone && g.scene.testRunner != nil &&
		g.scene.testRunner.Done() && g.engine.State() == Idle {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.DrawTo(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, g.fpsText)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.scene.Size()
	return int(w), int(h)
}
