package glide

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS adds a debug overlay with FPS and the scroll state.
	ShowFPS bool
	// Update, if set, is called once per frame before the scroll step.
	Update func() error
}

// game adapts a Controller to ebiten.Game.
type game struct {
	ctl    *Controller
	update func() error
	last   time.Time
}

func (g *game) Update() error {
	if g.update != nil {
		if err := g.update(); err != nil {
			return err
		}
	}
	now := time.Now()
	var measured time.Duration
	if !g.last.IsZero() {
		measured = now.Sub(g.last)
	}
	g.last = now
	g.ctl.Step(frameStep(ebiten.TPS(), measured))
	return nil
}

// frameStep returns the duration of one Update. A non-positive tps
// (ebiten.SyncWithFPS) falls back to the measured time since the previous
// Update, or to 1/60 s before the first measurement.
func frameStep(tps int, measured time.Duration) time.Duration {
	if tps > 0 {
		return time.Second / time.Duration(tps)
	}
	if measured > 0 {
		return measured
	}
	return time.Second / 60
}

func (g *game) Draw(screen *ebiten.Image) {
	g.ctl.Container().Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.ctl.Container().Resize(float64(outsideWidth), float64(outsideHeight), scale)
	return outsideWidth, outsideHeight
}

// Run opens a window, starts ctl and blocks until the window closes. The
// controller is stopped before Run returns.
func Run(ctl *Controller, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		ctl.Container().Resize(float64(cfg.Width), float64(cfg.Height), ctl.Container().DeviceScaleFactor())
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if cfg.ShowFPS {
		ctl.Container().Add(NewDebugOverlay(ctl))
	}

	ctl.Start()
	defer ctl.Stop()
	return ebiten.RunGame(&game{ctl: ctl, update: cfg.Update})
}
