package glide

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// tickStats holds per-tick timing and scroll metrics.
// Only populated when Config.Debug is true.
type tickStats struct {
	total    time.Duration
	bindings int
	state    ScrollState
	mode     ResponsivenessState
}

// debugLog prints tick stats to stderr.
func (c *Controller) debugLog(stats tickStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[glide] tick: %v | bindings: %d | mode: %v\n",
		stats.total, stats.bindings, stats.mode)
	_, _ = fmt.Fprintf(os.Stderr,
		"[glide] real: %.1f | virtual: %.1f | velocity: %.1f | bounds: [%.0f, %.0f]\n",
		stats.state.RealPosition, stats.state.VirtualPosition, stats.state.Velocity,
		stats.state.Bounds.Min, stats.state.Bounds.Max)
}

// SetDebugMode enables or disables per-tick stats on stderr.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// NewDebugOverlay creates a fixed Element that shows FPS, TPS and the scroll
// state in the top-left corner. It refreshes every ~0.5 seconds. Add it to
// the controller's container.
func NewDebugOverlay(c *Controller) *Element {
	// 180x64 fits four lines of ebitenutil.DebugPrint.
	img := ebiten.NewImage(180, 64)

	el := NewFixedElement("debug_overlay", Rect{X: 0, Y: 0, Width: 180, Height: 64})
	el.Image = img

	var sinceRedraw float64
	el.OnUpdate = func(dt float64) {
		sinceRedraw += dt
		if sinceRedraw < 0.5 {
			return
		}
		sinceRedraw = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		s := c.State()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f TPS: %.1f\nY: %.0f -> %.0f\nV: %.0f px/s\n%v",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			s.VirtualPosition, s.RealPosition, s.Velocity, c.Mode()))
	}
	return el
}
