package glide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	wheelStep   = 100.0 // px per wheel notch
	arrowStep   = 40.0  // px per arrow key press
	pageOverlap = 0.1   // fraction of the viewport kept on page up/down
)

// ScrollInput is one frame of raw scroll input in document pixels. Positive
// values scroll toward the end of the document.
type ScrollInput struct {
	Wheel float64
	Touch float64
}

// InputSource delivers raw scroll input once per frame.
type InputSource interface {
	Poll() ScrollInput
}

// EbitenInput reads wheel, keyboard and single-finger touch drags from
// ebiten. Keyboard input is reported as wheel input so it is smoothed.
type EbitenInput struct {
	viewport Viewport

	touchID     ebiten.TouchID
	touchActive bool
	touchLastY  int
	touchBuf    []ebiten.TouchID
}

// NewEbitenInput creates an input source. vp sizes page up/down jumps.
func NewEbitenInput(vp Viewport) *EbitenInput {
	return &EbitenInput{viewport: vp}
}

// Poll implements InputSource.
func (in *EbitenInput) Poll() ScrollInput {
	var out ScrollInput

	_, dy := ebiten.Wheel()
	out.Wheel -= dy * wheelStep
	out.Wheel += in.keyboard()
	out.Touch = in.touch()
	return out
}

func (in *EbitenInput) keyboard() float64 {
	var d float64
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		d += arrowStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		d -= arrowStep
	}
	page := 0.0
	if in.viewport != nil {
		_, h := in.viewport.Size()
		page = h * (1 - pageOverlap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		d += page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		d -= page
	}
	return d
}

// touch tracks the first active touch and returns its vertical drag since
// the previous frame. Dragging up scrolls down.
func (in *EbitenInput) touch() float64 {
	in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
	if in.touchActive {
		for _, id := range in.touchBuf {
			if id == in.touchID {
				_, y := ebiten.TouchPosition(id)
				d := float64(in.touchLastY - y)
				in.touchLastY = y
				return d
			}
		}
		in.touchActive = false
	}
	if len(in.touchBuf) > 0 {
		in.touchID = in.touchBuf[0]
		_, in.touchLastY = ebiten.TouchPosition(in.touchID)
		in.touchActive = true
	}
	return 0
}
