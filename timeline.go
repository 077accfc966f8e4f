package glide

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Keyframe is one stop on a Track. Ease shapes the segment that ends at this
// keyframe; nil is linear.
type Keyframe struct {
	At    float64
	Value float64
	Ease  ease.TweenFunc
}

// Track maps timeline progress to one property. Values are written to Target
// or passed to Set, whichever is non-nil.
type Track struct {
	Target *float64
	Set    func(float64)
	Keys   []Keyframe
}

// ValueAt returns the track value at progress p. Progress before the first
// keyframe holds the first value; after the last, the last value.
func (tr Track) ValueAt(p float64) float64 {
	keys := tr.Keys
	if len(keys) == 0 {
		return 0
	}
	if p <= keys[0].At {
		return keys[0].Value
	}
	for i := 1; i < len(keys); i++ {
		a, b := keys[i-1], keys[i]
		if p > b.At {
			continue
		}
		span := b.At - a.At
		if span <= 0 {
			return b.Value
		}
		t := EaseProgress(b.Ease, (p-a.At)/span)
		return a.Value + (b.Value-a.Value)*t
	}
	return keys[len(keys)-1].Value
}

func (tr Track) validate() error {
	if tr.Target == nil && tr.Set == nil {
		return fmt.Errorf("track has no target")
	}
	if len(tr.Keys) == 0 {
		return fmt.Errorf("track has no keyframes")
	}
	prev := 0.0
	for i, k := range tr.Keys {
		if k.At < 0 || k.At > 1 {
			return fmt.Errorf("keyframe %d at %g is outside [0, 1]", i, k.At)
		}
		if k.At < prev {
			return fmt.Errorf("keyframe %d at %g is out of order", i, k.At)
		}
		prev = k.At
	}
	return nil
}

// Timeline is an ordered set of tracks driven by a single normalized
// progress. Nothing advances it on its own; a binding seeks it.
type Timeline struct {
	Tracks []Track
	// OnProgress, if set, is called after the tracks are applied.
	OnProgress func(p float64)

	progress float64
	seeked   bool
}

// NewTimeline creates a timeline from tracks.
func NewTimeline(tracks ...Track) *Timeline {
	return &Timeline{Tracks: tracks}
}

// Seek applies progress p (clamped to [0, 1]) to every track.
func (tl *Timeline) Seek(p float64) {
	p = clamp01(p)
	tl.progress = p
	tl.seeked = true
	for _, tr := range tl.Tracks {
		v := tr.ValueAt(p)
		if tr.Target != nil {
			*tr.Target = v
		}
		if tr.Set != nil {
			tr.Set(v)
		}
	}
	if tl.OnProgress != nil {
		tl.OnProgress(p)
	}
}

// Progress returns the last applied progress.
func (tl *Timeline) Progress() float64 {
	return tl.progress
}

func (tl *Timeline) validate() error {
	if len(tl.Tracks) == 0 && tl.OnProgress == nil {
		return fmt.Errorf("timeline is empty")
	}
	for i, tr := range tl.Tracks {
		if err := tr.validate(); err != nil {
			return fmt.Errorf("track %d: %w", i, err)
		}
	}
	return nil
}

// FadeIn animates el.Alpha from 0 to 1.
func FadeIn(el *Element, fn ease.TweenFunc) *Timeline {
	return NewTimeline(Track{Target: &el.Alpha, Keys: []Keyframe{
		{At: 0, Value: 0},
		{At: 1, Value: 1, Ease: fn},
	}})
}

// ScaleIn animates el.ScaleX and el.ScaleY from `from` to 1.
func ScaleIn(el *Element, from float64, fn ease.TweenFunc) *Timeline {
	keys := []Keyframe{{At: 0, Value: from}, {At: 1, Value: 1, Ease: fn}}
	return NewTimeline(
		Track{Target: &el.ScaleX, Keys: keys},
		Track{Target: &el.ScaleY, Keys: keys},
	)
}

// Parallax offsets el vertically by speed*100 px across the timeline, the
// same distance a section travels at speed 1.
func Parallax(el *Element, speed float64) *Timeline {
	return NewTimeline(Track{Target: &el.Y, Keys: []Keyframe{
		{At: 0, Value: 0},
		{At: 1, Value: speed * 100},
	}})
}

// ParallaxX is Parallax along the horizontal axis.
func ParallaxX(el *Element, speed float64) *Timeline {
	return NewTimeline(Track{Target: &el.X, Keys: []Keyframe{
		{At: 0, Value: 0},
		{At: 1, Value: speed * 100},
	}})
}
