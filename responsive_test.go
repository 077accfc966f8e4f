package glide

import (
	"testing"
	"time"
)

type sampler struct {
	c    *Responsiveness
	pos  float64
	time time.Duration
}

func (s *sampler) move(delta float64) TuningParameters {
	s.pos += delta
	s.time += frameDuration
	return s.c.Observe(ScrollState{RealPosition: s.pos, Time: s.time})
}

func newSampler() *sampler {
	s := &sampler{c: NewResponsiveness(DefaultConfig())}
	s.c.Observe(ScrollState{})
	return s
}

func TestResponsivenessEntersAfterThreeFastTicks(t *testing.T) {
	s := newSampler()
	cfg := DefaultConfig()

	s.move(100)
	s.move(100)
	if s.c.State() != StateSmooth {
		t.Fatal("switched to responsive before three fast samples")
	}
	tuning := s.move(100)
	if s.c.State() != StateResponsive {
		t.Fatal("state should be responsive after three fast samples")
	}
	if tuning.Smoothing != cfg.ResponsiveSmoothing {
		t.Errorf("Smoothing = %f, want %f", tuning.Smoothing, cfg.ResponsiveSmoothing)
	}
}

func TestResponsivenessStreakResetsOnSlowSample(t *testing.T) {
	s := newSampler()
	s.move(100)
	s.move(100)
	s.move(10)
	s.move(100)
	s.move(100)
	if s.c.State() != StateSmooth {
		t.Error("a slow sample must reset the fast streak")
	}
}

func TestResponsivenessSettlesBackToSmooth(t *testing.T) {
	s := newSampler()
	cfg := DefaultConfig()
	for i := 0; i < 3; i++ {
		s.move(100)
	}

	// 150ms settle at 60 fps: still responsive for the first 8 quiet ticks.
	for i := 0; i < 8; i++ {
		s.move(0)
		if s.c.State() != StateResponsive {
			t.Fatalf("quiet tick %d: left responsive before the settle window", i)
		}
	}
	var tuning TuningParameters
	for i := 0; i < 2; i++ {
		tuning = s.move(0)
	}
	if s.c.State() != StateSmooth {
		t.Fatal("did not settle back to smooth")
	}
	if tuning.Smoothing != cfg.Smoothing {
		t.Errorf("Smoothing = %f, want %f", tuning.Smoothing, cfg.Smoothing)
	}
}

func TestResponsivenessHysteresis(t *testing.T) {
	s := newSampler()
	for i := 0; i < 3; i++ {
		s.move(100)
	}
	// Between the low and high thresholds keeps the settle timer reset.
	for i := 0; i < 30; i++ {
		s.move(45)
	}
	if s.c.State() != StateResponsive {
		t.Error("medium-speed input should hold the responsive state")
	}
}

func TestResponsivenessOnChange(t *testing.T) {
	s := newSampler()
	var seen []ResponsivenessState
	s.c.OnChange(func(st ResponsivenessState) { seen = append(seen, st) })
	for i := 0; i < 5; i++ {
		s.move(-120)
	}
	for i := 0; i < 20; i++ {
		s.move(0)
	}
	if len(seen) != 2 || seen[0] != StateResponsive || seen[1] != StateSmooth {
		t.Errorf("transitions = %v, want [responsive smooth]", seen)
	}
}
