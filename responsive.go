package glide

import (
	"math"
	"time"
)

// ResponsivenessState is the Responsiveness controller's mode.
type ResponsivenessState uint8

const (
	StateSmooth     ResponsivenessState = iota // default, heavier smoothing
	StateResponsive                            // fast input, lighter smoothing
)

func (s ResponsivenessState) String() string {
	if s == StateResponsive {
		return "responsive"
	}
	return "smooth"
}

// Responsiveness watches real scroll movement and trades smoothness for
// responsiveness during fast flicks. It enters StateResponsive after
// enterSamples consecutive samples above the high threshold and returns to
// StateSmooth once no sample has exceeded the low threshold for the settle
// duration.
type Responsiveness struct {
	smooth     TuningParameters
	responsive TuningParameters

	enterSamples int
	settle       time.Duration

	state    ResponsivenessState
	streak   int
	lastFast time.Duration

	prev    float64
	sampled bool

	onChange func(ResponsivenessState)
}

// NewResponsiveness creates a controller in StateSmooth from cfg.
func NewResponsiveness(cfg Config) *Responsiveness {
	smooth := cfg.tuning()
	responsive := smooth
	responsive.Smoothing = cfg.ResponsiveSmoothing
	return &Responsiveness{
		smooth:       smooth,
		responsive:   responsive,
		enterSamples: cfg.EnterSamples,
		settle:       cfg.SettleDuration,
	}
}

// State returns the current mode.
func (c *Responsiveness) State() ResponsivenessState {
	return c.state
}

// Tuning implements TuningSource.
func (c *Responsiveness) Tuning() TuningParameters {
	if c.state == StateResponsive {
		return c.responsive
	}
	return c.smooth
}

// OnChange registers fn to be called on every state transition.
func (c *Responsiveness) OnChange(fn func(ResponsivenessState)) {
	c.onChange = fn
}

// Observe samples one ScrollState and returns the tuning to use next tick.
func (c *Responsiveness) Observe(s ScrollState) TuningParameters {
	if !c.sampled {
		c.sampled = true
		c.prev = s.RealPosition
		return c.Tuning()
	}
	delta := math.Abs(s.RealPosition - c.prev)
	c.prev = s.RealPosition

	switch c.state {
	case StateSmooth:
		if delta > c.smooth.VelocityThresholdHigh {
			c.streak++
		} else {
			c.streak = 0
		}
		if c.streak >= c.enterSamples {
			c.lastFast = s.Time
			c.transition(StateResponsive)
		}
	case StateResponsive:
		if delta > c.smooth.VelocityThresholdLow {
			c.lastFast = s.Time
		} else if s.Time-c.lastFast >= c.settle {
			c.streak = 0
			c.transition(StateSmooth)
		}
	}
	return c.Tuning()
}

// Reset returns to StateSmooth and forgets the previous sample.
func (c *Responsiveness) Reset() {
	c.state = StateSmooth
	c.streak = 0
	c.sampled = false
}

func (c *Responsiveness) transition(to ResponsivenessState) {
	if c.state == to {
		return
	}
	c.state = to
	if c.onChange != nil {
		c.onChange(to)
	}
}
