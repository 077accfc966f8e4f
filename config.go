package glide

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to every environment override, e.g. GLIDE_SMOOTHING.
const envPrefix = "GLIDE_"

// Config holds every tunable of the scroll runtime. The numeric defaults were
// tuned by eye and are meant to be overridden.
type Config struct {
	// ScrollDuration is the default length of an animated ScrollTo.
	ScrollDuration  time.Duration `yaml:"scroll_duration" env:"SCROLL_DURATION"`
	WheelMultiplier float64       `yaml:"wheel_multiplier" env:"WHEEL_MULTIPLIER"`
	TouchMultiplier float64       `yaml:"touch_multiplier" env:"TOUCH_MULTIPLIER"`
	// SmoothTouch eases touch input like wheel input. When false touch moves
	// the virtual position immediately.
	SmoothTouch bool `yaml:"smooth_touch" env:"SMOOTH_TOUCH"`
	// SnapEpsilon is the distance, in px, below which the virtual position
	// snaps onto its target.
	SnapEpsilon float64 `yaml:"snap_epsilon" env:"SNAP_EPSILON"`

	// Smoothing is the time constant used in the SMOOTH state.
	Smoothing float64 `yaml:"smoothing" env:"SMOOTHING"`
	// ResponsiveSmoothing is the time constant used in the RESPONSIVE state.
	ResponsiveSmoothing   float64       `yaml:"responsive_smoothing" env:"RESPONSIVE_SMOOTHING"`
	VelocityThresholdHigh float64       `yaml:"velocity_threshold_high" env:"VELOCITY_THRESHOLD_HIGH"`
	VelocityThresholdLow  float64       `yaml:"velocity_threshold_low" env:"VELOCITY_THRESHOLD_LOW"`
	EnterSamples          int           `yaml:"enter_samples" env:"ENTER_SAMPLES"`
	SettleDuration        time.Duration `yaml:"settle_duration" env:"SETTLE_DURATION"`

	ResizeDebounce time.Duration `yaml:"resize_debounce" env:"RESIZE_DEBOUNCE"`

	// LagThreshold caps a single frame's dt at AdjustedLag when exceeded.
	// Zero disables lag smoothing.
	LagThreshold time.Duration `yaml:"lag_threshold" env:"LAG_THRESHOLD"`
	AdjustedLag  time.Duration `yaml:"adjusted_lag" env:"ADJUSTED_LAG"`

	// IncompatibleAgents lists case-insensitive user agent substrings on
	// which the runtime stays out of the way and native scrolling is used.
	IncompatibleAgents []string `yaml:"incompatible_agents" env:"INCOMPATIBLE_AGENTS"`
	// ReducedMotion forces every timeline to its end state.
	ReducedMotion bool `yaml:"reduced_motion" env:"REDUCED_MOTION"`

	// RestoreKey enables scroll restoration under this key. Empty disables it.
	RestoreKey string `yaml:"restore_key" env:"RESTORE_KEY"`
	Debug      bool   `yaml:"debug" env:"DEBUG"`
}

// DefaultConfig returns the defaults used when no configuration is supplied.
func DefaultConfig() Config {
	return Config{
		ScrollDuration:        700 * time.Millisecond,
		WheelMultiplier:       0.85,
		TouchMultiplier:       1.8,
		SmoothTouch:           false,
		SnapEpsilon:           0.5,
		Smoothing:             0.24,
		ResponsiveSmoothing:   0.08,
		VelocityThresholdHigh: 60,
		VelocityThresholdLow:  30,
		EnterSamples:          3,
		SettleDuration:        150 * time.Millisecond,
		ResizeDebounce:        100 * time.Millisecond,
		AdjustedLag:           33 * time.Millisecond,
		IncompatibleAgents:    []string{"firefox"},
	}
}

// LoadConfig parses YAML on top of DefaultConfig, applies GLIDE_* environment
// overrides and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := applyEnv(&cfg, nil); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides cfg from the process environment, or from environ when
// it is non-nil.
func applyEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse config env: %w", err)
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Smoothing <= 0:
		return fmt.Errorf("config: smoothing must be > 0, got %g", c.Smoothing)
	case c.ResponsiveSmoothing <= 0:
		return fmt.Errorf("config: responsive_smoothing must be > 0, got %g", c.ResponsiveSmoothing)
	case c.VelocityThresholdLow > c.VelocityThresholdHigh:
		return fmt.Errorf("config: velocity_threshold_low (%g) exceeds velocity_threshold_high (%g)",
			c.VelocityThresholdLow, c.VelocityThresholdHigh)
	case c.EnterSamples < 1:
		return fmt.Errorf("config: enter_samples must be >= 1, got %d", c.EnterSamples)
	case c.SnapEpsilon < 0:
		return fmt.Errorf("config: snap_epsilon must be >= 0, got %g", c.SnapEpsilon)
	case c.SettleDuration < 0 || c.ResizeDebounce < 0:
		return fmt.Errorf("config: durations must be >= 0")
	}
	return nil
}

// incompatible reports the first IncompatibleAgents entry found in agent.
func (c Config) incompatible(agent string) (string, bool) {
	agent = strings.ToLower(agent)
	for _, a := range c.IncompatibleAgents {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" && strings.Contains(agent, a) {
			return a, true
		}
	}
	return "", false
}

// tuning returns the SMOOTH-state parameters.
func (c Config) tuning() TuningParameters {
	return TuningParameters{
		Smoothing:             c.Smoothing,
		VelocityThresholdHigh: c.VelocityThresholdHigh,
		VelocityThresholdLow:  c.VelocityThresholdLow,
	}
}
