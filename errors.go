package glide

import (
	"errors"
	"fmt"
	"log"
)

// ErrCapabilityUnavailable is wrapped by CapabilityUnavailableError so callers
// can test with errors.Is.
var ErrCapabilityUnavailable = errors.New("glide: smooth scrolling unavailable")

// InvalidRegionError is returned by Register when a binding's region has no
// positive extent or its timeline is malformed. The binding is never added.
type InvalidRegionError struct {
	Region string
	Start  float64
	End    float64
	Reason string
}

func (e *InvalidRegionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("glide: invalid region %q: %s", e.Region, e.Reason)
	}
	return fmt.Sprintf("glide: invalid region %q: extent [%g, %g] is empty", e.Region, e.Start, e.End)
}

// TransientTickFault describes a panic recovered inside one tick callback or
// one binding update. It is logged and never returned to callers.
type TransientTickFault struct {
	Source string
	Value  any
}

func (e *TransientTickFault) Error() string {
	return fmt.Sprintf("glide: transient fault in %s: %v", e.Source, e.Value)
}

// CapabilityUnavailableError reports why Mount fell back to native scrolling.
type CapabilityUnavailableError struct {
	Reason string
}

func (e *CapabilityUnavailableError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCapabilityUnavailable, e.Reason)
}

func (e *CapabilityUnavailableError) Unwrap() error {
	return ErrCapabilityUnavailable
}

// contain runs fn and converts a panic into a logged TransientTickFault so one
// failing callback cannot take down the frame loop.
func contain(logger *log.Logger, source string, fn func()) (fault *TransientTickFault) {
	defer func() {
		if r := recover(); r != nil {
			fault = &TransientTickFault{Source: source, Value: r}
			logger.Printf("%v", fault)
		}
	}()
	fn()
	return nil
}
