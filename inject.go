package glide

// InjectWheel queues a synthetic wheel delta (px, before the wheel
// multiplier). Each queued event is consumed by one tick, exactly like real
// wheel input.
func (c *Controller) InjectWheel(delta float64) {
	if !c.listening {
		return
	}
	c.injectQueue = append(c.injectQueue, ScrollInput{Wheel: delta})
}

// InjectTouch queues a synthetic touch drag delta (px, before the touch
// multiplier).
func (c *Controller) InjectTouch(delta float64) {
	if !c.listening {
		return
	}
	c.injectQueue = append(c.injectQueue, ScrollInput{Touch: delta})
}

// InjectFlick queues total wheel movement spread evenly over frames ticks.
// Minimum frames is 1.
func (c *Controller) InjectFlick(total float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	step := total / float64(frames)
	for i := 0; i < frames; i++ {
		c.InjectWheel(step)
	}
}

// PendingInput returns the number of queued synthetic events.
func (c *Controller) PendingInput() int {
	return len(c.injectQueue)
}
