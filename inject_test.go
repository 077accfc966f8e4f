package glide

import "testing"

func TestInjectIgnoredUntilStarted(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	ctl.InjectWheel(100)
	ctl.InjectTouch(100)
	if n := ctl.PendingInput(); n != 0 {
		t.Errorf("PendingInput = %d, want 0 before Start", n)
	}
}

func TestInjectFlickSpreadsOverFrames(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	ctl.Start()
	ctl.InjectFlick(300, 3)
	if n := ctl.PendingInput(); n != 3 {
		t.Fatalf("PendingInput = %d, want 3", n)
	}
	for i, in := range ctl.injectQueue {
		if in.Wheel != 100 || in.Touch != 0 {
			t.Errorf("event %d = %+v, want wheel 100", i, in)
		}
	}
}

func TestInjectFlickMinFrames(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	ctl.Start()
	ctl.InjectFlick(50, 0)
	if n := ctl.PendingInput(); n != 1 {
		t.Errorf("PendingInput = %d, want 1", n)
	}
}

func TestInjectConsumedOnePerTick(t *testing.T) {
	cfg := DefaultConfig()
	ctl := mountTest(t, cfg, Environment{})
	ctl.Start()
	stepFrames(ctl, 1)

	ctl.InjectWheel(100)
	ctl.InjectTouch(10)
	stepFrames(ctl, 1)
	if n := ctl.PendingInput(); n != 1 {
		t.Fatalf("PendingInput after one tick = %d, want 1", n)
	}
	if got, want := ctl.State().RealPosition, 100*cfg.WheelMultiplier; !approxEqual(got, want, 1e-9) {
		t.Errorf("RealPosition = %f, want %f", got, want)
	}

	stepFrames(ctl, 1)
	want := 100*cfg.WheelMultiplier + 10*cfg.TouchMultiplier
	if got := ctl.State().RealPosition; !approxEqual(got, want, 1e-9) {
		t.Errorf("RealPosition = %f, want %f", got, want)
	}
}

func TestInjectQueueClearedOnStop(t *testing.T) {
	ctl := mountTest(t, DefaultConfig(), Environment{})
	ctl.Start()
	ctl.InjectFlick(500, 5)
	ctl.Stop()
	if n := ctl.PendingInput(); n != 0 {
		t.Errorf("PendingInput after Stop = %d, want 0", n)
	}
}
