package locomotion

import "testing"

func TestTimerBankTick(t *testing.T) {
	var b TimerBank
	b.Set(TimerCoyote, 0.05)

	if !b.Active(TimerCoyote) {
		t.Fatal("coyote should be active right after Set")
	}

	b.Tick(0.02)
	b.Tick(0.02)
	if !b.Active(TimerCoyote) {
		t.Fatalf("coyote should still run at %v", b.Value(TimerCoyote))
	}

	b.Tick(0.02)
	if b.Active(TimerCoyote) {
		t.Errorf("coyote should have expired, value %v", b.Value(TimerCoyote))
	}
	if v := b.Value(TimerCoyote); v != 0 {
		t.Errorf("expired timer = %v, want floor of 0", v)
	}

	// Stays at zero until reset.
	for i := 0; i < 10; i++ {
		b.Tick(0.02)
	}
	if b.Value(TimerCoyote) != 0 || b.Active(TimerCoyote) {
		t.Errorf("timer moved after expiring: %v", b.Value(TimerCoyote))
	}
}

func TestTimerBankSet(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     float64
		active   bool
	}{
		{"positive", 0.2, 0.2, true},
		{"zero", 0, 0, false},
		{"negative clamps", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b TimerBank
			b.Set(TimerWallLatch, tt.duration)
			if got := b.Value(TimerWallLatch); got != tt.want {
				t.Errorf("Value = %v, want %v", got, tt.want)
			}
			if got := b.Active(TimerWallLatch); got != tt.active {
				t.Errorf("Active = %v, want %v", got, tt.active)
			}
		})
	}
}

func TestTimerBankIndependent(t *testing.T) {
	var b TimerBank
	b.Set(TimerWallStick, 1)
	b.Set(TimerJumpBuffer, 0.1)
	b.Clear(TimerWallStick)
	b.Tick(0.05)

	if b.Active(TimerWallStick) {
		t.Error("cleared timer is active")
	}
	if !approx(b.Value(TimerJumpBuffer), 0.05) {
		t.Errorf("jump buffer = %v, want 0.05", b.Value(TimerJumpBuffer))
	}
	for _, id := range TimerIDs() {
		if id.String() == "unknown" {
			t.Errorf("timer %d has no name", id)
		}
	}
}

func TestAccumulator(t *testing.T) {
	a := Accumulator{Step: 0.02}

	if n := a.Advance(0.01); n != 0 {
		t.Errorf("half a step produced %d steps", n)
	}
	if n := a.Advance(0.015); n != 1 {
		t.Errorf("1.25 steps pending produced %d steps, want 1", n)
	}
	if n := a.Advance(10); n != maxSteps {
		t.Errorf("long stall produced %d steps, want cap %d", n, maxSteps)
	}
	if n := a.Advance(0); n != 0 {
		t.Errorf("stall backlog was not dropped, got %d steps", n)
	}
}
