package locomotion

// TimerID names a countdown in the TimerBank.
type TimerID int

const (
	TimerCoyote TimerID = iota
	TimerJumpBuffer
	TimerWallLatch
	TimerWallStick
	TimerWallJumpOverride
	TimerRoofJumpOverride
	TimerLedgeRelease
	timerCount
)

var timerNames = [timerCount]string{
	TimerCoyote:           "coyote",
	TimerJumpBuffer:       "jump_buffer",
	TimerWallLatch:        "wall_latch",
	TimerWallStick:        "wall_stick",
	TimerWallJumpOverride: "wall_jump_override",
	TimerRoofJumpOverride: "roof_jump_override",
	TimerLedgeRelease:     "ledge_release",
}

func (id TimerID) String() string {
	if id < 0 || id >= timerCount {
		return "unknown"
	}
	return timerNames[id]
}

// TimerIDs lists every timer in the bank.
func TimerIDs() []TimerID {
	ids := make([]TimerID, timerCount)
	for i := range ids {
		ids[i] = TimerID(i)
	}
	return ids
}

// TimerBank is a fixed set of countdown timers in seconds. Values never go
// below zero.
type TimerBank struct {
	values [timerCount]float64
}

// Tick decrements every running timer by dt.
func (b *TimerBank) Tick(dt float64) {
	for i, v := range b.values {
		if v <= 0 {
			continue
		}
		v -= dt
		if v < 0 {
			v = 0
		}
		b.values[i] = v
	}
}

// Set starts a timer at duration. Negative durations clear it.
func (b *TimerBank) Set(id TimerID, duration float64) {
	if duration < 0 {
		duration = 0
	}
	b.values[id] = duration
}

func (b *TimerBank) Clear(id TimerID) {
	b.values[id] = 0
}

func (b *TimerBank) Active(id TimerID) bool {
	return b.values[id] > 0
}

func (b *TimerBank) Value(id TimerID) float64 {
	return b.values[id]
}
