package components

import (
	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/physics"
	"github.com/yohamta/donburi"
)

// HistorySize caps the transition history kept for the debug overlay.
const HistorySize = 8

// TransitionRecord is one state change, stamped with the physics tick.
type TransitionRecord struct {
	Tick     int
	From, To locomotion.State
}

type LocomotionData struct {
	Controller *locomotion.Controller
	Body       *physics.Body
	Prober     *physics.Prober

	Clock   locomotion.Accumulator
	Ticks   int                // Physics ticks run so far
	History []TransitionRecord // Oldest first
}

// Record appends a transition, dropping the oldest past HistorySize.
func (l *LocomotionData) Record(from, to locomotion.State) {
	l.History = append(l.History, TransitionRecord{Tick: l.Ticks, From: from, To: to})
	if len(l.History) > HistorySize {
		l.History = l.History[len(l.History)-HistorySize:]
	}
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
