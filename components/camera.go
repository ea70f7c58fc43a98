package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view centre in map pixels.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	Snapped    bool    // False until the first frame jumps straight to the target
}

var Camera = donburi.NewComponentType[CameraData]()
