package locomotion

// Input is one sample of the input source.
type Input struct {
	Axis float64 // Horizontal, [-1, 1]

	JumpPressed  bool // Pressed this tick
	JumpHeld     bool
	JumpReleased bool // Released this tick

	DescendPressed bool // Pressed this tick

	Walk   bool
	Sprint bool
}

// direction is the sign of the horizontal axis.
func (in Input) direction() int {
	return sign(in.Axis)
}
