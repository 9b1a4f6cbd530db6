package model

// Input is one tick of player intent, already decoded from the keyboard and mouse.
type Input struct {
	// Move is +1 forward, -1 backward, 0 idle.
	Move float64
	// Strafe is +1 right, -1 left, 0 idle.
	Strafe float64
	// Turn is the heading change in radians for this tick.
	Turn float64

	Fire    bool
	Reload  bool
	Restart bool

	// Select picks a weapon slot starting at 1; 0 leaves the selection alone.
	Select int
}
