package game

// InputState is filled in by the host before every tick.
// Movement is level-triggered; fire and debug toggle are counted presses
// that the next tick drains.
type InputState struct {
	MoveUp   bool
	MoveDown bool

	firePresses  int
	debugPresses int
}

// PressFire records a fire key press
func (in *InputState) PressFire() {
	in.firePresses++
}

// PressToggleDebug records a debug toggle key press
func (in *InputState) PressToggleDebug() {
	in.debugPresses++
}

// Release clears the held movement keys
func (in *InputState) Release() {
	in.MoveUp = false
	in.MoveDown = false
}

// drain returns the pending presses and clears them
func (in *InputState) drain() (fire, debug int) {
	fire, debug = in.firePresses, in.debugPresses
	in.firePresses, in.debugPresses = 0, 0
	return fire, debug
}
