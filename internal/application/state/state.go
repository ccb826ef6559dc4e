package state

// SimState represents the terminal state machine of a simulation session.
// Running is initial and Won is absorbing.
type SimState int

const (
	Running SimState = iota
	Won
)

// String returns the string representation of the simulation state
func (s SimState) String() string {
	switch s {
	case Running:
		return "Running"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// Advances reports whether physics stepping is allowed in this state
func (s SimState) Advances() bool {
	return s == Running
}

// Win returns the state after the goal is reached and whether this was a transition.
// Winning again from Won reports false.
func (s SimState) Win() (SimState, bool) {
	return Won, s != Won
}
