package engine

// RunState is the simulation mode; the zero value is Running
type RunState uint8

const (
	Running RunState = iota
	Paused
)

// Toggle returns the opposite state
func (s RunState) Toggle() RunState {
	if s == Running {
		return Paused
	}
	return Running
}

func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Status is the payload of a status-changed notification
type Status struct {
	Iteration uint64
	Alive     int
	State     RunState
}
