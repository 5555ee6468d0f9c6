package engine

// Signal is an edge-triggered dirty flag. Any number of raises between two
// consumes collapse into a single pending notification.
type Signal struct {
	pending bool
}

// Raise marks the signal pending
func (s *Signal) Raise() { s.pending = true }

// Pending reports whether a raise has not been consumed yet
func (s *Signal) Pending() bool { return s.pending }

// Consume clears the signal and reports whether it was pending
func (s *Signal) Consume() bool {
	was := s.pending
	s.pending = false
	return was
}
