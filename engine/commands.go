package engine

// Command is an input event applied to a Simulation
type Command interface {
	apply(s *Simulation) error
}

// ToggleCell flips the cell at (Col, Row)
type ToggleCell struct {
	Col, Row int
}

func (c ToggleCell) apply(s *Simulation) error { return s.ToggleCell(c.Col, c.Row) }

// ToggleRunState switches between Running and Paused
type ToggleRunState struct{}

func (ToggleRunState) apply(s *Simulation) error {
	s.ToggleRunState()
	return nil
}

// Clear kills every cell
type Clear struct{}

func (Clear) apply(s *Simulation) error {
	s.Clear()
	return nil
}

// StepOnce advances one generation while paused
type StepOnce struct{}

func (StepOnce) apply(s *Simulation) error {
	_, err := s.StepOnce()
	return err
}

// Reseed reapplies the configured seed pattern
type Reseed struct{}

func (Reseed) apply(s *Simulation) error {
	s.Reseed()
	return nil
}
