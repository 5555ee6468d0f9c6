package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     uint64
	StartTime            time.Time

	lastGeneration uint64
	lastUpdate     time.Time
}

func NewStats() *Stats {
	now := time.Now()
	return &Stats{StartTime: now, lastUpdate: now}
}

// Update records the status seen at now. The rate only moves when the
// generation advanced since the previous update.
func (s *Stats) Update(generation uint64, population int, now time.Time) {
	if generation > s.lastGeneration {
		if elapsed := now.Sub(s.lastUpdate); elapsed > 0 {
			s.GenerationsPerSecond = float64(generation-s.lastGeneration) / elapsed.Seconds()
		}
		s.lastGeneration = generation
		s.lastUpdate = now
	}
	s.TotalGenerations = generation

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time since the stats were created
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
