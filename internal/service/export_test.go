package service

import "time"

// SetClock overrides the service clock for deterministic statistics tests.
func (s *StatsService) SetClock(now func() time.Time) {
	s.now = now
}
