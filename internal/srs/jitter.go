package srs

import "time"

// jitter returns a uniformly random offset in ±span, where span is
// JitterFraction of the interval capped at MaxJitter. Spreading due dates
// this way prevents large synchronized review spikes when many cards are
// scheduled together.
func (s *Scheduler) jitter(interval int) time.Duration {
	span := time.Duration(float64(interval) * s.params.JitterFraction * float64(24*time.Hour))
	if span > s.params.MaxJitter {
		span = s.params.MaxJitter
	}
	if span <= 0 {
		return 0
	}
	return time.Duration((s.rng.Float64()*2 - 1) * float64(span))
}
