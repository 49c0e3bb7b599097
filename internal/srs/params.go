package srs

import (
	"fmt"
	"time"
)

// Params holds the tunable numeric constants of the scheduling algorithm.
// The defaults reproduce the classic SM-2 progression; hosts normally
// leave them alone and only override via configuration for experiments.
type Params struct {
	InitialEase float64 // ease factor assigned to a fresh card
	MinEase     float64 // lower clamp for the ease factor
	MaxEase     float64 // upper clamp for the ease factor

	FirstInterval  int // days after the first successful review (and after a reset)
	SecondInterval int // days after the second consecutive success

	MasteryGainBase     float64 // base gain per successful review, before scaling
	MasteryGainDamping  float64 // how strongly gain shrinks as mastery approaches 100
	MasteryPenaltyBase  float64 // base penalty on a failed review
	MasteryPenaltyFloor float64 // minimum fraction of the penalty applied at high mastery

	JitterFraction float64       // jitter span as a fraction of the interval
	MaxJitter      time.Duration // hard cap on the jitter span in either direction
}

// easeDelta maps a quality rating to the ease factor adjustment it causes.
var easeDelta = [6]float64{
	Blackout:   -0.30,
	Incorrect:  -0.25,
	Recognized: -0.15,
	Difficult:  +0.05,
	Hesitant:   +0.10,
	Perfect:    +0.15,
}

// DefaultParams returns the stock SM-2-derived parameter set.
func DefaultParams() Params {
	return Params{
		InitialEase: 2.5,
		MinEase:     1.3,
		MaxEase:     2.5,

		FirstInterval:  1,
		SecondInterval: 6,

		MasteryGainBase:     20,
		MasteryGainDamping:  0.7,
		MasteryPenaltyBase:  20,
		MasteryPenaltyFloor: 0.3,

		JitterFraction: 0.1,
		MaxJitter:      24 * time.Hour,
	}
}

// Validate checks the parameters for internal consistency.
// Returns an error wrapping ErrInvalidParams on the first violation found.
func (p Params) Validate() error {
	switch {
	case p.MinEase < 1:
		return fmt.Errorf("%w: min ease %.2f must be at least 1", ErrInvalidParams, p.MinEase)
	case p.MaxEase < p.MinEase:
		return fmt.Errorf("%w: max ease %.2f below min ease %.2f", ErrInvalidParams, p.MaxEase, p.MinEase)
	case p.InitialEase < p.MinEase || p.InitialEase > p.MaxEase:
		return fmt.Errorf("%w: initial ease %.2f outside [%.2f, %.2f]", ErrInvalidParams, p.InitialEase, p.MinEase, p.MaxEase)
	case p.FirstInterval < 1:
		return fmt.Errorf("%w: first interval %d must be at least 1 day", ErrInvalidParams, p.FirstInterval)
	case p.SecondInterval < p.FirstInterval:
		return fmt.Errorf("%w: second interval %d below first interval %d", ErrInvalidParams, p.SecondInterval, p.FirstInterval)
	case p.MasteryGainBase <= 0:
		return fmt.Errorf("%w: mastery gain base %.2f must be positive", ErrInvalidParams, p.MasteryGainBase)
	case p.MasteryGainDamping < 0 || p.MasteryGainDamping >= 1:
		return fmt.Errorf("%w: mastery gain damping %.2f outside [0, 1)", ErrInvalidParams, p.MasteryGainDamping)
	case p.MasteryPenaltyBase <= 0:
		return fmt.Errorf("%w: mastery penalty base %.2f must be positive", ErrInvalidParams, p.MasteryPenaltyBase)
	case p.MasteryPenaltyFloor <= 0 || p.MasteryPenaltyFloor > 1:
		return fmt.Errorf("%w: mastery penalty floor %.2f outside (0, 1]", ErrInvalidParams, p.MasteryPenaltyFloor)
	case p.JitterFraction < 0 || p.JitterFraction > 0.5:
		return fmt.Errorf("%w: jitter fraction %.2f outside [0, 0.5]", ErrInvalidParams, p.JitterFraction)
	case p.MaxJitter < 0:
		return fmt.Errorf("%w: max jitter %s must not be negative", ErrInvalidParams, p.MaxJitter)
	}
	return nil
}
