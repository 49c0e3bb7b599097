package srs

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
)

// Config configures a Scheduler.
// Zero values produce sensible defaults; see field comments.
type Config struct {
	Params        *Params    // nil → DefaultParams
	DisableJitter bool       // zero false → jitter enabled
	Rand          *rand.Rand // nil → seeded from wall clock; inject for determinism
}

// Scheduler computes review schedules for vocabulary cards.
// It is stateless apart from its parameters and jitter source; the same
// Scheduler may be used for any number of cards.
type Scheduler struct {
	params        Params
	disableJitter bool
	rng           *rand.Rand
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults; invalid parameters return an error.
func NewScheduler(cfg Config) (*Scheduler, error) {
	params := DefaultParams()
	if cfg.Params != nil {
		params = *cfg.Params
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Scheduler{
		params:        params,
		disableJitter: cfg.DisableJitter,
		rng:           rng,
	}, nil
}

// InitializeCard returns the card with its scheduling fields set to their
// initial values: interval 1, initial ease, zero reviews, zero mastery,
// due immediately. All non-scheduling fields are preserved.
func (s *Scheduler) InitializeCard(card domain.Card, now time.Time) domain.Card {
	c := card.Clone()
	c.Interval = s.params.FirstInterval
	c.EaseFactor = s.params.InitialEase
	c.ReviewCount = 0
	c.MasteryScore = 0
	c.NextReviewAt = now
	c.LastReviewedAt = &now
	return c
}

// ResetProgress discards the card's review history, returning it to the
// freshly-initialized scheduling state. Word content, difficulty and any
// other non-scheduling fields are untouched.
func (s *Scheduler) ResetProgress(card domain.Card, now time.Time) domain.Card {
	return s.InitializeCard(card, now)
}

// Review processes a single review of the card at the given time and
// returns the card with updated scheduling fields. The input card is not
// mutated.
//
// A quality below 3 is a failed recall: the review count and interval
// reset and the card re-enters the short review cycle. A passing quality
// grows the interval per SM-2: 1 day, then 6, then round(interval × ease).
//
// Returns ErrQualityOutOfRange for a quality outside [0, 5] and
// ErrMasteryOutOfRange if the input card's mastery score is outside
// [0, 100]; in both cases no update is computed.
func (s *Scheduler) Review(card domain.Card, quality Quality, now time.Time) (domain.Card, error) {
	if !quality.IsValid() {
		return domain.Card{}, fmt.Errorf("%w: got %d", ErrQualityOutOfRange, int(quality))
	}
	if card.MasteryScore < 0 || card.MasteryScore > 100 {
		return domain.Card{}, fmt.Errorf("%w: got %g", ErrMasteryOutOfRange, card.MasteryScore)
	}

	c := card.Clone()

	// Ease factor: quality-dependent delta, clamped, two-decimal precision.
	ease := card.EaseFactor + easeDelta[quality]
	ease = math.Min(math.Max(ease, s.params.MinEase), s.params.MaxEase)
	ease = math.Round(ease*100) / 100

	// Interval and review count.
	var interval, count int
	if quality.Passed() {
		switch {
		case card.ReviewCount == 0:
			// First success after a reset.
			interval = s.params.FirstInterval
		case card.Interval <= s.params.FirstInterval:
			// Second consecutive success.
			interval = s.params.SecondInterval
		default:
			interval = int(math.Round(float64(card.Interval) * ease))
		}
		count = card.ReviewCount + 1
	} else {
		interval = s.params.FirstInterval
		count = 0
	}
	if interval < 1 {
		interval = 1
	}

	c.EaseFactor = ease
	c.Interval = interval
	c.ReviewCount = count
	c.MasteryScore = s.nextMastery(card.MasteryScore, quality)
	c.NextReviewAt = s.nextReviewAt(interval, now)
	c.LastReviewedAt = &now
	return c, nil
}

// nextMastery applies the mastery-score delta for the review and returns
// the new score, clamped to [0, 100] and rounded to a whole number.
//
// Gains diminish as mastery approaches the ceiling; penalties shrink for
// well-known cards so a single slip never collapses accumulated mastery.
func (s *Scheduler) nextMastery(mastery float64, quality Quality) float64 {
	var delta float64
	if quality.Passed() {
		delta = s.params.MasteryGainBase * (float64(quality) / float64(Perfect)) *
			(1 - (mastery/100)*s.params.MasteryGainDamping)
	} else {
		delta = -s.params.MasteryPenaltyBase * math.Max(s.params.MasteryPenaltyFloor, 1-mastery/100)
	}
	next := mastery + delta
	next = math.Min(math.Max(next, 0), 100)
	return math.Round(next)
}

// nextReviewAt schedules the next review interval days from now, jittered
// to spread out cards reviewed together, and never earlier than one full
// day after the review.
func (s *Scheduler) nextReviewAt(interval int, now time.Time) time.Time {
	due := now.Add(time.Duration(interval) * 24 * time.Hour)
	if !s.disableJitter {
		due = due.Add(s.jitter(interval))
	}
	// Mandatory final clamp: for interval=1 the jitter could otherwise
	// land the card before tomorrow.
	if min := now.Add(24 * time.Hour); due.Before(min) {
		due = min
	}
	return due
}
