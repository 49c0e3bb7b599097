// Package srs implements the SM-2-derived spaced repetition scheduling
// engine for vocabulary cards.
//
// The engine is pure computation: it receives a card snapshot, a recall
// quality rating and the current time, and returns the updated scheduling
// fields. It performs no I/O, holds no global state and never mutates its
// inputs, so callers may schedule different cards concurrently without
// coordination. Persisting results and serializing concurrent updates to
// the same card is the host's responsibility.
//
// Basic usage:
//
//	s, err := srs.NewScheduler(srs.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card = s.InitializeCard(card, time.Now())
//	card, err = s.Review(card, srs.Perfect, time.Now())
package srs
