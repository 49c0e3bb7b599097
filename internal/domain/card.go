package domain

import (
	"encoding"
	"encoding/json"
	"fmt"
	"time"
)

// Card represents a single vocabulary entry with its review-scheduling state.
type Card struct {
	ID             string     `json:"id"`
	Word           string     `json:"word"`
	Translation    string     `json:"translation"`
	Example        string     `json:"example,omitempty"`
	Difficulty     Difficulty `json:"difficulty"`
	Interval       int        `json:"interval"`      // days until the next scheduled review
	EaseFactor     float64    `json:"ease_factor"`   // bounded to [1.3, 2.5]
	ReviewCount    int        `json:"review_count"`  // resets to 0 on a failed review
	MasteryScore   float64    `json:"mastery_score"` // [0, 100], stored as a whole number
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"` // nil before first review
}

// Clone returns a deep copy of the card. Pointer fields are copied by value.
func (c Card) Clone() Card {
	out := c
	if c.LastReviewedAt != nil {
		v := *c.LastReviewedAt
		out.LastReviewedAt = &v
	}
	return out
}

// Difficulty is a coarse label for how hard a card's material is.
// It is set when the card is authored and never altered by the scheduler.
type Difficulty int

const (
	Beginner Difficulty = iota + 1
	Intermediate
	Advanced
	Master
)

var (
	difficultyNames  = [...]string{Beginner: "beginner", Intermediate: "intermediate", Advanced: "advanced", Master: "master"}
	difficultyByName = map[string]Difficulty{
		"beginner":     Beginner,
		"intermediate": Intermediate,
		"advanced":     Advanced,
		"master":       Master,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Difficulty(0)
	_ json.Marshaler           = Difficulty(0)
	_ json.Unmarshaler         = (*Difficulty)(nil)
	_ encoding.TextMarshaler   = Difficulty(0)
	_ encoding.TextUnmarshaler = (*Difficulty)(nil)
)

// IsValid reports whether d is a known difficulty level.
func (d Difficulty) IsValid() bool {
	return d >= Beginner && d <= Master
}

// String returns the lowercase name of the difficulty.
// For invalid values it returns "Difficulty(n)".
func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("domain: invalid difficulty: %d", int(d))
	}
	return []byte(difficultyNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, ok := difficultyByName[string(text)]
	if !ok {
		return fmt.Errorf("domain: invalid difficulty: %q", text)
	}
	*d = v
	return nil
}

// MarshalJSON implements json.Marshaler. Difficulty serializes as a JSON string.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	text, err := d.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: invalid difficulty: %s", data)
	}
	return d.UnmarshalText([]byte(s))
}
