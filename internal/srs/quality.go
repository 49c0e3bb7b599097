package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Quality is the user's self-assessed recall quality for a single review,
// on the SM-2 scale of 0 (total blackout) to 5 (perfect recall).
type Quality int

const (
	Blackout   Quality = iota // No recall at all.
	Incorrect                 // Wrong, but the answer felt familiar once seen.
	Recognized                // Wrong, yet the answer seemed easy in hindsight.
	Difficult                 // Correct with serious difficulty.
	Hesitant                  // Correct after some hesitation.
	Perfect                   // Correct, effortless.
)

// passThreshold separates failed recall (below) from passed recall.
const passThreshold = Difficult

var (
	qualityNames = [...]string{
		Blackout:   "blackout",
		Incorrect:  "incorrect",
		Recognized: "recognized",
		Difficult:  "difficult",
		Hesitant:   "hesitant",
		Perfect:    "perfect",
	}
	qualityByName = map[string]Quality{
		"blackout":   Blackout,
		"incorrect":  Incorrect,
		"recognized": Recognized,
		"difficult":  Difficult,
		"hesitant":   Hesitant,
		"perfect":    Perfect,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Quality(0)
	_ json.Marshaler           = Quality(0)
	_ json.Unmarshaler         = (*Quality)(nil)
	_ encoding.TextMarshaler   = Quality(0)
	_ encoding.TextUnmarshaler = (*Quality)(nil)
)

// IsValid reports whether q is on the 0–5 scale.
func (q Quality) IsValid() bool {
	return q >= Blackout && q <= Perfect
}

// Passed reports whether q counts as successful recall (quality >= 3).
func (q Quality) Passed() bool {
	return q >= passThreshold
}

// String returns the name of the quality ("blackout" through "perfect").
// For invalid values it returns "Quality(n)".
func (q Quality) String() string {
	if q.IsValid() {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrQualityOutOfRange, int(q))
	}
	return []byte(qualityNames[q]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	v, ok := qualityByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrQualityOutOfRange, text)
	}
	*q = v
	return nil
}

// MarshalJSON implements json.Marshaler. Quality serializes as a JSON string.
func (q Quality) MarshalJSON() ([]byte, error) {
	text, err := q.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (q *Quality) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrQualityOutOfRange, data)
	}
	return q.UnmarshalText([]byte(s))
}
