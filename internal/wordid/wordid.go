package wordid

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
)

// Normalize concatenates the card's identifying content after cleaning
// each part. It trims whitespace, lowercases, and normalizes line endings
// so that formatting-only edits keep the same identity.
func Normalize(card domain.Card) string {
	normalizePart := func(part string) string {
		p := strings.ToLower(part)
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	w := normalizePart(card.Word)
	t := normalizePart(card.Translation)

	// Joined with a newline so adjacent fields cannot run together and
	// collide, e.g. "ab"+"c" versus "a"+"bc".
	return strings.Join([]string{w, t}, "\n")
}

// ID derives a stable opaque identifier for the card from its word and
// translation: the SHA-256 of the normalized content as a hex string.
// The scheduling state deliberately does not participate, so an ID
// survives reviews and progress resets.
func ID(card domain.Card) string {
	normalized := Normalize(card)
	hashBytes := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%x", hashBytes)
}
