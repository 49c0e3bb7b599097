// Package deck reads vocabulary decks from plain markdown files.
//
// A deck file is a sequence of entries separated by "---" lines. Each
// entry has prefixed blocks:
//
//	W: the word being learned
//	T: its translation
//	E: an optional example sentence (may span lines)
//	D: an optional difficulty label (beginner/intermediate/advanced/master)
package deck

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/wordid"
)

const (
	wordPrefix        = "W:"
	translationPrefix = "T:"
	examplePrefix     = "E:"
	difficultyPrefix  = "D:"
)

type state int

const (
	seeking state = iota
	readingWord
	readingTranslation
	readingExample
	readingDifficulty
)

// ParseFile reads a deck file from the given path and extracts all cards.
func ParseFile(path string) ([]domain.Card, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads from an io.Reader and extracts all cards. Entries without a
// word are skipped; an unrecognized or missing difficulty defaults to
// intermediate. Scheduling fields are left zero for the caller to
// initialize.
func Parse(r io.Reader) ([]domain.Card, error) {
	scanner := bufio.NewScanner(r)
	var cards []domain.Card
	var currentCard domain.Card
	var currentBlock []string
	currentState := seeking

	flushBlock := func() {
		if len(currentBlock) == 0 {
			return
		}
		content := strings.Join(currentBlock, "\n")
		switch currentState {
		case readingWord:
			currentCard.Word = content
		case readingTranslation:
			currentCard.Translation = content
		case readingExample:
			currentCard.Example = content
		case readingDifficulty:
			var d domain.Difficulty
			if err := d.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(content)))); err == nil {
				currentCard.Difficulty = d
			}
		}
		currentBlock = nil
	}

	finishCard := func() {
		flushBlock()
		if currentCard.Word != "" {
			if currentCard.Difficulty == 0 {
				currentCard.Difficulty = domain.Intermediate
			}
			currentCard.ID = wordid.ID(currentCard)
			cards = append(cards, currentCard)
		}
		currentCard = domain.Card{}
		currentState = seeking
	}

	stripPrefix := func(line, prefix string) string {
		content := line[len(prefix):]
		return strings.TrimPrefix(content, " ")
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == "---" {
			finishCard()
			continue
		}

		switch {
		case strings.HasPrefix(line, wordPrefix):
			// A new word always starts a new card.
			if currentState != seeking {
				finishCard()
			} else {
				flushBlock()
			}
			currentState = readingWord
			currentBlock = append(currentBlock, stripPrefix(line, wordPrefix))
		case strings.HasPrefix(line, translationPrefix):
			flushBlock()
			currentState = readingTranslation
			currentBlock = append(currentBlock, stripPrefix(line, translationPrefix))
		case strings.HasPrefix(line, examplePrefix):
			flushBlock()
			currentState = readingExample
			currentBlock = append(currentBlock, stripPrefix(line, examplePrefix))
		case strings.HasPrefix(line, difficultyPrefix):
			flushBlock()
			currentState = readingDifficulty
			currentBlock = append(currentBlock, stripPrefix(line, difficultyPrefix))
		default:
			if currentState != seeking {
				currentBlock = append(currentBlock, line)
			}
		}
	}

	finishCard() // Finish the very last card in the file

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}
