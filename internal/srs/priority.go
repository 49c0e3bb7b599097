package srs

import (
	"math"
	"sort"
	"time"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
)

// difficultyWeights nudge harder material earlier in the queue at equal
// overdue/mastery urgency.
var difficultyWeights = map[domain.Difficulty]float64{
	domain.Beginner:     0.8,
	domain.Intermediate: 1.0,
	domain.Advanced:     1.2,
	domain.Master:       1.5,
}

// Priority returns the urgency score used to order a due-card queue.
// Higher means review sooner. The score grows super-linearly with days
// overdue (accelerating forgetting risk), favors low-mastery cards, and
// slightly deprioritizes never-reviewed cards so established material
// stabilizes first.
func Priority(card domain.Card, now time.Time) float64 {
	daysOverdue := now.Sub(card.NextReviewAt).Hours() / 24
	if daysOverdue < 0 {
		daysOverdue = 0
	}
	overdueWeight := math.Pow(daysOverdue+1, 1.5)
	masteryWeight := (100 - card.MasteryScore) / 100

	difficultyWeight, ok := difficultyWeights[card.Difficulty]
	if !ok {
		difficultyWeight = 1.0
	}

	recencyPenalty := 1.0
	if card.ReviewCount == 0 {
		recencyPenalty = 0.5
	}

	return (overdueWeight*2 + masteryWeight*3) * difficultyWeight * recencyPenalty
}

// Summary groups a card collection by due horizon. The buckets are
// cumulative: a card due now is also due today and due this week.
type Summary struct {
	DueNow      []domain.Card // next review at or before now
	DueToday    []domain.Card // due by the end of now's calendar day
	DueThisWeek []domain.Card // due within the next seven days
	Queue       []domain.Card // every input card, most urgent first
}

// DueSummary buckets the cards by due horizon and orders the full set by
// descending priority. The sort is stable: equal-priority cards keep
// their input order.
func DueSummary(cards []domain.Card, now time.Time) Summary {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	endOfWeek := now.Add(7 * 24 * time.Hour)

	var sum Summary
	for _, c := range cards {
		if !c.NextReviewAt.After(now) {
			sum.DueNow = append(sum.DueNow, c)
		}
		if !c.NextReviewAt.After(endOfDay) {
			sum.DueToday = append(sum.DueToday, c)
		}
		if !c.NextReviewAt.After(endOfWeek) {
			sum.DueThisWeek = append(sum.DueThisWeek, c)
		}
	}

	type ranked struct {
		card     domain.Card
		priority float64
	}
	queue := make([]ranked, len(cards))
	for i, c := range cards {
		queue[i] = ranked{card: c, priority: Priority(c, now)}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].priority > queue[j].priority
	})
	sum.Queue = make([]domain.Card, len(queue))
	for i, r := range queue {
		sum.Queue[i] = r.card
	}
	return sum
}
