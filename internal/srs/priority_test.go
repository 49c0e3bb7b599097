package srs

import (
	"math"
	"testing"
	"time"

	"github.com/sarvesh-debug-lab/vocabulary-master-pwa/internal/domain"
)

func overdueCard(days float64) domain.Card {
	return domain.Card{
		Word:         "w",
		Difficulty:   domain.Intermediate,
		ReviewCount:  3,
		MasteryScore: 50,
		NextReviewAt: t0.Add(-time.Duration(days * 24 * float64(time.Hour))),
	}
}

func TestPriorityOverdueOrdering(t *testing.T) {
	fiveDays := Priority(overdueCard(5), t0)
	oneDay := Priority(overdueCard(1), t0)

	if fiveDays <= oneDay {
		t.Errorf("5-day overdue priority %v not greater than 1-day overdue %v", fiveDays, oneDay)
	}
	// Non-linear: (5+1)^1.5 is far more than 5× (1+1)^1.5.
	if fiveDays < oneDay*2 {
		t.Errorf("overdue weighting should be super-linear: %v vs %v", fiveDays, oneDay)
	}
}

func TestPriorityNotOverdue(t *testing.T) {
	c := overdueCard(0)
	c.NextReviewAt = t0.Add(48 * time.Hour) // due in the future
	c.MasteryScore = 0

	// daysOverdue floors at 0: (0+1)^1.5 × 2 + 1 × 3 = 5.
	if got := Priority(c, t0); got != 5 {
		t.Errorf("Priority = %v, want 5", got)
	}
}

func TestPriorityRecencyPenalty(t *testing.T) {
	established := overdueCard(2)
	fresh := overdueCard(2)
	fresh.ReviewCount = 0

	e := Priority(established, t0)
	f := Priority(fresh, t0)
	if math.Abs(f-e/2) > 1e-9 {
		t.Errorf("never-reviewed card priority %v, want half of %v", f, e)
	}
}

func TestPriorityDifficultyWeights(t *testing.T) {
	var prev float64
	for i, d := range []domain.Difficulty{domain.Beginner, domain.Intermediate, domain.Advanced, domain.Master} {
		c := overdueCard(1)
		c.Difficulty = d
		p := Priority(c, t0)
		if i > 0 && p <= prev {
			t.Errorf("%s priority %v not greater than previous %v", d, p, prev)
		}
		prev = p
	}
}

func TestPriorityLowMasteryRanksHigher(t *testing.T) {
	weak := overdueCard(1)
	weak.MasteryScore = 10
	strong := overdueCard(1)
	strong.MasteryScore = 90

	if Priority(weak, t0) <= Priority(strong, t0) {
		t.Error("low-mastery card should outrank high-mastery card at equal overdue")
	}
}

func TestDueSummaryBuckets(t *testing.T) {
	// t0 is 10:00, so +2h is still the same calendar day.
	overdue := overdueCard(2)
	overdue.ID = "overdue"
	later := overdueCard(0)
	later.ID = "later"
	later.NextReviewAt = t0.Add(2 * time.Hour)
	midweek := overdueCard(0)
	midweek.ID = "midweek"
	midweek.NextReviewAt = t0.Add(3 * 24 * time.Hour)
	distant := overdueCard(0)
	distant.ID = "distant"
	distant.NextReviewAt = t0.Add(10 * 24 * time.Hour)

	sum := DueSummary([]domain.Card{distant, later, overdue, midweek}, t0)

	if len(sum.DueNow) != 1 || sum.DueNow[0].ID != "overdue" {
		t.Errorf("DueNow = %v, want [overdue]", ids(sum.DueNow))
	}
	if len(sum.DueToday) != 2 {
		t.Errorf("DueToday = %v, want overdue and later", ids(sum.DueToday))
	}
	if len(sum.DueThisWeek) != 3 {
		t.Errorf("DueThisWeek = %v, want all but distant", ids(sum.DueThisWeek))
	}
	if len(sum.Queue) != 4 {
		t.Fatalf("Queue has %d cards, want all 4", len(sum.Queue))
	}
	if sum.Queue[0].ID != "overdue" {
		t.Errorf("Queue[0] = %s, want the overdue card first", sum.Queue[0].ID)
	}
	for i := 1; i < len(sum.Queue); i++ {
		if Priority(sum.Queue[i], t0) > Priority(sum.Queue[i-1], t0) {
			t.Errorf("Queue not in descending priority order at %d", i)
		}
	}
}

func TestDueSummaryStableOnTies(t *testing.T) {
	a := overdueCard(1)
	a.ID = "a"
	b := overdueCard(1)
	b.ID = "b"

	sum := DueSummary([]domain.Card{a, b}, t0)
	if sum.Queue[0].ID != "a" || sum.Queue[1].ID != "b" {
		t.Errorf("equal-priority cards reordered: %v", ids(sum.Queue))
	}
}

func ids(cards []domain.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
