package srs

import "math"

const (
	masteredThreshold   = 95 // mastery at or above this counts as already mastered
	gainPerfectAccuracy = 15 // average mastery gain per review at 100% accuracy

	goalDueCap     = 50 // due-card component cap
	goalDueWeight  = 0.4
	goalTimeWeight = 0.4
	goalSizeWeight = 0.2
	goalMin        = 10
	goalMax        = 100

	defaultSecondsPerCard = 30
)

// MasteryEstimate is the projected effort to bring a card to full mastery.
type MasteryEstimate struct {
	Days    int
	Reviews int
}

// EstimateMastery projects how many reviews, and days at the given pace,
// remain until the card reaches full mastery. Accuracy is a recent average
// on the 0–100 scale. A card at 95+ mastery is treated as already mastered
// and returns a zero estimate.
//
// The helper is advisory and total: accuracy and pace are floored at 1 so
// degenerate inputs yield a (pessimistic) estimate instead of an error.
func EstimateMastery(mastery, accuracy, reviewsPerDay float64) MasteryEstimate {
	if mastery >= masteredThreshold {
		return MasteryEstimate{}
	}
	if accuracy < 1 {
		accuracy = 1
	}
	if reviewsPerDay < 1 {
		reviewsPerDay = 1
	}

	avgGainPerReview := accuracy / 100 * gainPerfectAccuracy
	diminishingFactor := 1 - (mastery/100)*0.5

	reviews := math.Ceil((100 - mastery) / (avgGainPerReview * diminishingFactor))
	days := math.Ceil(reviews / reviewsPerDay)
	return MasteryEstimate{Days: int(days), Reviews: int(reviews)}
}

// DailyGoal recommends a daily review target from the due backlog, the
// learner's time budget, and the overall vocabulary size, scaled by recent
// accuracy. The result is clamped to [10, 100]. It is advisory only; an
// explicit user-set goal always wins and is never overridden here.
func DailyGoal(totalWords, dueWords int, avgSecondsPerCard, availableMinutes, accuracy float64) int {
	if avgSecondsPerCard <= 0 {
		avgSecondsPerCard = defaultSecondsPerCard
	}

	dueComponent := math.Min(float64(dueWords), goalDueCap)
	timeComponent := availableMinutes * 60 / avgSecondsPerCard
	sizeComponent := 10 * math.Log10(float64(totalWords)+1)
	performance := 0.5 + accuracy/100*0.5

	goal := math.Round((dueComponent*goalDueWeight + timeComponent*goalTimeWeight + sizeComponent*goalSizeWeight) * performance)
	if goal < goalMin {
		goal = goalMin
	}
	if goal > goalMax {
		goal = goalMax
	}
	return int(goal)
}
