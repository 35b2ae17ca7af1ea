// Package pricing holds the harvest scoring, candidate selection and price
// suggestion rules. Every function here is pure: the current date is always
// passed in by the caller.
package pricing

import (
	"math"
	"time"
)

// DefaultBasePrice is the price per unit before the score and urgency
// multipliers are applied.
const DefaultBasePrice = 20.0

const (
	ScoreUrgent   = 90
	ScoreSoon     = 80
	ScoreStandard = 70
)

type Rules struct {
	BasePrice float64
}

func DefaultRules() Rules {
	return Rules{BasePrice: DefaultBasePrice}
}

// DaysRemaining returns the number of calendar days from today until the
// expected date. Both values are reduced to their calendar date first, so the
// time of day never changes the result. Past dates yield negative values.
func DaysRemaining(today, expected time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(expected.Year(), expected.Month(), expected.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - t.Unix()) / 86400)
}

func UrgencyScore(daysRemaining int) int {
	switch {
	case daysRemaining <= 5:
		return ScoreUrgent
	case daysRemaining <= 10:
		return ScoreSoon
	default:
		return ScoreStandard
	}
}

func UrgencyMultiplier(daysRemaining int) float64 {
	switch {
	case daysRemaining <= 5:
		return 1.2
	case daysRemaining <= 10:
		return 1.1
	default:
		return 1.0
	}
}

// SuggestedPrice is base × score/100 × urgency multiplier, rounded half away
// from zero to two decimal places.
func (r Rules) SuggestedPrice(urgencyScore, daysRemaining int) float64 {
	scoreMultiplier := float64(urgencyScore) / 100
	price := r.BasePrice * scoreMultiplier * UrgencyMultiplier(daysRemaining)
	return roundCents(price)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
