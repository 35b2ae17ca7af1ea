package services

import "time"

// Clock supplies the current calendar date to the scoring and pricing rules.
type Clock interface {
	Today() time.Time
}

type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FixedClock always reports the same date.
type FixedClock time.Time

func (c FixedClock) Today() time.Time {
	return time.Time(c)
}
