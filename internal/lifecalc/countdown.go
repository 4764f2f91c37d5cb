package lifecalc

import (
	"math"
	"time"
)

const (
	daysPerYear    = 365.25
	secondsPerDay  = 24 * 60 * 60
	secondsPerYear = daysPerYear * secondsPerDay
)

// Countdown is the remaining time until the projected end of life.
type Countdown struct {
	Years   int64 `json:"years"`
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Expired bool  `json:"expired"`
}

// ProjectedEnd returns dob plus lifespan years of 365.25 days. Whole years
// advance the calendar; the fractional part adds frac*365.25 days instead of
// being truncated away.
func ProjectedEnd(dob time.Time, lifespan float64) time.Time {
	lifespan = sanitizeNumber(lifespan)
	whole := math.Floor(lifespan)
	end := dob.AddDate(int(whole), 0, 0)
	frac := lifespan - whole
	return end.Add(time.Duration(frac * daysPerYear * secondsPerDay * float64(time.Second)))
}

// TimeLeft breaks the span between now and the projected end into years of
// 365.25 days and the remaining days, hours, minutes and seconds. A past end
// yields a zero countdown with Expired set.
func TimeLeft(dob time.Time, lifespan float64, now time.Time) Countdown {
	remaining := ProjectedEnd(dob, lifespan).Sub(now)
	if remaining <= 0 {
		return Countdown{Expired: true}
	}
	total := int64(remaining / time.Second)

	years := int64(math.Floor(float64(total) / secondsPerYear))
	rest := total - int64(float64(years)*secondsPerYear)

	c := Countdown{Years: years}
	c.Days = rest / secondsPerDay
	rest %= secondsPerDay
	c.Hours = rest / 3600
	rest %= 3600
	c.Minutes = rest / 60
	c.Seconds = rest % 60
	return c
}
