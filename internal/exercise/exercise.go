// Package exercise keeps the training log: series within a day, completed
// training days, minutes and the sprint and stretch tallies.
package exercise

import (
	"errors"
	"fmt"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// SeriesPerDay is the number of series that completes a training day.
const SeriesPerDay = 9

// MaxSeries is the highest pending series count; the next one closes the day.
const MaxSeries = SeriesPerDay - 1

var ErrUnknownTally = errors.New("unknown exercise tally")

// AddSeries counts one series. The ninth closes the day.
func AddSeries(e snapshot.Exercise) snapshot.Exercise {
	if e.SeriesCurrent+1 >= SeriesPerDay {
		e.SeriesCurrent = 0
		e.DaysTrained++
		return e
	}
	e.SeriesCurrent++
	return e
}

// RemoveSeries takes one series back, never below zero.
func RemoveSeries(e snapshot.Exercise) snapshot.Exercise {
	e.SeriesCurrent = max(0, e.SeriesCurrent-1)
	return e
}

// AddMinutes records training time. Non-positive amounts are ignored.
func AddMinutes(e snapshot.Exercise, minutes int) snapshot.Exercise {
	if minutes > 0 {
		e.TotalMinutes += minutes
	}
	return e
}

// Bump increments the "sprint" or "stretch" tally.
func Bump(e snapshot.Exercise, tally string) (snapshot.Exercise, error) {
	switch tally {
	case "sprint":
		e.SprintCount++
	case "stretch":
		e.StretchCount++
	default:
		return e, fmt.Errorf("%w: %q", ErrUnknownTally, tally)
	}
	return e, nil
}

// TotalSeries is every series ever done.
func TotalSeries(e snapshot.Exercise) int {
	return e.DaysTrained*SeriesPerDay + e.SeriesCurrent
}

// FormatMinutes renders a duration as "2h 05m" or "45m".
func FormatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}
