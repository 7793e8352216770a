// Package reset rolls the snapshot over the daily, weekly, monthly and annual
// calendar boundaries.
package reset

import (
	"time"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
)

// Boundary names a calendar boundary that ApplyResets may cross.
type Boundary string

const (
	Day      Boundary = "daily"
	Week     Boundary = "weekly"
	FoodWeek Boundary = "food_weekly"
	Month    Boundary = "monthly"
	Year     Boundary = "annual"
)

// Result reports which boundaries fired during one ApplyResets call.
type Result struct {
	Crossed []Boundary
}

// Fired reports whether b was crossed.
func (r Result) Fired(b Boundary) bool {
	for _, c := range r.Crossed {
		if c == b {
			return true
		}
	}
	return false
}

// ApplyResets returns s rolled forward to now. It is a pure function of its
// arguments; calling it again with an instant in the same day, week, month
// and year returns an equal snapshot. now should carry the user's location.
func ApplyResets(s snapshot.Snapshot, now time.Time) snapshot.Snapshot {
	out, _ := Apply(s, now)
	return out
}

// Apply is ApplyResets that also reports which boundaries fired.
func Apply(s snapshot.Snapshot, now time.Time) (snapshot.Snapshot, Result) {
	out := s.Clone()
	var res Result

	if rollDaily(&out, now) {
		res.Crossed = append(res.Crossed, Day)
	}
	if rollWeekly(&out, now) {
		res.Crossed = append(res.Crossed, Week)
	}
	if rollFoodWeekly(&out, now) {
		res.Crossed = append(res.Crossed, FoodWeek)
	}

	// The annual check reads the stored monthly instant, which the monthly
	// rollover advances, so it is decided first.
	yearCrossed := now.Year() > out.LastMonthlyReset.In(now.Location()).Year()
	if rollMonthly(&out, now) {
		res.Crossed = append(res.Crossed, Month)
	}
	if yearCrossed {
		resetAll(out.Annual.Items)
		res.Crossed = append(res.Crossed, Year)
	}
	return out, res
}

func rollDaily(s *snapshot.Snapshot, now time.Time) bool {
	today := clock.DayKey(now)
	if s.LastDailyResetKey == today {
		return false
	}
	if s.LastDailyResetKey != "" {
		if s.Daily.History == nil {
			s.Daily.History = map[string][]string{}
		}
		s.Daily.History[s.LastDailyResetKey] = snapshot.CompletedIDs(s.Daily.Items)
	}
	for i := range s.Daily.Items {
		it := &s.Daily.Items[i]
		it.FailedPreviousDay = !it.Completed && !it.Spacer
		it.Completed = false
		it.PlenoDot = false
	}
	s.LastDailyResetKey = today
	return true
}

func rollWeekly(s *snapshot.Snapshot, now time.Time) bool {
	if !s.LastWeeklyReset.Before(clock.StartOfWeek(now)) {
		return false
	}
	closeBoundedCycle(&s.Weekly, &s.Stats.PerfectWeeklyCount, snapshot.WeeklyHistoryCap)
	s.LastWeeklyReset = now.UTC()
	return true
}

func rollFoodWeekly(s *snapshot.Snapshot, now time.Time) bool {
	if !s.Food.LastWeeklyReset.Before(clock.StartOfWeek(now)) {
		return false
	}
	s.Food.Score = 0
	for k := range s.Food.Bonuses {
		s.Food.Bonuses[k] = false
	}
	s.Food.LastWeeklyReset = now.UTC()
	return true
}

func rollMonthly(s *snapshot.Snapshot, now time.Time) bool {
	if !clock.MonthAfter(now, s.LastMonthlyReset) {
		return false
	}
	closeBoundedCycle(&s.Monthly, &s.Stats.PerfectMonthlyCount, snapshot.MonthlyHistoryCap)

	delta := social.MonthlyDelta(s.People, s.Stats.LastInteractionTotal)
	s.Stats.InteractionHistory = s.Stats.InteractionHistory.Push(delta, snapshot.InteractionHistoryCap)
	s.Stats.LastInteractionTotal = social.Total(s.People)

	s.LastMonthlyReset = now.UTC()
	return true
}

// closeBoundedCycle credits an unclaimed full cycle (an empty one included),
// archives the completed count and starts the next cycle. A cycle already claimed instantly is not
// credited again.
func closeBoundedCycle(c *snapshot.BoundedCycle, counter *int, limit int) {
	if snapshot.ClosesPerfect(c.Items) && !c.PlenoClaimed {
		*counter++
	}
	c.History = c.History.Push(snapshot.CountCompleted(c.Items), limit)
	resetAll(c.Items)
	c.PlenoClaimed = false
}

func resetAll(items []snapshot.CycleItem) {
	for i := range items {
		items[i].Completed = false
		for j := range items[i].SubItems {
			items[i].SubItems[j].Completed = false
		}
	}
}
