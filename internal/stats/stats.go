// Package stats derives the figures shown on the stats board from a
// snapshot. Nothing here mutates state.
package stats

import (
	"sort"
	"time"

	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
)

// Chart window sizes: past entries shown plus the running period.
const (
	WeeklyWindow      = 10
	MonthlyWindow     = 6
	InteractionWindow = 6
)

// Progress is done out of total for one collection.
type Progress struct {
	Done  int
	Total int
}

// Percent is Done/Total in [0, 100]; an empty collection is 0.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// Summary is the stats board.
type Summary struct {
	PerfectWeekly  int
	PerfectMonthly int
	DailyPleno     int
	AdHocPleno     int
	WheelPleno     int
	Hucha          int

	Daily   Progress
	Weekly  Progress
	Monthly Progress
	Annual  Progress

	InteractionsThisMonth int
	FoodScore             int
	DaysTrained           int
	TotalSeries           int
	TrainingTime          string
}

// Summarize computes the stats board of s.
func Summarize(s snapshot.Snapshot) Summary {
	return Summary{
		PerfectWeekly:         DisplayedScore(s.Stats.PerfectWeeklyCount, s.Weekly),
		PerfectMonthly:        DisplayedScore(s.Stats.PerfectMonthlyCount, s.Monthly),
		DailyPleno:            s.Stats.DailyPlenoCount,
		AdHocPleno:            s.Stats.AdHocPlenoCount,
		WheelPleno:            s.Stats.WheelPlenoCount,
		Hucha:                 s.Stats.HuchaCount,
		Daily:                 ProgressOf(s.Daily.Items),
		Weekly:                ProgressOf(s.Weekly.Items),
		Monthly:               ProgressOf(s.Monthly.Items),
		Annual:                ProgressOf(s.Annual.Items),
		InteractionsThisMonth: social.MonthlyDelta(s.People, s.Stats.LastInteractionTotal),
		FoodScore:             s.Food.Score,
		DaysTrained:           s.Exercise.DaysTrained,
		TotalSeries:           exercise.TotalSeries(s.Exercise),
		TrainingTime:          exercise.FormatMinutes(s.Exercise.TotalMinutes),
	}
}

// DisplayedScore adds the running cycle to counted when it is full but its
// claim has not been recorded yet.
func DisplayedScore(counted int, c snapshot.BoundedCycle) int {
	if snapshot.ClosesPerfect(c.Items) && !c.PlenoClaimed {
		return counted + 1
	}
	return counted
}

// ProgressOf counts completed items, ignoring spacers.
func ProgressOf(items []snapshot.CycleItem) Progress {
	var p Progress
	for _, it := range items {
		if it.Spacer {
			continue
		}
		p.Total++
		if it.Completed {
			p.Done++
		}
	}
	return p
}

// Window returns the last size-1 history entries followed by current,
// left-padded with zeros to exactly size entries.
func Window(history snapshot.History, current, size int) []int {
	if size <= 0 {
		return []int{}
	}
	past := history
	if len(past) > size-1 {
		past = past[len(past)-(size-1):]
	}
	out := make([]int, size)
	copy(out[size-1-len(past):], past)
	out[size-1] = current
	return out
}

// WeeklyChart is the completed weekly count of the last ten weeks.
func WeeklyChart(s snapshot.Snapshot) []int {
	return Window(s.Weekly.History, snapshot.CountCompleted(s.Weekly.Items), WeeklyWindow)
}

// MonthlyChart is the completed monthly count of the last six months.
func MonthlyChart(s snapshot.Snapshot) []int {
	return Window(s.Monthly.History, snapshot.CountCompleted(s.Monthly.Items), MonthlyWindow)
}

// InteractionChart is the interaction delta of the last six months.
func InteractionChart(s snapshot.Snapshot) []int {
	current := social.MonthlyDelta(s.People, s.Stats.LastInteractionTotal)
	return Window(s.Stats.InteractionHistory, current, InteractionWindow)
}

// ChartMax is the y-axis ceiling: the largest value, at least floor.
func ChartMax(values []int, floor int) int {
	m := floor
	for _, v := range values {
		m = max(m, v)
	}
	return m
}

// WeeklyChartStart is the first day shown by WeeklyChart.
func WeeklyChartStart(now time.Time) time.Time {
	return now.AddDate(0, 0, -7*(WeeklyWindow-1))
}

// MonthlyChartStart is the first month shown by the monthly charts.
func MonthlyChartStart(now time.Time) time.Month {
	m := int(now.Month()) - (MonthlyWindow - 1)
	if m <= 0 {
		m += 12
	}
	return time.Month(m)
}

// DayRecord is one archived day of the daily history.
type DayRecord struct {
	Day       string
	Completed []string
}

// DailyHistory returns archived days newest first, at most limit of them
// (all when limit <= 0).
func DailyHistory(s snapshot.Snapshot, limit int) []DayRecord {
	days := make([]DayRecord, 0, len(s.Daily.History))
	for day, ids := range s.Daily.History {
		days = append(days, DayRecord{Day: day, Completed: ids})
	}
	// Day keys are ISO dates so they sort chronologically as strings.
	sort.Slice(days, func(i, j int) bool { return days[i].Day > days[j].Day })
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days
}
