// Package normalize turns a snapshot persisted by any earlier version into a
// structurally complete one.
package normalize

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
)

// labelRenames maps retired default labels to their current text, per list.
var labelRenames = map[snapshot.Collection]map[string]string{
	snapshot.Daily:    {"1 FAH 🚫🍰": "1 FAH 🍰"},
	snapshot.Projects: {"Trivium 10p": "Trivium 🎓 10p"},
}

// Normalize fills every missing field of p with its default. It never fails
// and Normalize(AsPartial(Normalize(p, now)), now) equals Normalize(p, now).
// now is only used for reset instants that were never recorded.
func Normalize(p snapshot.Partial, now time.Time) snapshot.Snapshot {
	s := p.Snapshot.Clone()
	at := now.UTC()

	s.LastWeeklyReset = instantOr(s.LastWeeklyReset, at)
	s.LastMonthlyReset = instantOr(s.LastMonthlyReset, at)

	// Daily.
	if s.Daily.Items == nil {
		s.Daily.Items = snapshot.DefaultDaily()
	}
	s.Daily.Items = normalizeItems(s.Daily.Items, labelRenames[snapshot.Daily])
	for i := range s.Daily.Items {
		if s.Daily.Items[i].Label == snapshot.SpacerLabel {
			s.Daily.Items[i].Spacer = true
		}
	}
	if s.Daily.History == nil {
		s.Daily.History = map[string][]string{}
	}
	for k, ids := range s.Daily.History {
		if ids == nil {
			s.Daily.History[k] = []string{}
		}
	}

	// Weekly and monthly.
	if s.Weekly.Items == nil {
		s.Weekly.Items = snapshot.DefaultWeekly()
	}
	s.Weekly.Items = normalizeItems(s.Weekly.Items, nil)
	s.Weekly.History = boundHistory(s.Weekly.History, snapshot.WeeklyHistoryCap)

	if s.Monthly.Items == nil {
		s.Monthly.Items = snapshot.DefaultMonthly()
	}
	s.Monthly.Items = normalizeItems(s.Monthly.Items, nil)
	s.Monthly.History = boundHistory(s.Monthly.History, snapshot.MonthlyHistoryCap)

	if s.Annual.Items == nil {
		s.Annual.Items = snapshot.DefaultAnnual()
	}
	s.Annual.Items = normalizeItems(s.Annual.Items, nil)

	// Reward shelves: an emptied or never populated list is repopulated,
	// anything else is the user's and stays as is.
	if len(s.Projects) == 0 {
		s.Projects = snapshot.DefaultProjects()
	}
	s.Projects = normalizeItems(s.Projects, labelRenames[snapshot.Projects])
	if len(s.Forjas) == 0 {
		s.Forjas = snapshot.DefaultForjas()
	}
	if s.Leones == nil {
		s.Leones = []snapshot.Resource{}
	}

	if s.Billetes == nil {
		s.Billetes = snapshot.DefaultBilletes()
	}
	s.Billetes = normalizeItems(s.Billetes, nil)

	// People.
	if s.People == nil {
		s.People = []snapshot.Person{}
	}
	for i := range s.People {
		person := &s.People[i]
		if person.Interactions == nil {
			person.Interactions = snapshot.DefaultInteractions()
		}
		if person.Tasks == nil {
			person.Tasks = []snapshot.PersonTask{}
		}
		person.LastInteraction = person.LastInteraction.UTC()
	}

	// Stats.
	s.Stats.InteractionHistory = boundHistory(s.Stats.InteractionHistory, snapshot.InteractionHistoryCap)
	if !p.HasInteractionBaseline {
		s.Stats.LastInteractionTotal = social.Total(s.People)
	}
	for _, c := range snapshot.Counters {
		if v := s.Stats.Counter(c); *v < 0 {
			*v = 0
		}
	}

	normalizeFood(&s.Food, at)
	normalizeExercise(&s.Exercise)
	return s
}

func instantOr(t, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t.UTC()
}

func boundHistory(h snapshot.History, limit int) snapshot.History {
	if h == nil {
		return snapshot.History{}
	}
	if len(h) > limit {
		return append(snapshot.History{}, h[len(h)-limit:]...)
	}
	return h
}

// normalizeItems applies label renames and canonicalizes empty sub-item lists
// to nil so the result survives an encode/decode round trip unchanged.
func normalizeItems(items []snapshot.CycleItem, renames map[string]string) []snapshot.CycleItem {
	for i := range items {
		if len(items[i].SubItems) == 0 {
			items[i].SubItems = nil
		}
		if renames == nil {
			continue
		}
		label := norm.NFC.String(items[i].Label)
		for from, to := range renames {
			if label == norm.NFC.String(from) {
				items[i].Label = to
				break
			}
		}
	}
	return items
}

func normalizeFood(f *snapshot.Food, at time.Time) {
	f.LastWeeklyReset = instantOr(f.LastWeeklyReset, at)
	f.Score = clamp(f.Score, 0, food.MaxScore)
	if f.FridgeCount < 0 {
		f.FridgeCount = 0
	}
	if f.RitualCount < 0 {
		f.RitualCount = 0
	}
	if f.Wheel == nil {
		f.Wheel = snapshot.DefaultWheel()
	}
	f.Wheel = normalizeItems(f.Wheel, nil)
	if f.Bonuses == nil {
		f.Bonuses = snapshot.DefaultBonuses()
	}
	for _, k := range snapshot.BonusKinds {
		if _, ok := f.Bonuses[k]; !ok {
			f.Bonuses[k] = false
		}
	}
	if f.Log == nil {
		f.Log = []snapshot.FoodEntry{}
	}
	if len(f.Log) > food.MaxLog {
		f.Log = f.Log[:food.MaxLog]
	}
	for i := range f.Log {
		f.Log[i].At = f.Log[i].At.UTC()
	}
}

func normalizeExercise(e *snapshot.Exercise) {
	e.SeriesCurrent = clamp(e.SeriesCurrent, 0, exercise.MaxSeries)
	for _, v := range []*int{&e.DaysTrained, &e.TotalMinutes, &e.SprintCount, &e.StretchCount} {
		if *v < 0 {
			*v = 0
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
