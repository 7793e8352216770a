package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/hexid"
	"github.com/agusx1211/warrior/internal/resource"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
)

// Resource shelves.
const (
	ShelfForjas = "forjas"
	ShelfLeones = "leones"
)

var ErrUnknownShelf = errors.New("unknown resource shelf")

// syncDailyHistory records the live daily completion under the day the items
// belong to.
func syncDailyHistory(s snapshot.Snapshot, now time.Time) snapshot.Snapshot {
	day := s.LastDailyResetKey
	if day == "" {
		day = clock.DayKey(now)
	}
	if s.Daily.History == nil {
		s.Daily.History = map[string][]string{}
	}
	s.Daily.History[day] = snapshot.CompletedIDs(s.Daily.Items)
	return s
}

// SetHistory overwrites the archived completion of a past or current day.
// Ids that are not daily items are dropped.
func (s *Session) SetHistory(ctx context.Context, day string, ids []string) error {
	if _, err := time.Parse(clock.DayKeyLayout, day); err != nil {
		return fmt.Errorf("invalid day %q: want YYYY-MM-DD", day)
	}
	return s.mutate(ctx, "history edited", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		kept := []string{}
		seen := map[string]bool{}
		for _, id := range ids {
			if seen[id] || snapshot.IndexOf(snap.Daily.Items, id) < 0 {
				continue
			}
			seen[id] = true
			kept = append(kept, id)
		}
		if snap.Daily.History == nil {
			snap.Daily.History = map[string][]string{}
		}
		snap.Daily.History[day] = kept
		if day == snap.LastDailyResetKey {
			for i := range snap.Daily.Items {
				it := &snap.Daily.Items[i]
				if !it.Spacer {
					it.Completed = seen[it.ID]
				}
			}
		}
		return snap, nil
	})
}

// AdjustStat corrects a pleno counter by delta, flooring it at zero, and
// returns the new value.
func (s *Session) AdjustStat(ctx context.Context, c snapshot.Counter, delta int) (int, error) {
	var value int
	err := s.mutate(ctx, "stat adjusted", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		v := snap.Stats.Counter(c)
		if v == nil {
			return snap, fmt.Errorf("%w: %q", snapshot.ErrUnknownCounter, c)
		}
		*v = max(0, *v+delta)
		value = *v
		return snap, nil
	})
	return value, err
}

// AddPerson starts tracking someone and returns the new record.
func (s *Session) AddPerson(ctx context.Context, name string) (snapshot.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return snapshot.Person{}, errors.New("name is required")
	}
	p := snapshot.Person{
		ID:           hexid.WithPrefix("person"),
		Name:         name,
		Interactions: snapshot.DefaultInteractions(),
		Tasks:        []snapshot.PersonTask{},
	}
	err := s.mutate(ctx, "person added", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		snap.People = append(snap.People, p)
		return snap, nil
	})
	return p, err
}

// RemovePerson stops tracking someone. The monthly delta absorbs the drop in
// the interaction total.
func (s *Session) RemovePerson(ctx context.Context, id string) error {
	return s.mutate(ctx, "person removed", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		idx := findPerson(snap.People, id)
		if idx < 0 {
			return snap, fmt.Errorf("%w: %q", ErrUnknownPerson, id)
		}
		snap.People = append(snap.People[:idx], snap.People[idx+1:]...)
		return snap, nil
	})
}

// Interact records one interaction of kind with a person.
func (s *Session) Interact(ctx context.Context, personID, kind string) error {
	return s.mutate(ctx, "interaction recorded", func(snap snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		people, err := social.Record(snap.People, personID, kind, now)
		if err != nil {
			return snap, err
		}
		snap.People = people
		return snap, nil
	})
}

// AddTask attaches a to-do to a person.
func (s *Session) AddTask(ctx context.Context, personID, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("task label is required")
	}
	return s.mutate(ctx, "person task added", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		idx := findPerson(snap.People, personID)
		if idx < 0 {
			return snap, fmt.Errorf("%w: %q", ErrUnknownPerson, personID)
		}
		snap.People[idx].Tasks = append(snap.People[idx].Tasks, snapshot.PersonTask{ID: hexid.WithPrefix("task"), Label: label})
		return snap, nil
	})
}

// DoneTask removes a finished to-do.
func (s *Session) DoneTask(ctx context.Context, personID, taskID string) error {
	return s.mutate(ctx, "person task done", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		idx := findPerson(snap.People, personID)
		if idx < 0 {
			return snap, fmt.Errorf("%w: %q", ErrUnknownPerson, personID)
		}
		tasks := snap.People[idx].Tasks
		for i := range tasks {
			if tasks[i].ID == taskID {
				snap.People[idx].Tasks = append(tasks[:i], tasks[i+1:]...)
				return snap, nil
			}
		}
		return snap, fmt.Errorf("unknown task %q", taskID)
	})
}

// FindPerson resolves a person by id or, case-insensitively, by name.
func (s *Session) FindPerson(ref string) (snapshot.Person, bool) {
	snap := s.Snapshot()
	if idx := findPerson(snap.People, ref); idx >= 0 {
		return snap.People[idx], true
	}
	for _, p := range snap.People {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}
	return snapshot.Person{}, false
}

func findPerson(people []snapshot.Person, id string) int {
	for i := range people {
		if people[i].ID == id {
			return i
		}
	}
	return -1
}

// FoodAction applies a one-tap nutrition action (cook, fast, delivery, fah).
func (s *Session) FoodAction(ctx context.Context, action string) error {
	return s.mutate(ctx, "food action", func(snap snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		f, err := food.Act(snap.Food, action, now)
		snap.Food = f
		return snap, err
	})
}

// FoodBonus toggles a weekly nutrition bonus.
func (s *Session) FoodBonus(ctx context.Context, kind string) error {
	return s.mutate(ctx, "food bonus", func(snap snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		f, err := food.ToggleBonus(snap.Food, kind, now)
		snap.Food = f
		return snap, err
	})
}

// FoodFridge counts a fridge check.
func (s *Session) FoodFridge(ctx context.Context) error {
	return s.mutate(ctx, "food fridge", func(snap snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		snap.Food = food.TickFridge(snap.Food, now)
		return snap, nil
	})
}

// FoodRitual counts a ritual.
func (s *Session) FoodRitual(ctx context.Context) error {
	return s.mutate(ctx, "food ritual", func(snap snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		snap.Food = food.TickRitual(snap.Food, now)
		return snap, nil
	})
}

// FoodRestart clears the nutrition board.
func (s *Session) FoodRestart(ctx context.Context) error {
	return s.mutate(ctx, "food restart", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		snap.Food = food.Restart(snap.Food)
		return snap, nil
	})
}

// Exercise applies one training log action: "series", "unseries",
// "sprint", "stretch" or "minutes" (with minutes > 0).
func (s *Session) Exercise(ctx context.Context, action string, minutes int) error {
	return s.mutate(ctx, "exercise "+action, func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		var err error
		switch action {
		case "series":
			snap.Exercise = exercise.AddSeries(snap.Exercise)
		case "unseries":
			snap.Exercise = exercise.RemoveSeries(snap.Exercise)
		case "minutes":
			snap.Exercise = exercise.AddMinutes(snap.Exercise, minutes)
		default:
			snap.Exercise, err = exercise.Bump(snap.Exercise, action)
		}
		return snap, err
	})
}

// AdjustResource moves a Forjas or Leones goal by delta.
func (s *Session) AdjustResource(ctx context.Context, shelf, id string, delta float64) error {
	return s.mutate(ctx, "resource adjusted", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		var list *[]snapshot.Resource
		switch strings.ToLower(shelf) {
		case ShelfForjas:
			list = &snap.Forjas
		case ShelfLeones:
			list = &snap.Leones
		default:
			return snap, fmt.Errorf("%w: %q", ErrUnknownShelf, shelf)
		}
		out, err := resource.AdjustIn(*list, id, delta)
		if err != nil {
			return snap, err
		}
		*list = out
		return snap, nil
	})
}
