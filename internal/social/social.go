// Package social tracks interactions with people and derives the monthly
// interaction deltas kept in the stats history.
package social

import (
	"errors"
	"fmt"
	"time"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// ErrUnknownPerson is returned when no person has the requested id.
var ErrUnknownPerson = errors.New("unknown person")

// Total sums every interaction sub-counter of every person.
func Total(people []snapshot.Person) int {
	total := 0
	for _, p := range people {
		for _, n := range p.Interactions {
			total += n
		}
	}
	return total
}

// MonthlyDelta returns how many interactions happened since lastTotal was
// recorded. A total that went down (a person was deleted) yields 0.
func MonthlyDelta(people []snapshot.Person, lastTotal int) int {
	return max(0, Total(people)-lastTotal)
}

// Record increments one interaction kind for a person and stamps the time.
// people is not modified; the returned slice is a copy.
func Record(people []snapshot.Person, personID, kind string, now time.Time) ([]snapshot.Person, error) {
	idx := indexOf(people, personID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPerson, personID)
	}
	if kind == "" {
		return nil, fmt.Errorf("interaction kind is required")
	}
	out := clonePeople(people)
	p := &out[idx]
	if p.Interactions == nil {
		p.Interactions = snapshot.DefaultInteractions()
	}
	p.Interactions[kind]++
	p.LastInteraction = now.UTC()
	return out, nil
}

// PersonTotal sums one person's counters.
func PersonTotal(p snapshot.Person) int {
	return Total([]snapshot.Person{p})
}

// DaysSince counts calendar days between last and now in now's location.
// A zero last means never and returns -1.
func DaysSince(last, now time.Time) int {
	if last.IsZero() {
		return -1
	}
	last = last.In(now.Location())
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	from := time.Date(ly, lm, ld, 12, 0, 0, 0, time.UTC)
	to := time.Date(ny, nm, nd, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func indexOf(people []snapshot.Person, id string) int {
	for i := range people {
		if people[i].ID == id {
			return i
		}
	}
	return -1
}

func clonePeople(people []snapshot.Person) []snapshot.Person {
	s := snapshot.Snapshot{People: people}
	return s.Clone().People
}
