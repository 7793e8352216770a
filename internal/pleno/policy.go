package pleno

import (
	"fmt"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// Style is how a collection grants its pleno credit.
type Style int

const (
	// StyleNone collections have no pleno credit.
	StyleNone Style = iota
	// StyleAuto collections are credited as soon as they are full and at
	// their reset boundary, sharing one claimed flag.
	StyleAuto
	// StyleInteractive collections ask the user to confirm a full round.
	StyleInteractive
)

func (s Style) String() string {
	switch s {
	case StyleAuto:
		return "auto"
	case StyleInteractive:
		return "interactive"
	default:
		return "none"
	}
}

// Policy is the claim configuration of one collection.
type Policy struct {
	Collection snapshot.Collection
	Style      Style
	Counter    snapshot.Counter

	// ResetTriggerItemOnConfirm resets every item, the trigger included, when
	// a round is confirmed. When false the trigger stays completed and only
	// the per-item dots are cleared.
	ResetTriggerItemOnConfirm bool

	// TracksDots evaluates fullness on PlenoDot instead of Completed.
	TracksDots bool
}

var policies = map[snapshot.Collection]Policy{
	snapshot.Daily: {
		Collection: snapshot.Daily,
		Style:      StyleInteractive,
		Counter:    snapshot.CounterDailyPleno,
		TracksDots: true,
	},
	snapshot.Weekly: {
		Collection: snapshot.Weekly,
		Style:      StyleAuto,
		Counter:    snapshot.CounterPerfectWeekly,
	},
	snapshot.Monthly: {
		Collection: snapshot.Monthly,
		Style:      StyleAuto,
		Counter:    snapshot.CounterPerfectMonthly,
	},
	snapshot.Annual: {
		Collection: snapshot.Annual,
		Style:      StyleNone,
	},
	snapshot.Projects: {
		Collection:                snapshot.Projects,
		Style:                     StyleInteractive,
		Counter:                   snapshot.CounterAdHocPleno,
		ResetTriggerItemOnConfirm: true,
	},
	snapshot.Wheel: {
		Collection:                snapshot.Wheel,
		Style:                     StyleInteractive,
		Counter:                   snapshot.CounterWheelPleno,
		ResetTriggerItemOnConfirm: true,
	},
	snapshot.Billetes: {
		Collection:                snapshot.Billetes,
		Style:                     StyleInteractive,
		Counter:                   snapshot.CounterHucha,
		ResetTriggerItemOnConfirm: true,
	},
}

// PolicyFor returns the claim policy of c.
func PolicyFor(c snapshot.Collection) (Policy, error) {
	p, ok := policies[c]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", snapshot.ErrUnknownCollection, c)
	}
	return p, nil
}

// Full reports whether items complete a round under p.
func (p Policy) Full(items []snapshot.CycleItem) bool {
	if !p.TracksDots {
		return snapshot.AllCompleted(items)
	}
	seen := false
	for _, it := range items {
		if it.Spacer {
			continue
		}
		if !it.PlenoDot {
			return false
		}
		seen = true
	}
	return seen
}
