package pleno

import (
	"fmt"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// Change reports what an automatic re-evaluation did to the claim.
type Change int

const (
	Unchanged Change = iota
	Granted
	Revoked
)

func (c Change) String() string {
	switch c {
	case Granted:
		return "granted"
	case Revoked:
		return "revoked"
	default:
		return "unchanged"
	}
}

func boundedCycle(s *snapshot.Snapshot, c snapshot.Collection) (*snapshot.BoundedCycle, error) {
	switch c {
	case snapshot.Weekly:
		return &s.Weekly, nil
	case snapshot.Monthly:
		return &s.Monthly, nil
	}
	return nil, fmt.Errorf("%w: %q has no automatic claim", snapshot.ErrUnknownCollection, c)
}

// Reconcile grants the credit of an auto collection that became full and
// revokes it from one that stopped being full. The claimed flag is the only
// record of the grant, so the reset boundary never counts it twice.
func Reconcile(s *snapshot.Snapshot, c snapshot.Collection) (Change, error) {
	p, err := PolicyFor(c)
	if err != nil {
		return Unchanged, err
	}
	cycle, err := boundedCycle(s, c)
	if err != nil {
		return Unchanged, err
	}
	counter := s.Stats.Counter(p.Counter)
	full := p.Full(cycle.Items)
	switch {
	case full && !cycle.PlenoClaimed:
		*counter++
		cycle.PlenoClaimed = true
		return Granted, nil
	case !full && cycle.PlenoClaimed:
		*counter = max(0, *counter-1)
		cycle.PlenoClaimed = false
		return Revoked, nil
	}
	return Unchanged, nil
}

// ToggleSub flips a sub-item of a monthly or annual item. Sub-items never
// affect the parent's completion or any claim.
func ToggleSub(s snapshot.Snapshot, c snapshot.Collection, itemID, subID string) (snapshot.Snapshot, error) {
	out := s.Clone()
	items, err := out.Items(c)
	if err != nil {
		return s, err
	}
	idx := snapshot.IndexOf(*items, itemID)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s/%s", ErrUnknownItem, c, itemID)
	}
	subs := (*items)[idx].SubItems
	for i := range subs {
		if subs[i].ID == subID {
			subs[i].Completed = !subs[i].Completed
			return out, nil
		}
	}
	return s, fmt.Errorf("%w: %s/%s/%s", ErrUnknownItem, c, itemID, subID)
}
