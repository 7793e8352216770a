// Package pleno grants and revokes the one-time credit earned by completing
// every item of a collection.
//
// Weekly and monthly collections are credited automatically (Reconcile).
// Daily, projects, wheel and billetes collections go through Machine: the
// toggle that fills the round is applied optimistically and then has to be
// confirmed or cancelled.
package pleno

import (
	"errors"
	"fmt"

	"github.com/agusx1211/warrior/internal/snapshot"
)

var (
	// ErrAwaitingConfirmation is returned by Toggle while a round waits to be
	// confirmed or cancelled.
	ErrAwaitingConfirmation = errors.New("pleno awaiting confirmation")
	// ErrNotAwaiting is returned by Confirm and Cancel when nothing is pending.
	ErrNotAwaiting = errors.New("no pleno awaiting confirmation")
	// ErrUnknownItem is returned when an item or sub-item id does not exist.
	ErrUnknownItem = errors.New("unknown item")
)

// Outcome is the result of a toggle.
type Outcome int

const (
	// Applied means the toggle is final.
	Applied Outcome = iota
	// AwaitingConfirmation means the toggle filled an interactive round and
	// Confirm or Cancel must follow.
	AwaitingConfirmation
)

func (o Outcome) String() string {
	if o == AwaitingConfirmation {
		return "awaiting_confirmation"
	}
	return "applied"
}

// Pending is the toggle an interactive round is waiting on.
type Pending struct {
	Collection snapshot.Collection
	ItemID     string

	before snapshot.CycleItem
}

// Decision is what Toggle did.
type Decision struct {
	Outcome  Outcome
	Snapshot snapshot.Snapshot
	// Claim is set for auto collections.
	Claim Change
	// Completed is the toggled item's new state.
	Completed bool
}

// Machine is the Idle / AwaitingConfirmation state of interactive claims.
// The zero value is Idle.
type Machine struct {
	pending *Pending
}

// Pending returns the outstanding toggle, if any.
func (m *Machine) Pending() (Pending, bool) {
	if m.pending == nil {
		return Pending{}, false
	}
	return *m.pending, true
}

// Awaiting reports whether a confirmation is outstanding.
func (m *Machine) Awaiting() bool { return m.pending != nil }

// Toggle flips one item of collection c and applies the collection's claim
// policy. s is never modified.
func (m *Machine) Toggle(s snapshot.Snapshot, c snapshot.Collection, itemID string) (Decision, error) {
	if m.pending != nil {
		return Decision{}, fmt.Errorf("%w: %s/%s", ErrAwaitingConfirmation, m.pending.Collection, m.pending.ItemID)
	}
	p, err := PolicyFor(c)
	if err != nil {
		return Decision{}, err
	}
	out := s.Clone()
	items, err := out.Items(c)
	if err != nil {
		return Decision{}, err
	}
	idx := snapshot.IndexOf(*items, itemID)
	if idx < 0 {
		return Decision{}, fmt.Errorf("%w: %s/%s", ErrUnknownItem, c, itemID)
	}
	it := &(*items)[idx]
	if it.Spacer {
		return Decision{}, fmt.Errorf("%w: %s/%s is a spacer", ErrUnknownItem, c, itemID)
	}
	before := snapshot.CloneItems([]snapshot.CycleItem{*it})[0]

	it.Completed = !it.Completed
	it.FailedPreviousDay = false
	if p.TracksDots {
		it.PlenoDot = it.Completed
	}
	d := Decision{Outcome: Applied, Snapshot: out, Completed: it.Completed}

	switch p.Style {
	case StyleAuto:
		d.Claim, err = Reconcile(&d.Snapshot, c)
		if err != nil {
			return Decision{}, err
		}
	case StyleInteractive:
		if it.Completed && p.Full(*items) {
			m.pending = &Pending{Collection: c, ItemID: itemID, before: before}
			d.Outcome = AwaitingConfirmation
		}
	}
	return d, nil
}

// Confirm grants the pending round's credit and starts a new round.
func (m *Machine) Confirm(s snapshot.Snapshot) (snapshot.Snapshot, error) {
	if m.pending == nil {
		return s, ErrNotAwaiting
	}
	pending := *m.pending
	p, err := PolicyFor(pending.Collection)
	if err != nil {
		return s, err
	}
	out := s.Clone()
	items, err := out.Items(pending.Collection)
	if err != nil {
		return s, err
	}

	if counter := out.Stats.Counter(p.Counter); counter != nil {
		*counter++
	}
	for i := range *items {
		it := &(*items)[i]
		it.PlenoDot = false
		switch {
		case p.ResetTriggerItemOnConfirm:
			it.Completed = false
		case it.ID == pending.ItemID:
			it.Completed = true
		}
	}
	m.pending = nil
	return out, nil
}

// Cancel reverts the pending toggle. Every other field is left as it was.
func (m *Machine) Cancel(s snapshot.Snapshot) (snapshot.Snapshot, error) {
	if m.pending == nil {
		return s, ErrNotAwaiting
	}
	pending := *m.pending
	out := s.Clone()
	items, err := out.Items(pending.Collection)
	if err != nil {
		return s, err
	}
	if idx := snapshot.IndexOf(*items, pending.ItemID); idx >= 0 {
		(*items)[idx] = snapshot.CloneItems([]snapshot.CycleItem{pending.before})[0]
	}
	m.pending = nil
	return out, nil
}
