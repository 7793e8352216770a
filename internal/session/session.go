// Package session is the running application: it loads the snapshot once,
// rolls it over the calendar, routes every action through the pleno claim
// machine and persists the result.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/debug"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/normalize"
	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/reset"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
	"github.com/agusx1211/warrior/internal/store"
)

// ErrUnknownPerson is returned for a person id that does not exist.
var ErrUnknownPerson = social.ErrUnknownPerson

// Session owns the working snapshot. While a pleno round awaits
// confirmation nothing is persisted and every action other than Confirm and
// Cancel fails with pleno.ErrAwaitingConfirmation.
type Session struct {
	mu      sync.Mutex
	store   store.Store
	clock   clock.Clock
	snap    snapshot.Snapshot
	machine pleno.Machine
}

// Open runs the startup pipeline: load, normalize, apply resets, save. An
// absent or corrupt payload starts from defaults.
func Open(ctx context.Context, st store.Store, clk clock.Clock) (*Session, error) {
	now := clk.Now()
	p, ok, err := store.LoadSnapshot(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		p = snapshot.AsPartial(snapshot.Default(now))
	}
	snap, res := reset.Apply(normalize.Normalize(p, now), now)
	logResets(res)

	s := &Session{store: st, clock: clk, snap: snap}
	if err := store.SaveSnapshot(ctx, st, snap); err != nil {
		return nil, err
	}
	debug.LogKV("session", "opened", "day", snap.LastDailyResetKey, "restored", ok)
	return s, nil
}

// Close releases the store.
func (s *Session) Close() error {
	return s.store.Close()
}

// Snapshot returns a copy of the working snapshot.
func (s *Session) Snapshot() snapshot.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Now is the session clock's current instant.
func (s *Session) Now() time.Time { return s.clock.Now() }

// Pending returns the toggle awaiting confirmation, if any.
func (s *Session) Pending() (pleno.Pending, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Pending()
}

// Refresh re-applies the calendar boundaries with the current time, for
// sessions that stay open across midnight. It does nothing while a round
// awaits confirmation.
func (s *Session) Refresh(ctx context.Context) (reset.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.machine.Awaiting() {
		return reset.Result{}, nil
	}
	next, res := reset.Apply(s.snap, s.clock.Now())
	if len(res.Crossed) == 0 {
		return res, nil
	}
	logResets(res)
	return res, s.commit(ctx, next)
}

// Toggle flips one item. An interactive collection whose round becomes
// full is left awaiting Confirm or Cancel; the optimistic toggle is visible
// in Snapshot but not persisted yet.
func (s *Session) Toggle(ctx context.Context, c snapshot.Collection, itemID string) (pleno.Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.machine.Toggle(s.snap, c, itemID)
	if err != nil {
		return pleno.Decision{}, err
	}
	debug.LogKV("session", "toggled", "collection", c, "item", itemID, "completed", d.Completed, "outcome", d.Outcome, "claim", d.Claim)
	if d.Outcome == pleno.AwaitingConfirmation {
		s.snap = d.Snapshot
		return d, nil
	}
	next := d.Snapshot
	if c == snapshot.Daily {
		next = syncDailyHistory(next, s.clock.Now())
	}
	d.Snapshot = next
	return d, s.commit(ctx, next)
}

// ToggleSub flips a sub-item of a monthly or annual item.
func (s *Session) ToggleSub(ctx context.Context, c snapshot.Collection, itemID, subID string) error {
	return s.mutate(ctx, "sub-item toggled", func(snap snapshot.Snapshot, _ time.Time) (snapshot.Snapshot, error) {
		return pleno.ToggleSub(snap, c, itemID, subID)
	})
}

// Confirm grants the pending round and persists the result.
func (s *Session) Confirm(ctx context.Context) (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.machine.Pending()
	if !ok {
		return s.snap.Clone(), pleno.ErrNotAwaiting
	}
	next, err := s.machine.Confirm(s.snap)
	if err != nil {
		return s.snap.Clone(), err
	}
	now := s.clock.Now()
	switch pending.Collection {
	case snapshot.Daily:
		next = syncDailyHistory(next, now)
	case snapshot.Wheel:
		next.Food = food.AwardWheel(next.Food, now)
	}
	debug.LogKV("session", "pleno confirmed", "collection", pending.Collection, "item", pending.ItemID)
	return next.Clone(), s.resolve(ctx, next)
}

// Cancel reverts the pending toggle and persists the restored state.
func (s *Session) Cancel(ctx context.Context) (snapshot.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, ok := s.machine.Pending()
	if !ok {
		return s.snap.Clone(), pleno.ErrNotAwaiting
	}
	next, err := s.machine.Cancel(s.snap)
	if err != nil {
		return s.snap.Clone(), err
	}
	debug.LogKV("session", "pleno cancelled", "collection", pending.Collection, "item", pending.ItemID)
	return next.Clone(), s.resolve(ctx, next)
}

// Restore replaces the working snapshot with a previously exported payload.
// Unlike startup, a payload that does not decode is an error.
func (s *Session) Restore(ctx context.Context, data []byte) error {
	p, err := snapshot.Decode(data)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "snapshot restored", func(_ snapshot.Snapshot, now time.Time) (snapshot.Snapshot, error) {
		next, res := reset.Apply(normalize.Normalize(p, now), now)
		logResets(res)
		return next, nil
	})
}

// mutate applies fn to the working snapshot and persists the result.
func (s *Session) mutate(ctx context.Context, what string, fn func(snapshot.Snapshot, time.Time) (snapshot.Snapshot, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.machine.Pending(); ok {
		return fmt.Errorf("%w: %s/%s", pleno.ErrAwaitingConfirmation, p.Collection, p.ItemID)
	}
	next, err := fn(s.snap.Clone(), s.clock.Now())
	if err != nil {
		return err
	}
	debug.Log("session", what)
	return s.commit(ctx, next)
}

// commit saves next and only then makes it the working snapshot.
func (s *Session) commit(ctx context.Context, next snapshot.Snapshot) error {
	if err := store.SaveSnapshot(ctx, s.store, next); err != nil {
		return err
	}
	s.snap = next
	return nil
}

// resolve makes the outcome of a confirm or cancel the working snapshot. The
// machine is idle by then, so the outcome is kept even when the save fails
// and the next successful save carries it.
func (s *Session) resolve(ctx context.Context, next snapshot.Snapshot) error {
	s.snap = next
	if err := store.SaveSnapshot(ctx, s.store, next); err != nil {
		debug.LogKV("session", "resolution not saved", "error", err)
		return err
	}
	return nil
}

func logResets(res reset.Result) {
	for _, b := range res.Crossed {
		debug.LogKV("reset", "boundary crossed", "boundary", b)
	}
}
