package session

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/store"
)

var ctx = context.Background()

func open(t *testing.T, st *store.MemoryStore, at time.Time) (*Session, *clock.Fixed) {
	t.Helper()
	clk := &clock.Fixed{T: at}
	s, err := Open(ctx, st, clk)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s, clk
}

func wed(hour int) time.Time {
	return time.Date(2026, 10, 14, hour, 0, 0, 0, time.UTC)
}

func persisted(t *testing.T, st *store.MemoryStore) snapshot.Snapshot {
	t.Helper()
	p, ok, err := store.LoadSnapshot(ctx, st)
	if err != nil || !ok {
		t.Fatalf("LoadSnapshot ok=%v err=%v", ok, err)
	}
	return p.Snapshot
}

func TestOpenFreshStartsFromDefaults(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))

	snap := s.Snapshot()
	if snap.LastDailyResetKey != "2026-10-14" {
		t.Errorf("day key = %q", snap.LastDailyResetKey)
	}
	if len(snap.Daily.History) != 0 {
		t.Errorf("fresh start archived %v", snap.Daily.History)
	}
	if st.Saves() != 1 {
		t.Errorf("saves = %d, want 1", st.Saves())
	}
}

func TestOpenCorruptPayloadFallsBackToDefaults(t *testing.T) {
	st := store.NewMemoryStore()
	st.Seed([]byte("{not json"))
	s, _ := open(t, st, wed(9))
	if !reflect.DeepEqual(s.Snapshot(), snapshot.Default(wed(9))) {
		t.Error("corrupt payload did not yield the default snapshot")
	}
}

func TestOpenAppliesResets(t *testing.T) {
	st := store.NewMemoryStore()
	s, clk := open(t, st, wed(9))
	if _, err := s.Toggle(ctx, snapshot.Daily, "huno-0"); err != nil {
		t.Fatal(err)
	}

	clk.Advance(24 * time.Hour)
	s2, err := Open(ctx, st, clk)
	if err != nil {
		t.Fatal(err)
	}
	snap := s2.Snapshot()
	if got := snap.Daily.History["2026-10-14"]; !reflect.DeepEqual(got, []string{"huno-0"}) {
		t.Errorf("archived = %v, want [huno-0]", got)
	}
	if snap.Daily.Items[0].Completed || !snap.Daily.Items[1].FailedPreviousDay {
		t.Error("daily items not rolled over")
	}
	if !reflect.DeepEqual(persisted(t, st), snap) {
		t.Error("rolled-over snapshot not persisted")
	}
}

func TestToggleSyncsDailyHistory(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	if _, err := s.Toggle(ctx, snapshot.Daily, "huno-2"); err != nil {
		t.Fatal(err)
	}
	if got := persisted(t, st).Daily.History["2026-10-14"]; !reflect.DeepEqual(got, []string{"huno-2"}) {
		t.Errorf("history today = %v", got)
	}
}

func TestAwaitingIsNotPersistedUntilResolved(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))

	snap := s.Snapshot()
	last := snap.Projects[len(snap.Projects)-1].ID
	for _, it := range snap.Projects[:len(snap.Projects)-1] {
		if _, err := s.Toggle(ctx, snapshot.Projects, it.ID); err != nil {
			t.Fatal(err)
		}
	}
	saves := st.Saves()

	d, err := s.Toggle(ctx, snapshot.Projects, last)
	if err != nil {
		t.Fatal(err)
	}
	if d.Outcome != pleno.AwaitingConfirmation {
		t.Fatalf("outcome = %s", d.Outcome)
	}
	if st.Saves() != saves {
		t.Error("awaiting state was persisted")
	}
	if err := s.FoodAction(ctx, "cook"); !errors.Is(err, pleno.ErrAwaitingConfirmation) {
		t.Errorf("food action while awaiting: err = %v", err)
	}
	if _, err := s.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	out, err := s.Confirm(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Stats.AdHocPlenoCount != 1 {
		t.Errorf("adhoc pleno = %d", out.Stats.AdHocPlenoCount)
	}
	if got := persisted(t, st); got.Stats.AdHocPlenoCount != 1 || got.Projects[0].Completed {
		t.Error("confirmed round not persisted")
	}
	if _, ok := s.Pending(); ok {
		t.Error("still pending after confirm")
	}
}

func TestCancelPersistsRestoredState(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	snap := s.Snapshot()
	for _, it := range snap.Billetes[:len(snap.Billetes)-1] {
		if _, err := s.Toggle(ctx, snapshot.Billetes, it.ID); err != nil {
			t.Fatal(err)
		}
	}
	before := persisted(t, st)

	if _, err := s.Toggle(ctx, snapshot.Billetes, snap.Billetes[len(snap.Billetes)-1].ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Cancel(ctx); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(persisted(t, st), before) {
		t.Error("cancel did not restore the pre-toggle state")
	}
	if _, err := s.Cancel(ctx); !errors.Is(err, pleno.ErrNotAwaiting) {
		t.Errorf("second cancel: err = %v", err)
	}
}

func TestWheelConfirmAwardsFood(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	var d pleno.Decision
	var err error
	for _, id := range snapshot.WheelItems {
		d, err = s.Toggle(ctx, snapshot.Wheel, id)
		if err != nil {
			t.Fatal(err)
		}
	}
	if d.Outcome != pleno.AwaitingConfirmation {
		t.Fatalf("outcome = %s", d.Outcome)
	}
	out, err := s.Confirm(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.Food.Score != 3 || out.Stats.WheelPlenoCount != 1 {
		t.Errorf("score=%d wheel plenos=%d", out.Food.Score, out.Stats.WheelPlenoCount)
	}
	if out.Food.Log[0].Action != "wheel" {
		t.Errorf("log = %+v", out.Food.Log)
	}
}

func TestDailyConfirmSyncsHistory(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	var d pleno.Decision
	for _, it := range s.Snapshot().Daily.Items {
		if it.Spacer {
			continue
		}
		var err error
		if d, err = s.Toggle(ctx, snapshot.Daily, it.ID); err != nil {
			t.Fatal(err)
		}
	}
	if d.Outcome != pleno.AwaitingConfirmation {
		t.Fatalf("outcome = %s", d.Outcome)
	}
	out, err := s.Confirm(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := len(out.Daily.Items) - 1
	if got := len(persisted(t, st).Daily.History["2026-10-14"]); got != want {
		t.Errorf("history today has %d ids, want %d", got, want)
	}
	if out.Stats.DailyPlenoCount != 1 {
		t.Errorf("daily pleno = %d", out.Stats.DailyPlenoCount)
	}
}

func TestRefreshCrossesMidnight(t *testing.T) {
	st := store.NewMemoryStore()
	s, clk := open(t, st, wed(23))
	if _, err := s.Toggle(ctx, snapshot.Daily, "huno-0"); err != nil {
		t.Fatal(err)
	}
	clk.Advance(2 * time.Hour)
	res, err := s.Refresh(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Crossed) == 0 {
		t.Fatal("no boundary crossed")
	}
	if snap := s.Snapshot(); snap.LastDailyResetKey != "2026-10-15" || snap.Daily.Items[0].Completed {
		t.Errorf("refresh did not roll the day: %q", snap.LastDailyResetKey)
	}
	res, _ = s.Refresh(ctx)
	if len(res.Crossed) != 0 {
		t.Errorf("second refresh crossed %v", res.Crossed)
	}
}

func TestSetHistory(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	if err := s.SetHistory(ctx, "2026-10-10", []string{"huno-1", "bogus", "huno-1", "huno-4"}); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot().Daily.History["2026-10-10"]; !reflect.DeepEqual(got, []string{"huno-1", "huno-4"}) {
		t.Errorf("history = %v", got)
	}
	if err := s.SetHistory(ctx, "2026-10-14", []string{"huno-3"}); err != nil {
		t.Fatal(err)
	}
	if !s.Snapshot().Daily.Items[3].Completed {
		t.Error("editing today did not update the live items")
	}
	if err := s.SetHistory(ctx, "yesterday", nil); err == nil {
		t.Error("accepted a malformed day")
	}
}

func TestPeople(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))

	p, err := s.AddPerson(ctx, "  Ana ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Ana" {
		t.Errorf("name = %q", p.Name)
	}
	if err := s.Interact(ctx, p.ID, "call"); err != nil {
		t.Fatal(err)
	}
	got, ok := s.FindPerson("ana")
	if !ok || got.Interactions["call"] != 1 || !got.LastInteraction.Equal(wed(9)) {
		t.Errorf("person = %+v", got)
	}
	if err := s.AddTask(ctx, p.ID, "send photos"); err != nil {
		t.Fatal(err)
	}
	got, _ = s.FindPerson(p.ID)
	if err := s.DoneTask(ctx, p.ID, got.Tasks[0].ID); err != nil {
		t.Fatal(err)
	}
	if err := s.RemovePerson(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Interact(ctx, p.ID, "call"); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("err = %v, want ErrUnknownPerson", err)
	}
	if _, err := s.AddPerson(ctx, " "); err == nil {
		t.Error("accepted an empty name")
	}
}

func TestFoodExerciseResources(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))

	for _, step := range []error{
		s.FoodAction(ctx, "fast"),
		s.FoodBonus(ctx, "organs"),
		s.FoodFridge(ctx),
		s.FoodRitual(ctx),
		s.Exercise(ctx, "series", 0),
		s.Exercise(ctx, "minutes", 30),
		s.Exercise(ctx, "sprint", 0),
		s.AdjustResource(ctx, ShelfForjas, "q1-money", 120),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}
	snap := persisted(t, st)
	if snap.Food.Score != 5 || snap.Food.FridgeCount != 1 || snap.Food.RitualCount != 1 {
		t.Errorf("food = %+v", snap.Food)
	}
	if snap.Exercise.SeriesCurrent != 1 || snap.Exercise.TotalMinutes != 30 || snap.Exercise.SprintCount != 1 {
		t.Errorf("exercise = %+v", snap.Exercise)
	}
	if snap.Forjas[1].Current != 120 {
		t.Errorf("forja = %+v", snap.Forjas[1])
	}
	if err := s.AdjustResource(ctx, "dragons", "x", 1); !errors.Is(err, ErrUnknownShelf) {
		t.Errorf("err = %v, want ErrUnknownShelf", err)
	}
	if err := s.FoodRestart(ctx); err != nil || s.Snapshot().Food.Score != 0 {
		t.Errorf("restart: err=%v score=%d", err, s.Snapshot().Food.Score)
	}
}

func TestRestore(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))
	if err := s.Restore(ctx, []byte(`{"stats": {"perfect_monthly_count": 4}}`)); err != nil {
		t.Fatal(err)
	}
	if got := persisted(t, st).Stats.PerfectMonthlyCount; got != 4 {
		t.Errorf("restored perfect monthly = %d", got)
	}
	if err := s.Restore(ctx, []byte("garbage")); err == nil {
		t.Error("restore accepted garbage")
	}
}

func TestFollowUp(t *testing.T) {
	for label, want := range map[string]string{
		"Gim 🏋️ 60'":  ViewExercise,
		"❤️❤️ 20'":    ViewPeople,
		"T2 🔥 40'":    ViewForjas,
		"Menú 🍴 60'":  ViewFood,
		"Leer 📖 30'": "",
	} {
		if got := FollowUp(label); got != want {
			t.Errorf("FollowUp(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestAdjustStat(t *testing.T) {
	st := store.NewMemoryStore()
	s, _ := open(t, st, wed(9))

	got, err := s.AdjustStat(ctx, snapshot.CounterPerfectMonthly, 2)
	if err != nil || got != 2 {
		t.Fatalf("AdjustStat(+2) = %d, %v", got, err)
	}
	if got, _ = s.AdjustStat(ctx, snapshot.CounterPerfectMonthly, -1); got != 1 {
		t.Errorf("AdjustStat(-1) = %d, want 1", got)
	}
	if got, _ = s.AdjustStat(ctx, snapshot.CounterPerfectMonthly, -5); got != 0 {
		t.Errorf("AdjustStat(-5) = %d, want floor 0", got)
	}
	if v := persisted(t, st).Stats.PerfectMonthlyCount; v != 0 {
		t.Errorf("persisted perfect monthly = %d, want 0", v)
	}
	if _, err := s.AdjustStat(ctx, snapshot.Counter("streak"), 1); !errors.Is(err, snapshot.ErrUnknownCounter) {
		t.Errorf("unknown counter: err = %v", err)
	}

	for _, id := range snapshot.WheelItems {
		if _, err := s.Toggle(ctx, snapshot.Wheel, id); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.AdjustStat(ctx, snapshot.CounterHucha, 1); !errors.Is(err, pleno.ErrAwaitingConfirmation) {
		t.Errorf("adjust while awaiting: err = %v", err)
	}
}

var errDiskFull = errors.New("disk full")

// flakyStore fails every save while fail is set.
type flakyStore struct {
	*store.MemoryStore
	fail bool
}

func (f *flakyStore) Save(ctx context.Context, data []byte) error {
	if f.fail {
		return errDiskFull
	}
	return f.MemoryStore.Save(ctx, data)
}

func TestConfirmKeepsOutcomeWhenSaveFails(t *testing.T) {
	st := &flakyStore{MemoryStore: store.NewMemoryStore()}
	s, err := Open(ctx, st, &clock.Fixed{T: wed(9)})
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range snapshot.WheelItems {
		if _, err := s.Toggle(ctx, snapshot.Wheel, id); err != nil {
			t.Fatal(err)
		}
	}

	st.fail = true
	if _, err := s.Confirm(ctx); !errors.Is(err, errDiskFull) {
		t.Fatalf("Confirm err = %v, want disk full", err)
	}
	if _, ok := s.Pending(); ok {
		t.Fatal("machine still awaiting after confirm")
	}
	if got := s.Snapshot().Stats.WheelPlenoCount; got != 1 {
		t.Errorf("in-memory wheel plenos = %d, want 1", got)
	}

	st.fail = false
	if _, err := s.AdjustStat(ctx, snapshot.CounterHucha, 0); err != nil {
		t.Fatal(err)
	}
	if got := persisted(t, st.MemoryStore).Stats.WheelPlenoCount; got != 1 {
		t.Errorf("persisted wheel plenos = %d, want 1 after the next save", got)
	}
}
