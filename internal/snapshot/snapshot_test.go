package snapshot

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestHistoryPushEvictsOldest(t *testing.T) {
	var h History
	for i := 1; i <= 15; i++ {
		h = h.Push(i, MonthlyHistoryCap)
	}
	if len(h) != MonthlyHistoryCap {
		t.Fatalf("len = %d, want %d", len(h), MonthlyHistoryCap)
	}
	if h[0] != 4 || h[len(h)-1] != 15 {
		t.Errorf("history = %v, want 4..15", h)
	}
}

func TestHistoryPushDoesNotAlias(t *testing.T) {
	base := make(History, 2, 8)
	base[0], base[1] = 1, 2
	a := base.Push(3, 52)
	b := base.Push(4, 52)
	if a[2] != 3 || b[2] != 4 {
		t.Errorf("pushes share backing array: a=%v b=%v", a, b)
	}
	if len(base) != 2 {
		t.Errorf("receiver modified: %v", base)
	}
}

func TestCloneIsDeep(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s := Default(now)
	s.Monthly.Items[0].SubItems = []SubItem{{ID: "s1", Label: "one"}}
	s.People = []Person{{ID: "p1", Name: "Ana", Interactions: DefaultInteractions(), Tasks: []PersonTask{}}}
	s.Daily.History["2026-10-16"] = []string{"huno-0"}

	c := s.Clone()
	c.Daily.Items[0].Completed = true
	c.Monthly.Items[0].SubItems[0].Completed = true
	c.People[0].Interactions["call"] = 9
	c.Daily.History["2026-10-16"][0] = "huno-1"
	c.Food.Bonuses["organs"] = true
	c.Weekly.History = c.Weekly.History.Push(3, WeeklyHistoryCap)

	if s.Daily.Items[0].Completed {
		t.Error("daily item shared")
	}
	if s.Monthly.Items[0].SubItems[0].Completed {
		t.Error("sub-items shared")
	}
	if s.People[0].Interactions["call"] != 0 {
		t.Error("interactions map shared")
	}
	if s.Daily.History["2026-10-16"][0] != "huno-0" {
		t.Error("history ids shared")
	}
	if s.Food.Bonuses["organs"] {
		t.Error("bonuses map shared")
	}
	if len(s.Weekly.History) != 0 {
		t.Error("weekly history shared")
	}
}

func TestAllCompletedIgnoresSpacers(t *testing.T) {
	items := []CycleItem{
		{ID: "a", Completed: true},
		{ID: "gap", Spacer: true},
		{ID: "b", Completed: true},
	}
	if !AllCompleted(items) {
		t.Error("spacer should not block completion")
	}
	if AllCompleted(nil) {
		t.Error("empty list is never complete")
	}
	if AllCompleted([]CycleItem{{ID: "gap", Spacer: true}}) {
		t.Error("spacer-only list is never complete")
	}
}

func TestParseCollection(t *testing.T) {
	tests := map[string]Collection{
		"daily":  Daily,
		"Hunos":  Daily,
		"sets":   Weekly,
		"trenes": Monthly,
		"annual": Annual,
		"rueda":  Wheel,
		"hucha":  Billetes,
	}
	for in, want := range tests {
		got, err := ParseCollection(in)
		if err != nil {
			t.Errorf("ParseCollection(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCollection(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseCollection("bogus"); !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("err = %v, want ErrUnknownCollection", err)
	}
}

func TestItemsPointsIntoSnapshot(t *testing.T) {
	s := Default(time.Now())
	for _, c := range Collections {
		items, err := s.Items(c)
		if err != nil {
			t.Fatalf("Items(%s): %v", c, err)
		}
		if len(*items) == 0 {
			t.Errorf("Items(%s) is empty by default", c)
		}
	}
	items, _ := s.Items(Wheel)
	(*items)[0].Completed = true
	if !s.Food.Wheel[0].Completed {
		t.Error("Items(Wheel) does not alias Food.Wheel")
	}
}

func TestDecodeBaselinePresence(t *testing.T) {
	p, err := Decode([]byte(`{"stats":{"perfect_weekly_count":2}}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.HasInteractionBaseline {
		t.Error("baseline reported present")
	}
	if p.Stats.PerfectWeeklyCount != 2 {
		t.Errorf("perfect weekly = %d, want 2", p.Stats.PerfectWeeklyCount)
	}

	p, err = Decode([]byte(`{"stats":{"last_interaction_total":0},"morning_routine":{"x":1}}`))
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasInteractionBaseline {
		t.Error("explicit zero baseline reported absent")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not json", "[1,2]", `{"daily":5}`} {
		if _, err := Decode([]byte(in)); err == nil {
			t.Errorf("Decode(%q) succeeded", in)
		}
	}
}

func TestEncodeDecodeDefault(t *testing.T) {
	s := Default(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))
	data, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Snapshot, s) {
		t.Error("default snapshot does not survive encode/decode")
	}
}

func TestClosesPerfect(t *testing.T) {
	if !ClosesPerfect(nil) || !ClosesPerfect([]CycleItem{}) {
		t.Error("empty cycle should close perfect")
	}
	if ClosesPerfect([]CycleItem{{ID: "a", Completed: true}, {ID: "b"}}) {
		t.Error("partial cycle closed perfect")
	}
	if !ClosesPerfect([]CycleItem{{ID: "a", Completed: true}}) {
		t.Error("full cycle did not close perfect")
	}
}

func TestParseCounter(t *testing.T) {
	for _, c := range Counters {
		got, err := ParseCounter(string(c))
		if err != nil || got != c {
			t.Errorf("ParseCounter(%q) = %q, %v", c, got, err)
		}
	}
	if got, _ := ParseCounter("Perfect-Weekly"); got != CounterPerfectWeekly {
		t.Errorf("dashed name = %q", got)
	}
	if _, err := ParseCounter("streak"); !errors.Is(err, ErrUnknownCounter) {
		t.Errorf("err = %v, want ErrUnknownCounter", err)
	}
}
