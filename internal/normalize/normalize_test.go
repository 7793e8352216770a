package normalize

import (
	"reflect"
	"testing"
	"time"

	"github.com/agusx1211/warrior/internal/snapshot"
)

var now = time.Date(2026, 10, 17, 9, 30, 0, 0, time.FixedZone("CEST", 2*3600))

func decode(t *testing.T, raw string) snapshot.Partial {
	t.Helper()
	p, err := snapshot.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode(%s): %v", raw, err)
	}
	return p
}

// roundTrip persists s and loads it back the way the store does.
func roundTrip(t *testing.T, s snapshot.Snapshot) snapshot.Partial {
	t.Helper()
	data, err := snapshot.Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	return decode(t, string(data))
}

func TestEmptyPayloadYieldsDefaults(t *testing.T) {
	s := Normalize(decode(t, `{}`), now)

	if len(s.Daily.Items) != len(snapshot.DefaultDaily()) {
		t.Errorf("daily items = %d", len(s.Daily.Items))
	}
	if s.Daily.History == nil || s.Weekly.History == nil || s.Stats.InteractionHistory == nil {
		t.Error("histories left nil")
	}
	if !s.LastWeeklyReset.Equal(now) || !s.LastMonthlyReset.Equal(now) {
		t.Errorf("reset instants = %v / %v, want now", s.LastWeeklyReset, s.LastMonthlyReset)
	}
	if len(s.Food.Wheel) != len(snapshot.WheelItems) || len(s.Food.Bonuses) != len(snapshot.BonusKinds) {
		t.Errorf("food = %+v", s.Food)
	}
	if len(s.Billetes) != snapshot.BilletesSize {
		t.Errorf("billetes = %d", len(s.Billetes))
	}
	if len(s.Forjas) != 5 || s.Leones == nil || s.People == nil {
		t.Error("resource lists not defaulted")
	}
}

func TestIdempotent(t *testing.T) {
	inputs := map[string]string{
		"empty": `{}`,
		"legacy": `{
			"last_daily_reset_key": "2026-10-16",
			"last_weekly_reset": "2026-10-12T07:00:00+02:00",
			"daily": {"items": [{"id": "x", "label": "1 FAH 🚫🍰", "completed": true}, {"id": "g", "label": "GAP"}]},
			"monthly": {"items": [{"id": "m", "label": "m", "sub_items": []}], "history": [1,2,3,4,5,6,7,8,9,10,11,12,13,14]},
			"projects": [],
			"people": [{"id": "p", "name": "Ana", "last_interaction": "2026-10-01T10:00:00+02:00"}],
			"food": {"score": 80, "log": [{"action": "cook", "at": "2026-10-16T12:00:00+02:00", "delta": 1}]},
			"exercise": {"series_current": 15, "days_trained": -2},
			"stats": {"daily_pleno_count": -1},
			"morning_routine": {"done": true}
		}`,
	}
	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			once := Normalize(decode(t, raw), now)
			twice := Normalize(snapshot.AsPartial(once), now)
			if !reflect.DeepEqual(once, twice) {
				t.Error("Normalize(Normalize(p)) != Normalize(p)")
			}
			stored := Normalize(roundTrip(t, once), now.Add(48*time.Hour))
			if !reflect.DeepEqual(once, stored) {
				t.Error("normalized snapshot changed across a store round trip")
			}
		})
	}
}

func TestLegacyFieldsAreRepaired(t *testing.T) {
	s := Normalize(decode(t, `{
		"daily": {"items": [{"id": "x", "label": "1 FAH 🚫🍰"}, {"id": "g", "label": "GAP"}]},
		"monthly": {"history": [1,2,3,4,5,6,7,8,9,10,11,12,13,14]},
		"food": {"score": 80},
		"exercise": {"series_current": 15, "days_trained": -2},
		"stats": {"daily_pleno_count": -1}
	}`), now)

	if s.Daily.Items[0].Label != "1 FAH 🍰" {
		t.Errorf("label = %q, want renamed", s.Daily.Items[0].Label)
	}
	if !s.Daily.Items[1].Spacer {
		t.Error("GAP item not marked as spacer")
	}
	if h := s.Monthly.History; len(h) != snapshot.MonthlyHistoryCap || h[0] != 3 {
		t.Errorf("monthly history = %v, want newest 12", h)
	}
	if s.Food.Score != 50 {
		t.Errorf("food score = %d, want 50", s.Food.Score)
	}
	if s.Exercise.SeriesCurrent != 8 || s.Exercise.DaysTrained != 0 {
		t.Errorf("exercise = %+v", s.Exercise)
	}
	if s.Stats.DailyPlenoCount != 0 {
		t.Errorf("daily pleno = %d, want 0", s.Stats.DailyPlenoCount)
	}
}

func TestRewardShelfRepopulation(t *testing.T) {
	s := Normalize(decode(t, `{"projects": [], "forjas": []}`), now)
	if !reflect.DeepEqual(s.Projects, snapshot.DefaultProjects()) {
		t.Error("empty projects not repopulated")
	}
	if !reflect.DeepEqual(s.Forjas, snapshot.DefaultForjas()) {
		t.Error("empty forjas not repopulated")
	}

	custom := `{"projects": [
		{"id": "new-proj-0", "label": "Trivium 10p"},
		{"id": "a", "label": "a"}, {"id": "b", "label": "b"}, {"id": "c", "label": "c"},
		{"id": "d", "label": "d"}, {"id": "e", "label": "e"}, {"id": "f", "label": "f"},
		{"id": "g", "label": "g"}, {"id": "h", "label": "h"}, {"id": "i", "label": "i"}
	]}`
	s = Normalize(decode(t, custom), now)
	if len(s.Projects) != 10 {
		t.Fatalf("projects = %d, want the user's 10", len(s.Projects))
	}
	if s.Projects[0].Label != "Trivium 🎓 10p" {
		t.Errorf("label = %q, want renamed", s.Projects[0].Label)
	}

	// Non-shelf lists keep an explicit empty list.
	s = Normalize(decode(t, `{"weekly": {"items": []}}`), now)
	if len(s.Weekly.Items) != 0 {
		t.Errorf("weekly items = %d, want 0", len(s.Weekly.Items))
	}
}

func TestInteractionBaseline(t *testing.T) {
	people := `"people": [{"id": "p", "name": "Ana", "interactions": {"call": 7, "gift": 3}}]`

	s := Normalize(decode(t, `{`+people+`}`), now)
	if s.Stats.LastInteractionTotal != 10 {
		t.Errorf("missing baseline = %d, want current total 10", s.Stats.LastInteractionTotal)
	}

	s = Normalize(decode(t, `{`+people+`, "stats": {"last_interaction_total": 0}}`), now)
	if s.Stats.LastInteractionTotal != 0 {
		t.Errorf("explicit baseline = %d, want 0", s.Stats.LastInteractionTotal)
	}
	if s.People[0].Tasks == nil {
		t.Error("person tasks left nil")
	}
}

func TestInputNotModified(t *testing.T) {
	p := decode(t, `{"food": {"score": 99}}`)
	_ = Normalize(p, now)
	if p.Food.Score != 99 || p.Daily.Items != nil {
		t.Error("Normalize modified its input")
	}
}
