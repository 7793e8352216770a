// Package food implements the nutrition scoring game: a 0..50 weekly board,
// one-tap actions, weekly bonuses, the fridge and ritual counters and the
// essentials wheel reward.
package food

import (
	"errors"
	"fmt"
	"time"

	"github.com/agusx1211/warrior/internal/snapshot"
)

const (
	MaxScore = 50
	MaxLog   = 50

	FridgeEvery = 20
	RitualEvery = 10
	WheelReward = 3
)

var (
	ErrUnknownAction = errors.New("unknown food action")
	ErrUnknownBonus  = errors.New("unknown weekly bonus")
)

// Actions maps each one-tap action to its score delta.
var Actions = map[string]int{
	"cook":     1,
	"fast":     2,
	"delivery": -2,
	"fah":      -1,
}

// Bonuses maps each weekly bonus to the points it is worth while active.
var Bonuses = map[string]int{
	"organs":  3,
	"legumes": 2,
	"fast24":  5,
}

// Act applies a one-tap action.
func Act(f snapshot.Food, action string, now time.Time) (snapshot.Food, error) {
	delta, ok := Actions[action]
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	out := f.Clone()
	addScore(&out, delta)
	logEntry(&out, action, delta, now)
	return out, nil
}

// ToggleBonus switches a weekly bonus. Switching it off takes its points back.
func ToggleBonus(f snapshot.Food, kind string, now time.Time) (snapshot.Food, error) {
	points, ok := Bonuses[kind]
	if !ok {
		return f, fmt.Errorf("%w: %q", ErrUnknownBonus, kind)
	}
	out := f.Clone()
	if out.Bonuses == nil {
		out.Bonuses = snapshot.DefaultBonuses()
	}
	active := out.Bonuses[kind]
	delta, label := points, "bonus: "+kind
	if active {
		delta, label = -points, "undo: "+kind
	}
	out.Bonuses[kind] = !active
	addScore(&out, delta)
	logEntry(&out, label, delta, now)
	return out, nil
}

// TickFridge counts one fridge check. Every twentieth costs a point and
// restarts the count.
func TickFridge(f snapshot.Food, now time.Time) snapshot.Food {
	out := f.Clone()
	out.FridgeCount++
	if out.FridgeCount >= FridgeEvery {
		out.FridgeCount = 0
		addScore(&out, -1)
		logEntry(&out, fmt.Sprintf("fridge %dx", FridgeEvery), -1, now)
	}
	return out
}

// TickRitual counts one ritual. Every tenth earns a point and restarts the
// count.
func TickRitual(f snapshot.Food, now time.Time) snapshot.Food {
	out := f.Clone()
	out.RitualCount++
	if out.RitualCount >= RitualEvery {
		out.RitualCount = 0
		addScore(&out, 1)
		logEntry(&out, fmt.Sprintf("ritual %dx", RitualEvery), 1, now)
	}
	return out
}

// AwardWheel credits a confirmed essentials wheel.
func AwardWheel(f snapshot.Food, now time.Time) snapshot.Food {
	out := f.Clone()
	addScore(&out, WheelReward)
	logEntry(&out, "wheel", WheelReward, now)
	return out
}

// Restart zeroes the board, switches every bonus off and clears the log.
func Restart(f snapshot.Food) snapshot.Food {
	out := f.Clone()
	out.Score = 0
	out.Bonuses = snapshot.DefaultBonuses()
	out.Log = []snapshot.FoodEntry{}
	return out
}

func addScore(f *snapshot.Food, delta int) {
	f.Score = max(0, min(MaxScore, f.Score+delta))
}

// logEntry prepends an entry, keeping the newest MaxLog.
func logEntry(f *snapshot.Food, action string, delta int, now time.Time) {
	entry := snapshot.FoodEntry{Action: action, At: now.UTC(), Delta: delta}
	entries := make([]snapshot.FoodEntry, 0, min(len(f.Log)+1, MaxLog))
	entries = append(entries, entry)
	for _, e := range f.Log {
		if len(entries) == MaxLog {
			break
		}
		entries = append(entries, e)
	}
	f.Log = entries
}
