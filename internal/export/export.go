// Package export renders a read-only flat dump of the whole snapshot for
// offline backup.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/agusx1211/warrior/internal/snapshot"
)

// Formats accepted by Write.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatSnapshot = "snapshot"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Row is one line of the flat dump.
type Row struct {
	Category string `json:"category" yaml:"category"`
	Name     string `json:"name" yaml:"name"`
	Value    string `json:"value" yaml:"value"`
	Details  string `json:"details,omitempty" yaml:"details,omitempty"`
	Extra    string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Document is the exported file.
type Document struct {
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Key        string    `json:"key" yaml:"key"`
	Rows       []Row     `json:"rows" yaml:"rows"`
}

// Rows flattens every field of s into category/name/value rows.
func Rows(s snapshot.Snapshot) []Row {
	var rows []Row
	add := func(category, name, value, details, extra string) {
		rows = append(rows, Row{Category: category, Name: name, Value: value, Details: details, Extra: extra})
	}
	itoa := strconv.Itoa

	add("META", "Last Daily Reset", s.LastDailyResetKey, "", "")
	add("META", "Last Weekly Reset", stamp(s.LastWeeklyReset), "", "")
	add("META", "Last Monthly Reset", stamp(s.LastMonthlyReset), "", "")

	add("STATS", "Perfect Weeks", itoa(s.Stats.PerfectWeeklyCount), "", "")
	add("STATS", "Perfect Months", itoa(s.Stats.PerfectMonthlyCount), "", "")
	add("STATS", "Daily Plenos", itoa(s.Stats.DailyPlenoCount), "", "")
	add("STATS", "Project Plenos", itoa(s.Stats.AdHocPlenoCount), "", "")
	add("STATS", "Wheel Plenos", itoa(s.Stats.WheelPlenoCount), "", "")
	add("STATS", "Hucha", itoa(s.Stats.HuchaCount), "", "")
	add("STATS", "Last Total Interactions", itoa(s.Stats.LastInteractionTotal), "", "")
	add("STATS HISTORY", "Weekly History", compact(s.Weekly.History), "", "")
	add("STATS HISTORY", "Monthly History", compact(s.Monthly.History), "", "")
	add("STATS HISTORY", "Interaction History", compact(s.Stats.InteractionHistory), "", "")

	add("EXERCISE", "Days Trained", itoa(s.Exercise.DaysTrained), "", "")
	add("EXERCISE", "Total Minutes", itoa(s.Exercise.TotalMinutes), "", "")
	add("EXERCISE", "Current Series", itoa(s.Exercise.SeriesCurrent), "/ 9", "")
	add("EXERCISE", "Sprints", itoa(s.Exercise.SprintCount), "", "")
	add("EXERCISE", "Stretches", itoa(s.Exercise.StretchCount), "", "")

	for _, it := range s.Daily.Items {
		if it.Spacer {
			continue
		}
		add("DAILY", it.Label, status(it.Completed), compact(map[string]bool{
			"failed_previous_day": it.FailedPreviousDay,
			"pleno_dot":           it.PlenoDot,
		}), it.ID)
	}
	for _, day := range sortedDays(s.Daily.History) {
		add("DAILY HISTORY", day, itoa(len(s.Daily.History[day])), compact(s.Daily.History[day]), "")
	}
	itemRows := func(category string, items []snapshot.CycleItem) {
		for _, it := range items {
			details := ""
			if len(it.SubItems) > 0 {
				details = compact(it.SubItems)
			}
			add(category, it.Label, status(it.Completed), details, it.ID)
		}
	}
	itemRows("WEEKLY", s.Weekly.Items)
	itemRows("MONTHLY", s.Monthly.Items)
	itemRows("ANNUAL", s.Annual.Items)
	itemRows("PROJECT", s.Projects)
	itemRows("BILLETE", s.Billetes)

	for _, r := range s.Forjas {
		add("FORJA", r.Name, ftoa(r.Current), fmt.Sprintf("Target: %s %s", ftoa(r.Target), r.Unit), r.ID)
	}
	for _, r := range s.Leones {
		add("LEON", r.Name, ftoa(r.Current), fmt.Sprintf("Target: %s %s", ftoa(r.Target), r.Unit), r.ID)
	}

	for _, p := range s.People {
		last := "Never"
		if !p.LastInteraction.IsZero() {
			last = stamp(p.LastInteraction)
		}
		add("FRIEND", p.Name, last, compact(p.Interactions), p.ID)
		for _, task := range p.Tasks {
			add("FRIEND TASK", p.Name, task.Label, "", task.ID)
		}
	}

	add("FOOD", "Score", itoa(s.Food.Score), "", "")
	add("FOOD", "Fridge Count", itoa(s.Food.FridgeCount), "", "")
	add("FOOD", "Ritual Count", itoa(s.Food.RitualCount), "", "")
	add("FOOD", "Wheel State", compact(wheelState(s.Food.Wheel)), "", "")
	add("FOOD", "Bonuses State", compact(s.Food.Bonuses), "", "")
	for _, e := range s.Food.Log {
		add("FOOD HISTORY", e.Action, itoa(e.Delta), "", stamp(e.At))
	}
	return rows
}

// Write renders s to w in format. FormatSnapshot writes the persisted
// payload itself, which can be restored later.
func Write(w io.Writer, s snapshot.Snapshot, format string, now time.Time) error {
	switch format {
	case FormatSnapshot:
		data, err := snapshot.Encode(s)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(s, now))
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(s, now)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func document(s snapshot.Snapshot, now time.Time) Document {
	return Document{ExportedAt: now.UTC(), Key: snapshot.Key, Rows: Rows(s)}
}
