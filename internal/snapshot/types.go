package snapshot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Collection names one of the item lists a claim or toggle can target.
type Collection string

const (
	Daily    Collection = "daily"    // Hunos
	Weekly   Collection = "weekly"   // Setas
	Monthly  Collection = "monthly"  // Trenes
	Annual   Collection = "annual"   // annual Trenes
	Projects Collection = "projects" // ad-hoc project round
	Wheel    Collection = "wheel"    // nutrition essentials wheel
	Billetes Collection = "billetes" // savings grid
)

// Collections lists every collection in display order.
var Collections = []Collection{Daily, Weekly, Monthly, Annual, Projects, Wheel, Billetes}

// ErrUnknownCollection is returned for a collection name that does not exist.
var ErrUnknownCollection = errors.New("unknown collection")

var collectionAliases = map[string]Collection{
	"hunos":     Daily,
	"sets":      Weekly,
	"setas":     Weekly,
	"trains":    Monthly,
	"trenes":    Monthly,
	"yearly":    Annual,
	"proyectos": Projects,
	"rueda":     Wheel,
	"hucha":     Billetes,
}

// ParseCollection resolves a collection name or one of its aliases.
func ParseCollection(name string) (Collection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Collections {
		if string(c) == name {
			return c, nil
		}
	}
	if c, ok := collectionAliases[name]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
}

// SubItem is a checklist entry nested under a monthly or annual item.
type SubItem struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
}

// CycleItem is one entry of a cyclic collection. ID is the identity; Label is
// free text and is never used as a key.
type CycleItem struct {
	ID                string    `json:"id"`
	Label             string    `json:"label"`
	Completed         bool      `json:"completed"`
	SubItems          []SubItem `json:"sub_items,omitempty"`
	FailedPreviousDay bool      `json:"failed_previous_day,omitempty"`
	// PlenoDot marks an item checked during the current daily pleno round.
	PlenoDot bool `json:"pleno_dot,omitempty"`
	// Spacer items are layout gaps; they never count toward a pleno.
	Spacer bool `json:"spacer,omitempty"`
}

// History is a bounded FIFO of per-period counts, oldest first.
type History []int

const (
	WeeklyHistoryCap      = 52
	MonthlyHistoryCap     = 12
	InteractionHistoryCap = 12
)

// DailyCycle holds the Hunos and the per-day archive of completed ids.
type DailyCycle struct {
	Items   []CycleItem         `json:"items"`
	History map[string][]string `json:"history"`
}

// BoundedCycle is a weekly or monthly collection with an automatic claim.
type BoundedCycle struct {
	Items        []CycleItem `json:"items"`
	PlenoClaimed bool        `json:"pleno_claimed"`
	History      History     `json:"history"`
}

// AnnualCycle has no claim and no history.
type AnnualCycle struct {
	Items []CycleItem `json:"items"`
}

// Counter names a pleno counter in Stats.
type Counter string

const (
	CounterPerfectWeekly  Counter = "perfect_weekly"
	CounterPerfectMonthly Counter = "perfect_monthly"
	CounterDailyPleno     Counter = "daily_pleno"
	CounterAdHocPleno     Counter = "adhoc_pleno"
	CounterWheelPleno     Counter = "wheel_pleno"
	CounterHucha          Counter = "hucha"
)

// Counters lists every pleno counter in display order.
var Counters = []Counter{
	CounterPerfectWeekly, CounterPerfectMonthly, CounterDailyPleno,
	CounterAdHocPleno, CounterWheelPleno, CounterHucha,
}

// ErrUnknownCounter is returned for a counter name that does not exist.
var ErrUnknownCounter = errors.New("unknown counter")

// ParseCounter resolves a counter name; dashes are accepted for underscores.
func ParseCounter(name string) (Counter, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, c := range Counters {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCounter, name)
}

// Stats aggregates every pleno counter and the interaction history.
type Stats struct {
	PerfectWeeklyCount   int     `json:"perfect_weekly_count"`
	PerfectMonthlyCount  int     `json:"perfect_monthly_count"`
	DailyPlenoCount      int     `json:"daily_pleno_count"`
	AdHocPlenoCount      int     `json:"adhoc_pleno_count"`
	WheelPlenoCount      int     `json:"wheel_pleno_count"`
	HuchaCount           int     `json:"hucha_count"`
	InteractionHistory   History `json:"interaction_history"`
	LastInteractionTotal int     `json:"last_interaction_total"`
}

// Counter returns a pointer to the named counter, or nil when unknown.
func (st *Stats) Counter(c Counter) *int {
	switch c {
	case CounterPerfectWeekly:
		return &st.PerfectWeeklyCount
	case CounterPerfectMonthly:
		return &st.PerfectMonthlyCount
	case CounterDailyPleno:
		return &st.DailyPlenoCount
	case CounterAdHocPleno:
		return &st.AdHocPlenoCount
	case CounterWheelPleno:
		return &st.WheelPlenoCount
	case CounterHucha:
		return &st.HuchaCount
	}
	return nil
}

// PersonTask is a pending to-do attached to a person.
type PersonTask struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Person is a social contact with running interaction counters. The counters
// are never reset; the monthly boundary snapshots their sum instead.
type Person struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	LastInteraction time.Time      `json:"last_interaction"`
	Interactions    map[string]int `json:"interactions"`
	Tasks           []PersonTask   `json:"tasks"`
}

// FoodEntry is one line of the nutrition activity log.
type FoodEntry struct {
	Action string    `json:"action"`
	At     time.Time `json:"at"`
	Delta  int       `json:"delta"`
}

// Food is the nutrition scoring game state.
type Food struct {
	Score           int             `json:"score"`
	LastWeeklyReset time.Time       `json:"last_weekly_reset"`
	FridgeCount     int             `json:"fridge_count"`
	RitualCount     int             `json:"ritual_count"`
	Wheel           []CycleItem     `json:"wheel"`
	Bonuses         map[string]bool `json:"weekly_bonuses"`
	Log             []FoodEntry     `json:"log"`
}

// Exercise is the training log.
type Exercise struct {
	SeriesCurrent int `json:"series_current"`
	DaysTrained   int `json:"days_trained"`
	TotalMinutes  int `json:"total_minutes"`
	SprintCount   int `json:"sprint_count"`
	StretchCount  int `json:"stretch_count"`
}

// Resource is a savings or effort goal (Forjas, Leones).
type Resource struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Unit    string  `json:"unit"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// Snapshot is the whole persisted state. It is replaced wholesale on every
// change; functions that derive a new snapshot work on a Clone.
type Snapshot struct {
	LastDailyResetKey string    `json:"last_daily_reset_key"`
	LastWeeklyReset   time.Time `json:"last_weekly_reset"`
	LastMonthlyReset  time.Time `json:"last_monthly_reset"`

	Daily   DailyCycle   `json:"daily"`
	Weekly  BoundedCycle `json:"weekly"`
	Monthly BoundedCycle `json:"monthly"`
	Annual  AnnualCycle  `json:"annual"`

	Projects []CycleItem `json:"projects"`
	Billetes []CycleItem `json:"billetes"`

	Stats    Stats      `json:"stats"`
	People   []Person   `json:"people"`
	Food     Food       `json:"food"`
	Exercise Exercise   `json:"exercise"`
	Forjas   []Resource `json:"forjas"`
	Leones   []Resource `json:"leones"`
}

// Items returns a pointer to the item list of c so callers working on a
// clone can replace or edit it in place.
func (s *Snapshot) Items(c Collection) (*[]CycleItem, error) {
	switch c {
	case Daily:
		return &s.Daily.Items, nil
	case Weekly:
		return &s.Weekly.Items, nil
	case Monthly:
		return &s.Monthly.Items, nil
	case Annual:
		return &s.Annual.Items, nil
	case Projects:
		return &s.Projects, nil
	case Wheel:
		return &s.Food.Wheel, nil
	case Billetes:
		return &s.Billetes, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
}
