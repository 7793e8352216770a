// Package tui is the interactive board: one tab per collection plus the
// people, food, training, goal and stats views.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agusx1211/warrior/internal/debug"
	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
)

// Tab is one page of the board.
type Tab int

const (
	TabDaily Tab = iota
	TabWeekly
	TabMonthly
	TabAnnual
	TabProjects
	TabWheel
	TabBilletes
	TabPeople
	TabFood
	TabExercise
	TabForjas
	TabLeones
	TabStats
	tabCount
)

var tabNames = []string{
	"Hunos", "Setas", "Trenes", "Annual", "Projects", "Wheel", "Hucha",
	"People", "Food", "Gym", "Forjas", "Leones", "Stats",
}

func (t Tab) String() string { return tabNames[t] }

var tabCollections = map[Tab]snapshot.Collection{
	TabDaily:    snapshot.Daily,
	TabWeekly:   snapshot.Weekly,
	TabMonthly:  snapshot.Monthly,
	TabAnnual:   snapshot.Annual,
	TabProjects: snapshot.Projects,
	TabWheel:    snapshot.Wheel,
	TabBilletes: snapshot.Billetes,
}

var followUpTabs = map[string]Tab{
	session.ViewExercise: TabExercise,
	session.ViewPeople:   TabPeople,
	session.ViewForjas:   TabForjas,
	session.ViewLeones:   TabLeones,
	session.ViewFood:     TabFood,
}

// RefreshInterval is how often an open board re-checks the calendar.
const RefreshInterval = time.Minute

type tickMsg time.Time

// Model is the top-level bubbletea model.
type Model struct {
	sess *session.Session
	ctx  context.Context
	keys KeyMap

	width  int
	height int

	tab      Tab
	cursors  [tabCount]int
	snap     snapshot.Snapshot
	pending  *pleno.Pending
	showHelp bool

	flash string
	err   error
}

// New creates a model over an open session.
func New(sess *session.Session) Model {
	m := Model{
		sess: sess,
		ctx:  context.Background(),
		keys: DefaultKeyMap(),
	}
	m.reload()
	return m
}

func (m *Model) reload() {
	m.snap = m.sess.Snapshot()
	if p, ok := m.sess.Pending(); ok {
		m.pending = &p
	} else {
		m.pending = nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(RefreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("warrior"), tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tick()

	case tea.KeyMsg:
		if m.pending != nil {
			return m.updateConfirm(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

// updateConfirm handles keys while a pleno awaits an answer. Quitting
// declines it.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		c := m.pending.Collection
		out, err := m.sess.Confirm(m.ctx)
		m.setErr(err)
		if err == nil {
			m.flash = fmt.Sprintf("Pleno! %s", counterText(out, c))
		}
	case key.Matches(msg, m.keys.Cancel):
		_, err := m.sess.Cancel(m.ctx)
		m.setErr(err)
		if err == nil {
			m.flash = "Pleno declined"
		}
	case key.Matches(msg, m.keys.Quit):
		_, err := m.sess.Cancel(m.ctx)
		m.setErr(err)
		m.reload()
		return m, tea.Quit
	default:
		return m, nil
	}
	m.reload()
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
		return m, nil
	}
	if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '7' {
		m.tab = Tab(msg.Runes[0] - '1')
		return m, nil
	}

	if c, ok := tabCollections[m.tab]; ok {
		if key.Matches(msg, m.keys.Toggle) {
			m.toggle(c)
		}
		return m, nil
	}
	m.tabAction(msg)
	return m, nil
}

// toggle flips the selected item of collection c.
func (m *Model) toggle(c snapshot.Collection) {
	items, _ := m.snap.Items(c)
	cur := m.cursors[m.tab]
	if cur >= len(*items) || (*items)[cur].Spacer {
		return
	}
	item := (*items)[cur]
	d, err := m.sess.Toggle(m.ctx, c, item.ID)
	m.setErr(err)
	m.reload()
	if err != nil {
		return
	}
	if d.Claim != pleno.Unchanged {
		m.flash = fmt.Sprintf("Pleno %s", d.Claim)
	}
	if d.Outcome == pleno.AwaitingConfirmation || c != snapshot.Daily || !d.Completed {
		return
	}
	if t, ok := followUpTabs[session.FollowUp(item.Label)]; ok {
		m.tab = t
		m.flash = fmt.Sprintf("%s done, log it here", item.Label)
	}
}

// tabAction handles the keys of the non-collection tabs.
func (m *Model) tabAction(msg tea.KeyMsg) {
	var err error
	switch m.tab {
	case TabFood:
		switch {
		case key.Matches(msg, m.keys.Cook):
			err = m.sess.FoodAction(m.ctx, "cook")
		case key.Matches(msg, m.keys.Fast):
			err = m.sess.FoodAction(m.ctx, "fast")
		case key.Matches(msg, m.keys.Delivery):
			err = m.sess.FoodAction(m.ctx, "delivery")
		case key.Matches(msg, m.keys.Fah):
			err = m.sess.FoodAction(m.ctx, "fah")
		default:
			return
		}
	case TabExercise:
		switch {
		case key.Matches(msg, m.keys.Series):
			err = m.sess.Exercise(m.ctx, "series", 0)
		case key.Matches(msg, m.keys.Unseries):
			err = m.sess.Exercise(m.ctx, "unseries", 0)
		default:
			return
		}
	case TabPeople:
		if !key.Matches(msg, m.keys.Toggle) || len(m.snap.People) == 0 {
			return
		}
		p := m.snap.People[m.cursors[m.tab]]
		err = m.sess.Interact(m.ctx, p.ID, "person")
		if err == nil {
			m.flash = "+1 with " + p.Name
		}
	case TabForjas, TabLeones:
		shelf, list := session.ShelfForjas, m.snap.Forjas
		if m.tab == TabLeones {
			shelf, list = session.ShelfLeones, m.snap.Leones
		}
		if len(list) == 0 {
			return
		}
		delta := 0.0
		switch {
		case key.Matches(msg, m.keys.Inc):
			delta = 1
		case key.Matches(msg, m.keys.Dec):
			delta = -1
		default:
			return
		}
		err = m.sess.AdjustResource(m.ctx, shelf, list[m.cursors[m.tab]].ID, delta)
	case TabStats:
		delta := 0
		switch {
		case key.Matches(msg, m.keys.Inc):
			delta = 1
		case key.Matches(msg, m.keys.Dec):
			delta = -1
		default:
			return
		}
		c := snapshot.Counters[m.cursors[m.tab]]
		var v int
		if v, err = m.sess.AdjustStat(m.ctx, c, delta); err == nil {
			m.flash = fmt.Sprintf("%s = %d", c, v)
		}
	default:
		return
	}
	m.setErr(err)
	m.reload()
}

// refresh re-applies calendar boundaries for a board left open.
func (m *Model) refresh() {
	res, err := m.sess.Refresh(m.ctx)
	m.setErr(err)
	if err == nil && len(res.Crossed) > 0 {
		debug.LogKV("tui", "boundaries crossed", "crossed", res.Crossed)
		m.flash = fmt.Sprintf("New cycle: %s", res.Crossed[0])
	}
	m.reload()
}

func (m *Model) moveCursor(delta int) {
	n := m.rowCount()
	if n == 0 {
		return
	}
	m.cursors[m.tab] = max(0, min(n-1, m.cursors[m.tab]+delta))
}

func (m Model) rowCount() int {
	if c, ok := tabCollections[m.tab]; ok {
		items, _ := m.snap.Items(c)
		return len(*items)
	}
	switch m.tab {
	case TabPeople:
		return len(m.snap.People)
	case TabForjas:
		return len(m.snap.Forjas)
	case TabLeones:
		return len(m.snap.Leones)
	case TabStats:
		return len(snapshot.Counters)
	}
	return 0
}

func (m *Model) setErr(err error) {
	if err != nil && !errors.Is(err, pleno.ErrNotAwaiting) {
		debug.LogKV("tui", "action failed", "error", err)
	}
	m.err = err
}

func counterText(s snapshot.Snapshot, c snapshot.Collection) string {
	pol, err := pleno.PolicyFor(c)
	if err != nil || pol.Counter == "" {
		return ""
	}
	return fmt.Sprintf("%s = %d", pol.Counter, *s.Stats.Counter(pol.Counter))
}

// Run starts the TUI application.
func Run(sess *session.Session) error {
	p := tea.NewProgram(New(sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
