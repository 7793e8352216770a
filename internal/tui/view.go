package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/resource"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
	"github.com/agusx1211/warrior/internal/stats"
	"github.com/agusx1211/warrior/internal/theme"
)

const defaultWidth = 80

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")
	b.WriteString(m.renderTabs(width))
	b.WriteString("\n")

	body := m.renderBody(width)
	if m.pending != nil {
		body = m.renderConfirm(width)
	} else if m.showHelp {
		body = m.renderHelp()
	}
	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(ErrorStyle.Render("  " + m.err.Error()))
	case m.flash != "":
		b.WriteString(FlashStyle.Render("  " + m.flash))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar(width))
	return b.String()
}

func (m Model) renderHeader(width int) string {
	sum := stats.Summarize(m.snap)
	title := HeaderStyle.Render("warrior")
	day := HeaderDayStyle.Render(fmt.Sprintf(" %s  hunos %d/%d  setas %d/%d  trenes %d/%d",
		m.snap.LastDailyResetKey,
		sum.Daily.Done, sum.Daily.Total,
		sum.Weekly.Done, sum.Weekly.Total,
		sum.Monthly.Done, sum.Monthly.Total))
	return ansi.Truncate(title+day, width, "…")
}

func (m Model) renderTabs(width int) string {
	tabs := make([]string, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		style := InactiveTabStyle
		if t == m.tab {
			style = ActiveTabStyle
		}
		tabs[t] = style.Render(t.String())
	}
	return TabBarStyle.Render(ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), width, "…"))
}

func (m Model) renderBody(width int) string {
	if c, ok := tabCollections[m.tab]; ok {
		return m.renderItems(c, width)
	}
	switch m.tab {
	case TabPeople:
		return m.renderPeople(width)
	case TabFood:
		return m.renderFood()
	case TabExercise:
		return m.renderExercise()
	case TabForjas:
		return m.renderResources(m.snap.Forjas, width)
	case TabLeones:
		return m.renderResources(m.snap.Leones, width)
	case TabStats:
		return m.renderStats()
	}
	return ""
}

func (m Model) renderItems(c snapshot.Collection, width int) string {
	items, _ := m.snap.Items(c)
	if len(*items) == 0 {
		return ListDimStyle.Render("(empty)")
	}
	p := stats.ProgressOf(*items)
	lines := []string{ListDimStyle.Render(fmt.Sprintf("%d/%d  %s", p.Done, p.Total, ProgressBar(p.Percent(), 20)))}
	cur := m.cursors[m.tab]
	for i, it := range *items {
		if it.Spacer {
			lines = append(lines, ListDimStyle.Render(strings.Repeat("─", 12)))
			continue
		}
		mark := theme.ItemIndicator(it.Completed, it.FailedPreviousDay)
		if it.PlenoDot {
			mark += theme.PlenoDot.String()
		} else {
			mark += " "
		}
		label := ansi.Truncate(it.Label, max(10, width-12), "…")
		if n := len(it.SubItems); n > 0 {
			done := 0
			for _, s := range it.SubItems {
				if s.Completed {
					done++
				}
			}
			label += fmt.Sprintf(" (%d/%d)", done, n)
		}
		style := ListItemStyle
		if i == cur {
			style = SelectedListItemStyle
		}
		lines = append(lines, style.Render(mark+" "+label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPeople(width int) string {
	if len(m.snap.People) == 0 {
		return ListDimStyle.Render("No people yet. Add one with: warrior people add <name>")
	}
	now := m.sess.Now()
	lines := []string{ListDimStyle.Render(fmt.Sprintf("This month: %d", social.MonthlyDelta(m.snap.People, m.snap.Stats.LastInteractionTotal)))}
	for i, p := range m.snap.People {
		last := "never"
		if d := social.DaysSince(p.LastInteraction, now); d >= 0 {
			last = fmt.Sprintf("%dd", d)
		}
		line := fmt.Sprintf("%-16s %4d  %6s  %d task(s)", ansi.Truncate(p.Name, 16, "…"), social.PersonTotal(p), last, len(p.Tasks))
		style := ListItemStyle
		if i == m.cursors[m.tab] {
			style = SelectedListItemStyle
		}
		lines = append(lines, style.Render(ansi.Truncate(line, width-2, "…")))
	}
	return strings.Join(lines, "\n")
}

func field(label, value string) string {
	return "  " + DetailLabelStyle.Render(label) + DetailValueStyle.Render(value)
}

func (m Model) renderFood() string {
	f := m.snap.Food
	lines := []string{
		field("Score", fmt.Sprintf("%d/%d  %s", f.Score, food.MaxScore, ProgressBar(float64(f.Score)/food.MaxScore*100, 25))),
		field("Fridge", fmt.Sprintf("%d/%d", f.FridgeCount, food.FridgeEvery)),
		field("Ritual", fmt.Sprintf("%d/%d", f.RitualCount, food.RitualEvery)),
	}
	kinds := make([]string, 0, len(f.Bonuses))
	for k := range f.Bonuses {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		lines = append(lines, field("Bonus "+k, theme.ItemIndicator(f.Bonuses[k], false)))
	}
	lines = append(lines, SectionStyle.Render("Recent"))
	for i, e := range f.Log {
		if i == 5 {
			break
		}
		lines = append(lines, ListDimStyle.Render(fmt.Sprintf("%s  %-14s %+d", e.At.Local().Format("01-02 15:04"), e.Action, e.Delta)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderExercise() string {
	e := m.snap.Exercise
	return strings.Join([]string{
		field("Series today", fmt.Sprintf("%d/%d  %s", e.SeriesCurrent, exercise.SeriesPerDay, ProgressBar(float64(e.SeriesCurrent)/exercise.SeriesPerDay*100, exercise.SeriesPerDay))),
		field("Days trained", fmt.Sprint(e.DaysTrained)),
		field("Total series", fmt.Sprint(exercise.TotalSeries(e))),
		field("Time", exercise.FormatMinutes(e.TotalMinutes)),
		field("Sprints", fmt.Sprint(e.SprintCount)),
		field("Stretches", fmt.Sprint(e.StretchCount)),
	}, "\n")
}

func (m Model) renderResources(list []snapshot.Resource, width int) string {
	if len(list) == 0 {
		return ListDimStyle.Render("(empty)")
	}
	lines := make([]string, 0, len(list))
	for i, r := range list {
		pct := resource.Progress(r)
		line := fmt.Sprintf("%-20s %s %3.0f%%  %g/%g %s", ansi.Truncate(r.Name, 20, "…"), ProgressBar(pct, 20), pct, r.Current, r.Target, r.Unit)
		style := ListItemStyle
		if i == m.cursors[m.tab] {
			style = SelectedListItemStyle
		}
		lines = append(lines, style.Render(ansi.Truncate(line, width-2, "…")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStats() string {
	sum := stats.Summarize(m.snap)
	// Same order as snapshot.Counters, which the cursor indexes.
	counters := []struct {
		label string
		value int
	}{
		{"Perfect weeks", sum.PerfectWeekly},
		{"Perfect months", sum.PerfectMonthly},
		{"Daily plenos", sum.DailyPleno},
		{"Project plenos", sum.AdHocPleno},
		{"Wheel plenos", sum.WheelPleno},
		{"Hucha", sum.Hucha},
	}
	lines := make([]string, 0, len(counters)+6)
	for i, c := range counters {
		line := field(c.label, fmt.Sprint(c.value))
		if i == m.cursors[m.tab] {
			line = SelectedListItemStyle.Render("▸") + line[1:]
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		SectionStyle.Render("Setas per week"),
		sparkline(stats.WeeklyChart(m.snap), stats.ChartMax(stats.WeeklyChart(m.snap), len(m.snap.Weekly.Items))),
		SectionStyle.Render("Trenes per month"),
		sparkline(stats.MonthlyChart(m.snap), stats.ChartMax(stats.MonthlyChart(m.snap), len(m.snap.Monthly.Items))),
		SectionStyle.Render("Interactions per month"),
		sparkline(stats.InteractionChart(m.snap), stats.ChartMax(stats.InteractionChart(m.snap), 1)),
	)
	return strings.Join(lines, "\n")
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline draws values scaled to ceiling, one cell per value.
func sparkline(values []int, ceiling int) string {
	var b strings.Builder
	b.WriteString("  ")
	for _, v := range values {
		idx := 0
		if ceiling > 0 {
			idx = v * (len(sparkRunes) - 1) / ceiling
		}
		b.WriteRune(sparkRunes[max(0, min(len(sparkRunes)-1, idx))])
		b.WriteRune(' ')
	}
	return lipgloss.NewStyle().Foreground(theme.ColorTeal).Render(b.String())
}

func (m Model) renderConfirm(width int) string {
	c := m.pending.Collection
	body := ModalTitleStyle.Render("Round complete!") + "\n\n" +
		fmt.Sprintf("Every %s item is done.", c) + "\n" +
		"Claim the pleno?\n\n" +
		shortcutText("y", "claim") + "   " + shortcutText("n", "decline")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, ModalStyle.Render(body))
}

func (m Model) renderHelp() string {
	bindings := []struct{ k, d string }{
		{"tab/shift+tab", "switch tab"},
		{"1-7", "jump to a collection"},
		{"j/k", "move"},
		{"space", "toggle item / +1 interaction"},
		{"c f d a", "food: cook, fast, delivery, fah"},
		{"s u", "gym: series +1 / -1"},
		{"+ -", "goals, stats: adjust by 1"},
		{"r", "re-check the calendar"},
		{"q", "quit"},
	}
	lines := make([]string, len(bindings))
	for i, b := range bindings {
		lines[i] = "  " + DetailLabelStyle.Render(b.k) + HelpTextStyle.Render(b.d)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar(width int) string {
	var parts []string
	if m.pending != nil {
		parts = []string{shortcutText("y", "claim"), shortcutText("n", "decline")}
	} else {
		parts = []string{shortcutText("tab", "tabs"), shortcutText("space", "toggle"), shortcutText("?", "help"), shortcutText("q", "quit")}
	}
	content := strings.Join(parts, StatusValueStyle.Render("  "))
	return StatusBarStyle.Width(width).Render(ansi.Truncate(content, width-2, ""))
}
