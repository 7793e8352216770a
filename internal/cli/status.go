package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/stats"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st", "today"},
	Short:   "Show progress of every collection",
	RunE:    runStatus,
}

var listCmd = &cobra.Command{
	Use:     "list <collection>",
	Aliases: []string{"ls", "show"},
	Short:   "List the items of a collection",
	Long: `List the items of a collection with their completion state.

Collections: daily (hunos), weekly (setas), monthly (trenes), annual,
projects, wheel (rueda), billetes (hucha).`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(statusCmd, listCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()
	return runStatusFull(cmd.OutOrStdout(), sess.Snapshot())
}

// runStatusBrief is called when the root command runs without a terminal.
func runStatusBrief(w io.Writer, s snapshot.Snapshot) error {
	sum := stats.Summarize(s)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %swarrior%s - %s%s%s\n", styleBoldCyan, colorReset, colorBold, s.LastDailyResetKey, colorReset)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Hunos %d/%d  |  Setas %d/%d  |  Trenes %d/%d  |  Food %d\n",
		sum.Daily.Done, sum.Daily.Total,
		sum.Weekly.Done, sum.Weekly.Total,
		sum.Monthly.Done, sum.Monthly.Total,
		sum.FoodScore)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Run %swarrior status%s for full details.\n\n", styleBoldWhite, colorReset)
	return nil
}

func runStatusFull(w io.Writer, s snapshot.Snapshot) error {
	sum := stats.Summarize(s)

	printHeader(w, "Today")
	printField(w, "Day", s.LastDailyResetKey)
	printField(w, "Week started", s.LastWeeklyReset.Local().Format("2006-01-02"))
	printField(w, "Month started", s.LastMonthlyReset.Local().Format("2006-01"))

	printHeader(w, "Progress")
	headers := []string{"COLLECTION", "DONE", "PROGRESS", "PLENO"}
	var rows [][]string
	for _, c := range snapshot.Collections {
		items, _ := s.Items(c)
		p := stats.ProgressOf(*items)
		rows = append(rows, []string{
			string(c),
			fmt.Sprintf("%d/%d", p.Done, p.Total),
			bar(p.Percent(), 20),
			plenoState(s, c),
		})
	}
	printTable(w, headers, rows)

	printHeader(w, "Counters")
	printField(w, "Perfect weeks", fmt.Sprint(sum.PerfectWeekly))
	printField(w, "Perfect months", fmt.Sprint(sum.PerfectMonthly))
	printField(w, "Daily plenos", fmt.Sprint(sum.DailyPleno))
	printField(w, "Project plenos", fmt.Sprint(sum.AdHocPleno))
	printField(w, "Wheel plenos", fmt.Sprint(sum.WheelPleno))
	printField(w, "Hucha", fmt.Sprint(sum.Hucha))
	fmt.Fprintln(w)
	return nil
}

// plenoState describes where a collection stands in its claim cycle.
func plenoState(s snapshot.Snapshot, c snapshot.Collection) string {
	pol, err := pleno.PolicyFor(c)
	if err != nil || pol.Style == pleno.StyleNone {
		return colorDim + "-" + colorReset
	}
	switch c {
	case snapshot.Weekly:
		if s.Weekly.PlenoClaimed {
			return styleBoldGreen + "claimed" + colorReset
		}
	case snapshot.Monthly:
		if s.Monthly.PlenoClaimed {
			return styleBoldGreen + "claimed" + colorReset
		}
	}
	return colorDim + pol.Style.String() + colorReset
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := snapshot.ParseCollection(args[0])
	if err != nil {
		return err
	}
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := sess.Snapshot()
	items, _ := s.Items(c)
	w := cmd.OutOrStdout()
	printHeader(w, string(c))
	printItems(w, *items)
	fmt.Fprintln(w)
	return nil
}

func printItems(w io.Writer, items []snapshot.CycleItem) {
	headers := []string{"#", "", "ID", "LABEL", "NOTE"}
	var rows [][]string
	for i, it := range items {
		if it.Spacer {
			rows = append(rows, []string{"", "", "", colorDim + "────" + colorReset, ""})
			continue
		}
		note := ""
		switch {
		case it.FailedPreviousDay:
			note = colorRed + "missed yesterday" + colorReset
		case it.PlenoDot:
			note = colorYellow + "●" + colorReset
		}
		if n := len(it.SubItems); n > 0 {
			done := 0
			for _, sub := range it.SubItems {
				if sub.Completed {
					done++
				}
			}
			note += fmt.Sprintf(" %s(%d/%d)%s", colorDim, done, n, colorReset)
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), check(it.Completed), it.ID, truncate(it.Label, 40), note})
	}
	printTable(w, headers, rows)
}
