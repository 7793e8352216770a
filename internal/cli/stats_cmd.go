package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/stats"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pleno counters and history charts",
		RunE:  runStats,
	}
	statsAdjustCmd := &cobra.Command{
		Use:   "adjust <counter> <delta>",
		Short: "Correct a pleno counter by a signed amount (never below zero)",
		Long: "Correct a pleno counter by a signed amount. Counters: " + counterNames() + ".\n" +
			"Negative amounts are taken as numbers, not flags: warrior stats adjust hucha -1",
		DisableFlagParsing: true,
		RunE:               runStatsAdjust,
	}
	statsCmd.AddCommand(statsAdjustCmd)
	rootCmd.AddCommand(statsCmd)
}

func counterNames() string {
	names := make([]string, len(snapshot.Counters))
	for i, c := range snapshot.Counters {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// splitSignedArgs parses flags out of args while keeping signed integers
// positional, so "-1" is a delta rather than a shorthand flag.
func splitSignedArgs(cmd *cobra.Command, args []string) (names []string, numbers []string, err error) {
	var rest []string
	for _, a := range args {
		if _, convErr := strconv.Atoi(a); convErr == nil {
			numbers = append(numbers, a)
			continue
		}
		rest = append(rest, a)
	}
	if err := cmd.Flags().Parse(rest); err != nil {
		return nil, nil, err
	}
	return cmd.Flags().Args(), numbers, nil
}

func runStatsAdjust(cmd *cobra.Command, args []string) error {
	names, numbers, err := splitSignedArgs(cmd, args)
	if err != nil {
		return err
	}
	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}
	if len(names) != 1 || len(numbers) != 1 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(names)+len(numbers))
	}
	counter, err := snapshot.ParseCounter(names[0])
	if err != nil {
		return err
	}
	delta, _ := strconv.Atoi(numbers[0])

	return withSession(cmd, func(sess *session.Session) error {
		value, err := sess.AdjustStat(cmdContext(cmd), counter, delta)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", counter, value)
		return nil
	})
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := sess.Snapshot()
	now := sess.Now()
	sum := stats.Summarize(s)
	w := cmd.OutOrStdout()

	printHeader(w, "Counters")
	printField(w, "Perfect weeks", fmt.Sprint(sum.PerfectWeekly))
	printField(w, "Perfect months", fmt.Sprint(sum.PerfectMonthly))
	printField(w, "Daily plenos", fmt.Sprint(sum.DailyPleno))
	printField(w, "Project plenos", fmt.Sprint(sum.AdHocPleno))
	printField(w, "Wheel plenos", fmt.Sprint(sum.WheelPleno))
	printField(w, "Hucha", fmt.Sprint(sum.Hucha))

	printHeader(w, "This cycle")
	printField(w, "Hunos", fmt.Sprintf("%d/%d  %s", sum.Daily.Done, sum.Daily.Total, bar(sum.Daily.Percent(), 20)))
	printField(w, "Setas", fmt.Sprintf("%d/%d  %s", sum.Weekly.Done, sum.Weekly.Total, bar(sum.Weekly.Percent(), 20)))
	printField(w, "Trenes", fmt.Sprintf("%d/%d  %s", sum.Monthly.Done, sum.Monthly.Total, bar(sum.Monthly.Percent(), 20)))
	printField(w, "Annual", fmt.Sprintf("%d/%d  %s", sum.Annual.Done, sum.Annual.Total, bar(sum.Annual.Percent(), 20)))
	printField(w, "Interactions", fmt.Sprint(sum.InteractionsThisMonth))
	printField(w, "Food score", fmt.Sprint(sum.FoodScore))
	printField(w, "Days trained", fmt.Sprintf("%d (%d series, %s)", sum.DaysTrained, sum.TotalSeries, sum.TrainingTime))

	printHeader(w, "Setas, last 10 weeks")
	start := stats.WeeklyChartStart(now)
	weekly := stats.WeeklyChart(s)
	labels := make([]string, len(weekly))
	for i := range labels {
		labels[i] = clock.StartOfWeek(start.AddDate(0, 0, 7*i)).Format("01/02")
	}
	printChart(w, labels, weekly, stats.ChartMax(weekly, len(s.Weekly.Items)))

	printHeader(w, "Trenes, last 6 months")
	printChart(w, monthLabels(now, stats.MonthlyWindow), stats.MonthlyChart(s), stats.ChartMax(stats.MonthlyChart(s), len(s.Monthly.Items)))

	printHeader(w, "Interactions, last 6 months")
	inter := stats.InteractionChart(s)
	printChart(w, monthLabels(now, stats.InteractionWindow), inter, stats.ChartMax(inter, 1))
	fmt.Fprintln(w)
	return nil
}

func monthLabels(now time.Time, n int) []string {
	first := stats.MonthlyChartStart(now)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = time.Month((int(first)-1+i)%12 + 1).String()[:3]
	}
	return labels
}

// printChart draws one horizontal bar per value scaled to ceiling.
func printChart(w io.Writer, labels []string, values []int, ceiling int) {
	const width = 30
	for i, v := range values {
		n := 0
		if ceiling > 0 {
			n = v * width / ceiling
		}
		fmt.Fprintf(w, "  %-6s %s%s%s %d\n", labels[i], colorCyan, strings.Repeat("▇", n), colorReset, v)
	}
}
