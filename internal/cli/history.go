package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/stats"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or edit the daily completion history",
	RunE:  runHistory,
}

var historySetCmd = &cobra.Command{
	Use:   "set <YYYY-MM-DD> [item-id...]",
	Short: "Overwrite the completed items of one day",
	Long: `Overwrite the completed items of one day. Ids that are not daily items
are dropped. Editing the current day also updates today's checkmarks.

Examples:
  warrior history set 2026-10-12 huno-0 huno-3
  warrior history set 2026-10-12          # mark the day as empty`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHistorySet,
}

func init() {
	historyCmd.Flags().Int("limit", 14, "Number of days to show (0 for all)")
	historyCmd.AddCommand(historySetCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	s := sess.Snapshot()
	total := stats.ProgressOf(s.Daily.Items).Total
	w := cmd.OutOrStdout()
	printHeader(w, "Daily history")
	var rows [][]string
	for _, day := range stats.DailyHistory(s, limit) {
		pct := 0.0
		if total > 0 {
			pct = float64(len(day.Completed)) / float64(total) * 100
		}
		rows = append(rows, []string{
			day.Day,
			fmt.Sprintf("%d/%d", len(day.Completed), total),
			bar(pct, 20),
			truncate(strings.Join(day.Completed, " "), 50),
		})
	}
	printTable(w, []string{"DAY", "DONE", "", "ITEMS"}, rows)
	fmt.Fprintln(w)
	return nil
}

func runHistorySet(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.SetHistory(cmdContext(cmd), args[0], args[1:]); err != nil {
		return err
	}
	got := sess.Snapshot().Daily.History[args[0]]
	fmt.Fprintf(cmd.OutOrStdout(), "  %sHistory of %s updated%s (%d item(s))\n", styleBoldGreen, args[0], colorReset, len(got))
	return nil
}
