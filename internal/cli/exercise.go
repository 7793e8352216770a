package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/session"
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise [series|unseries|sprint|stretch|minutes <n>]",
	Aliases: []string{"gym", "gim"},
	Short:   "Show or update the training log",
	Long: fmt.Sprintf(`Show or update the training log.

Every %d series close a training day.

Examples:
  warrior exercise
  warrior exercise series
  warrior exercise minutes 45`, exercise.SeriesPerDay),
	Args: cobra.MaximumNArgs(2),
	RunE: runExercise,
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
}

func runExercise(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		if len(args) > 0 {
			minutes := 0
			if args[0] == "minutes" {
				if len(args) != 2 {
					return fmt.Errorf("minutes needs an amount")
				}
				n, err := strconv.Atoi(args[1])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid minutes %q", args[1])
				}
				minutes = n
			}
			if err := sess.Exercise(cmdContext(cmd), args[0], minutes); err != nil {
				return err
			}
		}

		e := sess.Snapshot().Exercise
		w := cmd.OutOrStdout()
		printHeader(w, "Training")
		printField(w, "Series today", fmt.Sprintf("%d/%d", e.SeriesCurrent, exercise.SeriesPerDay))
		printField(w, "Days trained", fmt.Sprint(e.DaysTrained))
		printField(w, "Total series", fmt.Sprint(exercise.TotalSeries(e)))
		printField(w, "Time", exercise.FormatMinutes(e.TotalMinutes))
		printField(w, "Sprints", fmt.Sprint(e.SprintCount))
		printField(w, "Stretches", fmt.Sprint(e.StretchCount))
		fmt.Fprintln(w)
		return nil
	})
}
