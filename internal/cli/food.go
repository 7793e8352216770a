package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/session"
)

var foodCmd = &cobra.Command{
	Use:     "food",
	Aliases: []string{"nutrition", "comida"},
	Short:   "Show the nutrition board",
	Long: `Show the nutrition board: the 0..50 weekly score, bonuses, the
fridge and ritual counters and the activity log.

Subcommands change it:
  warrior food cook | fast | delivery | fah
  warrior food bonus organs | legumes | fast24
  warrior food fridge
  warrior food ritual
  warrior food restart`,
	RunE: runFoodShow,
}

func init() {
	for _, action := range sortedKeys(food.Actions) {
		foodCmd.AddCommand(&cobra.Command{
			Use:   action,
			Short: fmt.Sprintf("Apply %q (%+d)", action, food.Actions[action]),
			Args:  cobra.NoArgs,
			RunE: foodMutation(func(sess *session.Session, cmd *cobra.Command) error {
				return sess.FoodAction(cmdContext(cmd), action)
			}),
		})
	}
	foodCmd.AddCommand(
		&cobra.Command{
			Use:   "bonus <kind>",
			Short: "Toggle a weekly bonus (organs, legumes, fast24)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return foodMutation(func(sess *session.Session, cmd *cobra.Command) error {
					return sess.FoodBonus(cmdContext(cmd), args[0])
				})(cmd, args)
			},
		},
		&cobra.Command{
			Use:   "fridge",
			Short: fmt.Sprintf("Count a fridge check (every %d costs a point)", food.FridgeEvery),
			Args:  cobra.NoArgs,
			RunE: foodMutation(func(sess *session.Session, cmd *cobra.Command) error {
				return sess.FoodFridge(cmdContext(cmd))
			}),
		},
		&cobra.Command{
			Use:   "ritual",
			Short: fmt.Sprintf("Count a ritual (every %d earns a point)", food.RitualEvery),
			Args:  cobra.NoArgs,
			RunE: foodMutation(func(sess *session.Session, cmd *cobra.Command) error {
				return sess.FoodRitual(cmdContext(cmd))
			}),
		},
		&cobra.Command{
			Use:   "restart",
			Short: "Zero the board, switch bonuses off and clear the log",
			Args:  cobra.NoArgs,
			RunE: foodMutation(func(sess *session.Session, cmd *cobra.Command) error {
				return sess.FoodRestart(cmdContext(cmd))
			}),
		},
	)
	rootCmd.AddCommand(foodCmd)
}

// foodMutation runs fn and prints the resulting score.
func foodMutation(fn func(*session.Session, *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			if err := fn(sess, cmd); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %sScore%s %d/%d\n", styleBoldGreen, colorReset, sess.Snapshot().Food.Score, food.MaxScore)
			return nil
		})
	}
}

func runFoodShow(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		f := sess.Snapshot().Food
		w := cmd.OutOrStdout()

		printHeader(w, "Nutrition")
		printField(w, "Score", fmt.Sprintf("%d/%d  %s", f.Score, food.MaxScore, bar(float64(f.Score)/food.MaxScore*100, 25)))
		printField(w, "Fridge", fmt.Sprintf("%d/%d", f.FridgeCount, food.FridgeEvery))
		printField(w, "Ritual", fmt.Sprintf("%d/%d", f.RitualCount, food.RitualEvery))
		for _, kind := range sortedKeys(food.Bonuses) {
			printField(w, "Bonus "+kind, check(f.Bonuses[kind]))
		}
		wheel := ""
		for _, it := range f.Wheel {
			wheel += check(it.Completed) + " " + it.Label + "  "
		}
		printField(w, "Wheel", wheel)

		printHeader(w, "Log")
		var rows [][]string
		for i, e := range f.Log {
			if i == 10 {
				break
			}
			rows = append(rows, []string{e.At.Local().Format("01-02 15:04"), e.Action, fmt.Sprintf("%+d", e.Delta)})
		}
		printTable(w, []string{"WHEN", "ACTION", "DELTA"}, rows)
		fmt.Fprintln(w)
		return nil
	})
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
