package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/resource"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
)

var resourceCmd = &cobra.Command{
	Use:     "resource [forjas|leones]",
	Aliases: []string{"goals", "res"},
	Short:   "Show the Forjas and Leones goals",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runResourceList,
}

var resourceAdjustCmd = &cobra.Command{
	Use:   "adjust <forjas|leones> <id> <delta>",
	Short: "Move a goal by delta (clamped to 0..target)",
	Example: `  warrior resource adjust forjas q1-money 150
  warrior resource adjust forjas q2-health -1`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		delta, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid delta %q", args[2])
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.AdjustResource(cmdContext(cmd), args[0], args[1], delta); err != nil {
				return err
			}
			s := sess.Snapshot()
			list := s.Forjas
			if args[0] == session.ShelfLeones {
				list = s.Leones
			}
			printResources(cmd.OutOrStdout(), args[0], list)
			return nil
		})
	},
}

func init() {
	resourceCmd.AddCommand(resourceAdjustCmd)
	rootCmd.AddCommand(resourceCmd)
}

func runResourceList(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		s := sess.Snapshot()
		w := cmd.OutOrStdout()
		if len(args) == 0 || args[0] == session.ShelfForjas {
			printResources(w, "Forjas", s.Forjas)
		}
		if len(args) == 0 || args[0] == session.ShelfLeones {
			printResources(w, "Leones", s.Leones)
		}
		fmt.Fprintln(w)
		return nil
	})
}

func printResources(w io.Writer, title string, list []snapshot.Resource) {
	printHeader(w, title)
	var rows [][]string
	for _, r := range list {
		pct := resource.Progress(r)
		rows = append(rows, []string{
			r.ID,
			r.Name,
			fmt.Sprintf("%s/%s %s", ftoa(r.Current), ftoa(r.Target), r.Unit),
			bar(pct, 20),
			fmt.Sprintf("%.0f%%", pct),
		})
	}
	printTable(w, []string{"ID", "NAME", "PROGRESS", "", "%"}, rows)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
