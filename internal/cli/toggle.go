package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle <collection> <item>",
	Aliases: []string{"t", "check"},
	Short:   "Check or uncheck an item",
	Long: `Check or uncheck an item by id or 1-based position.

When the toggle completes an interactive round (daily, projects, wheel,
billetes) the pleno has to be confirmed. Pass --yes or --no to answer
without being asked.

Examples:
  warrior toggle daily huno-3
  warrior toggle weekly 2
  warrior toggle monthly train-0 --sub s1
  warrior toggle billetes 20 --yes`,
	Args: cobra.ExactArgs(2),
	RunE: runToggle,
}

func init() {
	toggleCmd.Flags().String("sub", "", "Toggle a sub-item of a monthly or annual item")
	toggleCmd.Flags().Bool("yes", false, "Confirm a pleno without asking")
	toggleCmd.Flags().Bool("no", false, "Decline a pleno without asking")
	toggleCmd.MarkFlagsMutuallyExclusive("yes", "no")
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(cmd *cobra.Command, args []string) error {
	c, err := snapshot.ParseCollection(args[0])
	if err != nil {
		return err
	}
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()

	snap := sess.Snapshot()
	items, _ := snap.Items(c)
	item, err := resolveItem(*items, args[1])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	ctx := cmdContext(cmd)

	if sub, _ := cmd.Flags().GetString("sub"); sub != "" {
		if err := sess.ToggleSub(ctx, c, item.ID, sub); err != nil {
			return err
		}
		fmt.Fprintf(w, "  %sToggled%s %s / %s\n", styleBoldGreen, colorReset, item.Label, sub)
		return nil
	}

	d, err := sess.Toggle(ctx, c, item.ID)
	if err != nil {
		return err
	}
	state := "unchecked"
	if d.Completed {
		state = "checked"
	}
	fmt.Fprintf(w, "  %s%s%s %s\n", styleBoldGreen, state, colorReset, item.Label)
	if d.Claim != pleno.Unchanged {
		fmt.Fprintf(w, "  %spleno %s%s\n", styleBoldYellow, d.Claim, colorReset)
	}
	if c == snapshot.Daily && d.Completed {
		if view := session.FollowUp(item.Label); view != "" {
			fmt.Fprintf(w, "  %snext: warrior %s%s\n", colorDim, followUpCommand(view), colorReset)
		}
	}
	if d.Outcome != pleno.AwaitingConfirmation {
		return nil
	}

	yes, _ := cmd.Flags().GetBool("yes")
	no, _ := cmd.Flags().GetBool("no")
	if !yes && !no {
		yes = askConfirm(cmd.InOrStdin(), w, fmt.Sprintf("Round of %s complete. Claim the pleno?", c))
	}
	if yes {
		out, err := sess.Confirm(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %sPleno claimed!%s %s\n", styleBoldGreen, colorReset, counterLine(out, c))
		return nil
	}
	if _, err := sess.Cancel(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %sPleno declined; %s left unchecked.%s\n", colorDim, item.Label, colorReset)
	return nil
}

// askConfirm asks a yes/no question on w and reads the answer from r.
// Anything but y/yes is a no.
func askConfirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "  %s [y/N] ", question)
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

func counterLine(s snapshot.Snapshot, c snapshot.Collection) string {
	pol, err := pleno.PolicyFor(c)
	if err != nil || pol.Counter == "" {
		return ""
	}
	return fmt.Sprintf("%s = %d", pol.Counter, *s.Stats.Counter(pol.Counter))
}

// followUpCommand is the command line that opens view.
func followUpCommand(view string) string {
	switch view {
	case session.ViewForjas, session.ViewLeones:
		return "resource " + view
	}
	return view
}
