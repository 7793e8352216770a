package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/social"
)

var peopleCmd = &cobra.Command{
	Use:     "people",
	Aliases: []string{"person", "p"},
	Short:   "Track the people you keep in touch with",
	RunE:    runPeopleList,
}

var peopleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Start tracking someone",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			p, err := sess.AddPerson(cmdContext(cmd), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %sAdded%s %s (%s)\n", styleBoldGreen, colorReset, p.Name, p.ID)
			return nil
		})
	},
}

var peopleRemoveCmd = &cobra.Command{
	Use:     "remove <id|name>",
	Aliases: []string{"rm"},
	Short:   "Stop tracking someone",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPerson(cmd, args[0], func(sess *session.Session, p snapshot.Person) error {
			if err := sess.RemovePerson(cmdContext(cmd), p.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %sRemoved%s %s\n", styleBoldGreen, colorReset, p.Name)
			return nil
		})
	},
}

var peopleTaskCmd = &cobra.Command{
	Use:   "task <id|name> <label>",
	Short: "Attach a to-do to someone",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPerson(cmd, args[0], func(sess *session.Session, p snapshot.Person) error {
			return sess.AddTask(cmdContext(cmd), p.ID, strings.Join(args[1:], " "))
		})
	},
}

var peopleDoneCmd = &cobra.Command{
	Use:   "done <id|name> <task-id>",
	Short: "Mark a person's to-do as done",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPerson(cmd, args[0], func(sess *session.Session, p snapshot.Person) error {
			return sess.DoneTask(cmdContext(cmd), p.ID, args[1])
		})
	},
}

var interactCmd = &cobra.Command{
	Use:   "interact <id|name> [kind]",
	Short: "Record an interaction (person, call, gift, photo, message)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := "person"
		if len(args) == 2 {
			kind = strings.ToLower(args[1])
		}
		return withPerson(cmd, args[0], func(sess *session.Session, p snapshot.Person) error {
			if err := sess.Interact(cmdContext(cmd), p.ID, kind); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s+1 %s%s with %s\n", styleBoldGreen, kind, colorReset, p.Name)
			return nil
		})
	},
}

func init() {
	peopleCmd.AddCommand(peopleAddCmd, peopleRemoveCmd, peopleTaskCmd, peopleDoneCmd)
	rootCmd.AddCommand(peopleCmd, interactCmd)
}

// withSession opens a session for the duration of fn.
func withSession(cmd *cobra.Command, fn func(*session.Session) error) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fn(sess)
}

// withPerson resolves ref by id or name before calling fn.
func withPerson(cmd *cobra.Command, ref string, fn func(*session.Session, snapshot.Person) error) error {
	return withSession(cmd, func(sess *session.Session) error {
		p, ok := sess.FindPerson(ref)
		if !ok {
			return fmt.Errorf("%w: %q", session.ErrUnknownPerson, ref)
		}
		return fn(sess, p)
	})
}

func runPeopleList(cmd *cobra.Command, args []string) error {
	return withSession(cmd, func(sess *session.Session) error {
		s := sess.Snapshot()
		now := sess.Now()
		w := cmd.OutOrStdout()

		printHeader(w, "People")
		var rows [][]string
		for _, p := range s.People {
			rows = append(rows, []string{
				p.ID,
				p.Name,
				fmt.Sprint(social.PersonTotal(p)),
				lastSeen(social.DaysSince(p.LastInteraction, now)),
				interactionBreakdown(p.Interactions),
				fmt.Sprint(len(p.Tasks)),
			})
		}
		printTable(w, []string{"ID", "NAME", "TOTAL", "LAST", "BREAKDOWN", "TASKS"}, rows)

		for _, p := range s.People {
			if len(p.Tasks) == 0 {
				continue
			}
			printHeader(w, "Tasks for "+p.Name)
			for _, t := range p.Tasks {
				fmt.Fprintf(w, "  %s%s%s  %s\n", colorDim, t.ID, colorReset, t.Label)
			}
		}
		printField(w, "This month", fmt.Sprint(social.MonthlyDelta(s.People, s.Stats.LastInteractionTotal)))
		fmt.Fprintln(w)
		return nil
	})
}

func lastSeen(days int) string {
	switch {
	case days < 0:
		return colorDim + "never" + colorReset
	case days == 0:
		return colorGreen + "today" + colorReset
	case days > 30:
		return colorRed + fmt.Sprintf("%dd ago", days) + colorReset
	case days > 7:
		return colorYellow + fmt.Sprintf("%dd ago", days) + colorReset
	}
	return fmt.Sprintf("%dd ago", days)
}

func interactionBreakdown(m map[string]int) string {
	kinds := make([]string, 0, len(m))
	for k, v := range m {
		if v > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Strings(kinds)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s:%d", k, m[k])
	}
	return strings.Join(parts, " ")
}
