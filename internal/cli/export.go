package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/export"
	"github.com/agusx1211/warrior/internal/session"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the whole state",
	Long: `Export the whole state.

Formats:
  yaml      one row per fact, grouped by category (default)
  json      the same rows as JSON
  snapshot  the raw persisted snapshot, suitable for 'warrior restore'`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var restoreCmd = &cobra.Command{
	Use:     "restore <file|->",
	Aliases: []string{"import"},
	Short:   "Replace the state with a snapshot export",
	Args:    cobra.ExactArgs(1),
	RunE:    runRestore,
}

func init() {
	exportCmd.Flags().StringP("format", "f", export.FormatYAML, "Output format: yaml, json or snapshot")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd, restoreCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	return withSession(cmd, func(sess *session.Session) error {
		var w io.Writer = cmd.OutOrStdout()
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			w = f
		}
		if err := export.Write(w, sess.Snapshot(), format, sess.Now()); err != nil {
			return err
		}
		if output != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "  %sExported%s to %s\n", styleBoldGreen, colorReset, output)
		}
		return nil
	})
}

func runRestore(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}
	return withSession(cmd, func(sess *session.Session) error {
		if err := sess.Restore(cmdContext(cmd), data); err != nil {
			return fmt.Errorf("restoring: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %sRestored%s snapshot for %s\n", styleBoldGreen, colorReset, sess.Snapshot().LastDailyResetKey)
		return nil
	})
}
