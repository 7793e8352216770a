package cli

import (
	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long:  `Opens the full-screen board with one tab per collection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, tui.Run)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
