package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/buildinfo"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Current().String())
		},
	})
}
