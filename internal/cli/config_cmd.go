package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/config"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg"},
	Short:   "Show warrior configuration",
	Long: `Show or change the user-level settings in ~/.warrior/config.json.

Keys:
  store     file (default), sqlite or memory
  data_dir  where the snapshot lives (default ~/.warrior)
  timezone  IANA zone day boundaries follow (default local)`,
	RunE: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	printHeader(w, "Config")
	values := cfg.Values()
	for _, k := range config.Keys() {
		v := values[k]
		if v == "" {
			v = colorDim + "(default)" + colorReset
		}
		printField(w, k, v)
	}
	printField(w, "resolved dir", cfg.ResolvedDataDir())
	fmt.Fprintln(w)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s%s%s = %s\n", styleBoldGreen, args[0], colorReset, cfg.Values()[args[0]])
	return nil
}
