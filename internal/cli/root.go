package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/buildinfo"
	"github.com/agusx1211/warrior/internal/debug"
	"github.com/agusx1211/warrior/internal/failedcmd"
	"github.com/agusx1211/warrior/internal/tui"
)

const (
	// ANSI color codes
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"

	// Combined styles
	styleBoldCyan   = "\033[1;36m"
	styleBoldGreen  = "\033[1;32m"
	styleBoldYellow = "\033[1;33m"
	styleBoldWhite  = "\033[1;37m"
)

var rootCmd = &cobra.Command{
	Use:   "warrior",
	Short: "Gamified daily, weekly, monthly and annual habit tracker",
	Long: colorBold + `
 __      __              _
 \ \    / /_ _ _ _ _ _(_)___ _ _
  \ \/\/ / _` + "`" + ` | '_| '_| / _ \ '_|
   \_/\_/\__,_|_| |_| |_\___/_|` + colorReset + `

  ` + styleBoldCyan + `Habit tracker` + colorReset + ` v` + buildinfo.Current().Version + `

  Check off Hunos every day, Setas every week and Trenes every month.
  Completing a whole round earns a pleno.

` + colorBold + `Getting Started:` + colorReset + `
  warrior                         Launch the interactive TUI
  warrior status                  Show today's progress
  warrior list daily              List the daily items
  warrior toggle daily huno-3     Check or uncheck an item
  warrior stats                   Show counters and charts
  warrior export --format yaml    Dump everything`,

	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()
		// If running in a terminal, launch the TUI.
		if isatty.IsTerminal(os.Stdout.Fd()) {
			return tui.Run(sess)
		}
		// Non-interactive: show brief status.
		return runStatusBrief(cmd.OutOrStdout(), sess.Snapshot())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().Bool("debug", false, "Enable verbose debug logging to ~/.warrior/debug/")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the snapshot (overrides config)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: file, sqlite or memory (overrides config)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debugFlag, _ := cmd.Flags().GetBool("debug")
		if !debugFlag && !debug.ShouldEnableFromEnv() {
			return nil
		}
		logPath, err := debug.Init()
		if err != nil {
			return fmt.Errorf("initializing debug logger: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s[debug]%s logging to %s\n", colorDim, colorReset, logPath)
		bi := buildinfo.Current()
		debug.LogKV("cli", "warrior starting",
			"version", bi.Version,
			"commit", bi.CommitHash,
			"build_date", bi.BuildDate,
			"pid", os.Getpid(),
			"command", cmd.Name(),
			"args", args,
		)
		return nil
	}
}

// Execute runs the root command.
func Execute() {
	defer debug.Close()
	if err := rootCmd.Execute(); err != nil {
		debug.Logf("cli", "exit with error: %v", err)
		recordFailedCommand(err, os.Args)
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	debug.Log("cli", "exit success")
}

// recordFailedCommand keeps usage mistakes on disk while debugging is on.
func recordFailedCommand(err error, argv []string) {
	if !debug.Enabled() && !debug.ShouldEnableFromEnv() {
		return
	}
	_, path, recErr := failedcmd.Default().Record(err, argv)
	if recErr != nil {
		debug.Logf("cli", "recording failed command: %v", recErr)
		return
	}
	if path != "" {
		debug.Logf("cli", "failed command recorded at %s", path)
	}
}
