package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agusx1211/warrior/internal/clock"
	"github.com/agusx1211/warrior/internal/config"
	"github.com/agusx1211/warrior/internal/debug"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/store"
)

// testClock replaces the wall clock in tests.
var testClock clock.Clock

// openSession resolves the configuration and flags, opens the store and
// runs the startup pipeline.
func openSession(cmd *cobra.Command) (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	backend := cfg.Store
	if v, _ := cmd.Flags().GetString("store"); strings.TrimSpace(v) != "" {
		backend = strings.TrimSpace(v)
	}
	dir := cfg.ResolvedDataDir()
	if v, _ := cmd.Flags().GetString("data-dir"); strings.TrimSpace(v) != "" {
		dir = strings.TrimSpace(v)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	var clk clock.Clock = testClock
	if clk == nil {
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		clk = clock.System{Location: loc}
	}

	ctx := cmdContext(cmd)
	st, err := store.Open(ctx, backend, dir)
	if err != nil {
		return nil, err
	}
	debug.LogKV("cli", "store opened", "backend", backend, "dir", dir)
	sess, err := session.Open(ctx, st, clk)
	if err != nil {
		st.Close()
		return nil, err
	}
	return sess, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
