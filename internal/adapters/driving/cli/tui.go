package cli

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/tui"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Open a full-screen session for asking questions and browsing playbooks.

Keys: enter asks or selects, ctrl+l switches between English and Spanish,
pgup/pgdn scroll the answer, esc goes back, ctrl+c quits. Press ? on the
menu for the full list.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("no-trace-db", false, "keep traces in memory only")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// A panic inside bubbletea leaves the terminal in raw mode; report it
	// as an error so the deferred program cleanup runs first.
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("tui panic stack:\n%s", debug.Stack())
			err = fmt.Errorf("tui crashed: %v", r)
		}
	}()

	s, err := loadServices(cmd)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{Ask: s.Ask, Playbooks: s.Playbooks})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()
	startWatch(ctx, s)

	return app.WithContext(ctx).Run()
}
