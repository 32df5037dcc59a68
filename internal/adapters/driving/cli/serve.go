package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the JSON API used by the web UI.

Endpoints:
  POST /ask        {"question": "...", "language": "en|es"}
  GET  /health
  GET  /kb/stats

The knowledge base is reloaded when its markdown files change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from settings)")
	serveCmd.Flags().Bool("no-trace-db", false, "keep traces in memory instead of sqlite")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	s, err := loadServices(cmd)
	if err != nil {
		return err
	}
	if s.Settings == nil || s.Ask == nil {
		return errNotConfigured
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cfg := httpapi.ConfigFromSettings(settings)
	if servePort > 0 {
		cfg.Addr = fmt.Sprintf(":%d", servePort)
	}

	server, err := httpapi.NewServer(s.Ask, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startWatch(ctx, s)

	cmd.Printf("API listening on http://localhost%s\n", cfg.Addr)
	return server.Run(ctx)
}

// startWatch follows knowledge base changes in the background.
func startWatch(ctx context.Context, s *Services) {
	if s.Watch == nil {
		return
	}
	go func() {
		if err := s.Watch(ctx); err != nil {
			// Watching is best effort; answers keep using the cached corpus.
			logger.Warn("knowledge base watcher stopped: %v", err)
		}
	}()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
