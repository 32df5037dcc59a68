// Package cli implements the assist command line interface.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
	"github.com/custodia-labs/launchpad-assist/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Options carries the global flags that shape how services are built.
type Options struct {
	// NoConfig skips the settings file and uses defaults plus the environment.
	NoConfig bool

	// NoTraceDB keeps traces in memory instead of the sqlite store.
	NoTraceDB bool
}

// Services holds the application services used by commands.
type Services struct {
	Settings  driving.SettingsService
	Ask       driving.AskService
	Playbooks driving.PlaybookService
	Traces    driving.TraceService

	// Watch follows knowledge base changes until ctx is done.
	// Nil when the knowledge base cannot be watched.
	Watch func(ctx context.Context) error

	// Close releases resources opened while building the services.
	Close func() error
}

// BootstrapFunc builds the services for a command invocation.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap   BootstrapFunc
	appServices *Services

	verbose  bool
	noConfig bool
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "assist",
	Short: "Troubleshooting assistant for SAP Fiori Launchpad",
	Long: `assist answers Fiori Launchpad troubleshooting questions from a local
knowledge base. Questions are classified into a known intent and answered
from curated playbooks, grounded with retrieved knowledge base passages and
an LLM, or met with clarifying questions.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return closeServices()
	},
}

func init() {
	// Command output belongs on stdout so answers can be piped.
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "ignore the settings file")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services on first use.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs already built services.
func SetServices(s *Services) {
	appServices = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadServices returns the services, building them on first use.
func loadServices(cmd *cobra.Command) (*Services, error) {
	if appServices != nil {
		return appServices, nil
	}
	if bootstrap == nil {
		return nil, errNotConfigured
	}

	opts := Options{NoConfig: noConfig}
	if f := cmd.Flags().Lookup("no-trace-db"); f != nil {
		opts.NoTraceDB = f.Value.String() == "true"
	}

	s, err := bootstrap(opts)
	if err != nil {
		return nil, err
	}
	appServices = s
	return appServices, nil
}

func closeServices() error {
	if appServices == nil || appServices.Close == nil {
		return nil
	}
	fn := appServices.Close
	appServices.Close = nil
	return fn()
}

func askService(cmd *cobra.Command) (driving.AskService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Ask == nil {
		return nil, errors.New("ask service not configured")
	}
	return s.Ask, nil
}

func playbookService(cmd *cobra.Command) (driving.PlaybookService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Playbooks == nil {
		return nil, errors.New("playbook service not configured")
	}
	return s.Playbooks, nil
}

func traceService(cmd *cobra.Command) (driving.TraceService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Traces == nil {
		return nil, errors.New("trace service not configured")
	}
	return s.Traces, nil
}

func settingsService(cmd *cobra.Command) (driving.SettingsService, error) {
	s, err := loadServices(cmd)
	if err != nil {
		return nil, err
	}
	if s.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return s.Settings, nil
}
