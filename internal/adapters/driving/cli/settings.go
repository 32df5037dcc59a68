package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
	"github.com/custodia-labs/launchpad-assist/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the knowledge base location and the LLM provider.

Environment variables (and a .env file) override the settings file for the
current process only.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure LLM provider",
	Long:  `Interactively choose the LLM provider used for RAG answers.`,
	RunE:  runSettingsLLM,
}

var settingsKBCmd = &cobra.Command{
	Use:   "kb [path-or-url]",
	Short: "Set the knowledge base location",
	Long: `Set the knowledge base to a directory of markdown files or to an HTTP
base URL serving index.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsKB,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsKBCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Knowledge Base]")
	cmd.Printf("  Path: %s\n", settings.KnowledgeBase.Path)
	cmd.Printf("  Watch: %s\n", yesNo(settings.KnowledgeBase.Watch))
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured (mock fallback)"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Router]")
	cmd.Printf("  Max steps: %d\n", settings.Router.MaxSteps)
	cmd.Printf("  Min chunk chars: %d\n", settings.Router.MinChunkChars)
	cmd.Printf("  Min token overlap: %d\n", settings.Router.MinTokenOverlap)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Port: %d\n", settings.Server.Port)
	cmd.Printf("  Allowed origins: %s\n", strings.Join(settings.Server.AllowedOrigins, ", "))
	cmd.Printf("  Rate limit: %g/s (burst %d)\n", settings.Server.RateLimit, settings.Server.RateBurst)
	cmd.Println()

	cmd.Println("[Trace]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Trace.Enabled))
	if settings.Trace.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Trace.Path)
	}
	cmd.Println()

	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'assist settings llm' to fix configuration issues.")
	}

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	return configureLLMProvider(cmd, svc, reader)
}

func runSettingsKB(cmd *cobra.Command, args []string) error {
	svc, err := settingsService(cmd)
	if err != nil {
		return err
	}
	if err := svc.SetKnowledgeBasePath(args[0]); err != nil {
		return fmt.Errorf("failed to set knowledge base: %w", err)
	}
	cmd.Printf("Knowledge base set to: %s\n", args[0])
	return nil
}

func configureLLMProvider(cmd *cobra.Command, svc driving.SettingsService, reader *bufio.Reader) error {
	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var baseURL string
	if selectedProvider.RequiresBaseURL() || selectedProvider == domain.AIProviderOllama {
		cmd.Print("Enter base URL: ")
		baseURL = readLine(reader)
		if baseURL == "" && selectedProvider.RequiresBaseURL() {
			return errors.New("base URL is required for this provider")
		}
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword(reader)
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := svc.SetLLMProvider(selectedProvider, model, apiKey, baseURL); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := svc.ValidateLLMConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("LLM provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// stdinIsTerminal is swapped out in tests so piped input is used.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

func readPassword(reader *bufio.Reader) string {
	if stdinIsTerminal() {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	return readLine(reader)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
