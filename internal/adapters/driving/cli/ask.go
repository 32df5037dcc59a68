package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/adapters/driving/render"
	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

var (
	askLang   string
	askOutput string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a troubleshooting question",
	Long: `Classifies the question, picks a route and prints the structured answer.

Examples:
  assist ask "Tiles are not visible after role assignment"
  assist ask --lang es "dame 6 pasos para limpiar la cache del launchpad"
  assist ask --output json "FLP blank after activation"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askLang, "lang", "l", "en", "answer language (en or es)")
	askCmd.Flags().StringVarP(&askOutput, "output", "o", formatText, "output format (text, json, yaml)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := validateFormat(askOutput); err != nil {
		return err
	}
	locale, err := domain.ParseLocale(askLang)
	if err != nil {
		return err
	}

	svc, err := askService(cmd)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	resp, err := svc.Ask(cmd.Context(), question, locale)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) {
			return err
		}
		return fmt.Errorf("ask failed: %w", err)
	}
	resp.Normalise()

	if askOutput != formatText {
		return writeStructured(cmd, askOutput, resp)
	}

	md := render.ResponseMarkdown(resp, locale)
	if width, ok := terminalWidth(cmd.OutOrStdout()); ok {
		md = render.Terminal(md, width)
	}
	cmd.Print(md)
	return nil
}
