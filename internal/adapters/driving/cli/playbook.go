package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

var (
	playbookLang   string
	playbookOutput string
)

var playbookCmd = &cobra.Command{
	Use:     "playbook",
	Aliases: []string{"playbooks"},
	Short:   "Browse the per-intent playbooks",
}

var playbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List intents with a playbook",
	RunE:  runPlaybookList,
}

var playbookShowCmd = &cobra.Command{
	Use:   "show [intent]",
	Short: "Show the playbook of an intent",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlaybookShow,
}

func init() {
	playbookShowCmd.Flags().StringVarP(&playbookLang, "lang", "l", "en", "playbook language (en or es)")
	playbookShowCmd.Flags().StringVarP(&playbookOutput, "output", "o", formatText, "output format (text, json, yaml)")
	playbookCmd.AddCommand(playbookListCmd)
	playbookCmd.AddCommand(playbookShowCmd)
	rootCmd.AddCommand(playbookCmd)
}

func runPlaybookList(cmd *cobra.Command, _ []string) error {
	svc, err := playbookService(cmd)
	if err != nil {
		return err
	}
	for _, intent := range svc.Intents() {
		cmd.Println(intent)
	}
	return nil
}

func runPlaybookShow(cmd *cobra.Command, args []string) error {
	if err := validateFormat(playbookOutput); err != nil {
		return err
	}
	locale, err := domain.ParseLocale(playbookLang)
	if err != nil {
		return err
	}
	svc, err := playbookService(cmd)
	if err != nil {
		return err
	}

	view, err := svc.Get(args[0], locale)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownIntent) {
			if suggestions := svc.Suggest(args[0]); len(suggestions) > 0 {
				return fmt.Errorf("%w\nDid you mean: %s?", err, strings.Join(suggestions, ", "))
			}
		}
		return err
	}

	if playbookOutput != formatText {
		return writeStructured(cmd, playbookOutput, view)
	}

	cmd.Printf("%s\n", view.Intent)
	cmd.Println(strings.Repeat("=", len(view.Intent)))
	if view.Summary != "" {
		cmd.Printf("\n%s\n", view.Summary)
	}
	printList(cmd, "Starter actions", view.StarterActions, true)
	printList(cmd, "Extended actions", view.ExtendedActions, true)
	printList(cmd, "Clarifying questions", view.ClarifyQuestions, false)
	if view.EscalationHint != "" {
		cmd.Printf("\nEscalation: %s\n", view.EscalationHint)
	}
	if len(view.CitationFiles) > 0 {
		cmd.Printf("\nCites: %s\n", strings.Join(view.CitationFiles, ", "))
	}
	return nil
}

func printList(cmd *cobra.Command, title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	cmd.Printf("\n%s:\n", title)
	for i, item := range items {
		if numbered {
			cmd.Printf("  %d. %s\n", i+1, item)
		} else {
			cmd.Printf("  - %s\n", item)
		}
	}
}
