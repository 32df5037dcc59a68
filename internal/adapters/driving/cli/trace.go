package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/launchpad-assist/internal/core/services"
)

var (
	traceLimit  int
	traceOutput string
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Inspect answered questions",
}

var traceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent traces, newest first",
	RunE:  runTraceList,
}

var traceStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count answered questions per intent",
	RunE:  runTraceStats,
}

func init() {
	traceStatsCmd.Flags().StringVarP(&traceOutput, "output", "o", formatText, "output format (text, json, yaml)")
	traceListCmd.Flags().IntVarP(&traceLimit, "limit", "n", services.DefaultTraceLimit, "maximum number of traces")
	traceListCmd.Flags().StringVarP(&traceOutput, "output", "o", formatText, "output format (text, json, yaml)")
	traceCmd.AddCommand(traceListCmd, traceStatsCmd)
	rootCmd.AddCommand(traceCmd)
}

func runTraceList(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(traceOutput); err != nil {
		return err
	}
	svc, err := traceService(cmd)
	if err != nil {
		return err
	}

	traces, err := svc.Recent(cmd.Context(), traceLimit)
	if err != nil {
		return err
	}
	if traceOutput != formatText {
		return writeStructured(cmd, traceOutput, traces)
	}

	if len(traces) == 0 {
		cmd.Println("No traces recorded.")
		return nil
	}
	for _, t := range traces {
		cmd.Printf("%s  %-10s %-30s %5dms  %s\n",
			t.CreatedAt.Format("2006-01-02 15:04:05"), t.Route, t.Intent, t.LatencyMs, excerpt(t.Question, 60))
	}
	return nil
}

func runTraceStats(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(traceOutput); err != nil {
		return err
	}
	svc, err := traceService(cmd)
	if err != nil {
		return err
	}

	counts, err := svc.Counts(cmd.Context())
	if err != nil {
		return err
	}
	if traceOutput != formatText {
		return writeStructured(cmd, traceOutput, counts)
	}

	if len(counts) == 0 {
		cmd.Println("No traces recorded.")
		return nil
	}
	total := 0
	for _, c := range counts {
		cmd.Printf("%-34s %5d\n", c.Intent, c.Count)
		total += c.Count
	}
	cmd.Printf("%-34s %5d\n", "total", total)
	return nil
}
