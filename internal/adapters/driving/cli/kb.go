package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	kbOutput string
	kbTopK   int
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

var kbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE:  runKBStats,
}

var kbDocsCmd = &cobra.Command{
	Use:   "docs",
	Short: "List loaded documents",
	RunE:  runKBDocs,
}

var kbChunksCmd = &cobra.Command{
	Use:   "chunks [query]",
	Short: "Show the chunks retrieved for a query",
	Long: `Runs BM25 retrieval for the query and prints the best chunks with
their scores. Useful to see what grounds a RAG answer.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKBChunks,
}

func init() {
	kbCmd.PersistentFlags().StringVarP(&kbOutput, "output", "o", formatText, "output format (text, json, yaml)")
	kbChunksCmd.Flags().IntVarP(&kbTopK, "top", "k", 5, "number of chunks")
	kbCmd.AddCommand(kbStatsCmd)
	kbCmd.AddCommand(kbDocsCmd)
	kbCmd.AddCommand(kbChunksCmd)
	rootCmd.AddCommand(kbCmd)
}

func runKBStats(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(kbOutput); err != nil {
		return err
	}
	svc, err := askService(cmd)
	if err != nil {
		return err
	}

	stats, err := svc.Stats(cmd.Context())
	if err != nil {
		return err
	}
	if kbOutput != formatText {
		return writeStructured(cmd, kbOutput, stats)
	}

	cmd.Printf("Source:      %s\n", stats.Source)
	cmd.Printf("Documents:   %d\n", stats.Documents)
	cmd.Printf("Chunks:      %d\n", stats.Chunks)
	cmd.Printf("Avg length:  %.1f tokens\n", stats.AvgChunkLength)
	cmd.Printf("Vocabulary:  %d terms\n", stats.Vocabulary)
	return nil
}

func runKBDocs(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(kbOutput); err != nil {
		return err
	}
	svc, err := askService(cmd)
	if err != nil {
		return err
	}

	docs, err := svc.Documents(cmd.Context())
	if err != nil {
		return err
	}
	if kbOutput != formatText {
		return writeStructured(cmd, kbOutput, docs)
	}

	if len(docs) == 0 {
		cmd.Println("No documents loaded.")
		return nil
	}
	for _, d := range docs {
		cmd.Printf("%s (%d chunks)\n", d.Name, d.Chunks)
	}
	return nil
}

func runKBChunks(cmd *cobra.Command, args []string) error {
	if err := validateFormat(kbOutput); err != nil {
		return err
	}
	svc, err := askService(cmd)
	if err != nil {
		return err
	}

	chunks, err := svc.Retrieve(cmd.Context(), strings.Join(args, " "), kbTopK)
	if err != nil {
		return err
	}
	if kbOutput != formatText {
		return writeStructured(cmd, kbOutput, chunks)
	}

	if len(chunks) == 0 {
		cmd.Println("No matching chunks.")
		return nil
	}
	for i, sc := range chunks {
		cmd.Printf("[%d] %s :: %s (%.3f)\n", i+1, sc.Chunk.SourceID, sc.Chunk.Heading, sc.Score)
		cmd.Printf("    %s\n\n", excerpt(sc.Chunk.Text, 160))
	}
	return nil
}

func excerpt(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if r := []rune(text); len(r) > n {
		return string(r[:n]) + "..."
	}
	return text
}
