package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

var (
	queryLimit int
	queryJSON  bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Retrieve documents similar to a query",
	Long: `Retrieves the most relevant stored documents. Served by vector
similarity when the vector store is available, else by lexical token
overlap against the fallback store.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryLimit, "limit", "n", domain.DefaultRetrieveK, "maximum number of results")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	results, err := retrievalService.Retrieve(context.Background(), args[0], queryLimit)
	if err != nil {
		return fmt.Errorf("retrieve failed: %w", err)
	}

	if queryJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

func outputResultsJSON(cmd *cobra.Command, results []domain.DocumentRecord) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.DocumentRecord) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, doc := range results {
		snippet := doc.Text
		if len(snippet) > 160 {
			snippet = snippet[:160] + "..."
		}
		cmd.Printf("  [%d] %s\n", i+1, snippet)
		if source, ok := doc.Metadata["source"]; ok {
			cmd.Printf("      Source: %s\n", source)
		}
		cmd.Println()
	}
	return nil
}
