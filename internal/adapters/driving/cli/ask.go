package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alcove-ai/alcove/internal/core/domain"
)

var askLimit int

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question over retrieved context",
	Long: `Retrieves the documents most relevant to the question and asks
the configured answer model. Without a GROQ_API_KEY the stub answerer is
used and its output is clearly tagged.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", domain.DefaultRetrieveK, "number of context documents")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	answer, err := retrievalService.Ask(context.Background(), args[0], askLimit)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println("Answer:")
	cmd.Println(answer.Result)
	cmd.Println()

	if len(answer.Sources) == 0 {
		cmd.Println("No sources found.")
		return nil
	}

	cmd.Println("Sources:")
	for i, doc := range answer.Sources {
		source := doc.Metadata["source"]
		if source == "" {
			source = "unknown source"
		}
		cmd.Printf("  %d. %s\n", i+1, source)
	}
	if answer.Degraded {
		cmd.Println()
		cmd.Println("(served by lexical fallback search)")
	}
	return nil
}
