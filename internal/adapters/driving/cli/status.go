package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store and provider status",
	Long: `Reports the active embedding tier, vector store availability and
fallback store size, so a degraded setup is visible rather than silent.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	status, err := retrievalService.Status(context.Background())
	if err != nil {
		return fmt.Errorf("status failed: %w", err)
	}

	cmd.Printf("Embedding tier:   %s\n", status.Tier.Description())
	cmd.Printf("Embedding model:  %s\n", status.EmbeddingModel)
	if status.VectorAvailable {
		cmd.Printf("Vector store:     available (%s)\n", status.VectorDir)
	} else {
		cmd.Printf("Vector store:     unavailable - lexical fallback in use\n")
	}
	cmd.Printf("Fallback store:   %d record(s) at %s\n", status.FallbackRecords, status.FallbackPath)
	if status.Tier.Degraded() {
		cmd.Println()
		cmd.Println("Warning: stub embeddings active; retrieval quality is degraded.")
	}
	return nil
}
