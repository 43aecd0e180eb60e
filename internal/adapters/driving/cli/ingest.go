package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// ingestSource is a flag naming the provenance of ingested text.
var ingestSource string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Add documents to the store",
	Long: `Adds documents to the vector store, degrading to the fallback
store when the vector store is unavailable.`,
}

var ingestTextCmd = &cobra.Command{
	Use:   "text [text...]",
	Short: "Ingest raw text arguments, one document each",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngestText,
}

var ingestFileCmd = &cobra.Command{
	Use:   "file [path...]",
	Short: "Ingest the contents of files, one document each",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIngestFile,
}

var ingestURLCmd = &cobra.Command{
	Use:   "url [url]",
	Short: "Fetch a web page and ingest its text",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestURL,
}

func init() {
	ingestTextCmd.Flags().StringVarP(&ingestSource, "source", "s", "", "source name recorded in document metadata")

	ingestCmd.AddCommand(ingestTextCmd)
	ingestCmd.AddCommand(ingestFileCmd)
	ingestCmd.AddCommand(ingestURLCmd)
	rootCmd.AddCommand(ingestCmd)
}

func runIngestText(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	metadatas := make([]map[string]string, len(args))
	for i := range args {
		metadatas[i] = map[string]string{}
		if ingestSource != "" {
			metadatas[i]["source"] = ingestSource
		}
	}

	if err := ingestService.Ingest(context.Background(), args, metadatas); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d document(s)\n", len(args))
	return nil
}

func runIngestFile(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	texts := make([]string, 0, len(args))
	metadatas := make([]map[string]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		texts = append(texts, string(data))
		metadatas = append(metadatas, map[string]string{"source": filepath.Base(path)})
	}

	if err := ingestService.Ingest(context.Background(), texts, metadatas); err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d file(s)\n", len(args))
	return nil
}

func runIngestURL(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	url := args[0]
	if err := ingestService.IngestSource(context.Background(), url); err != nil {
		return fmt.Errorf("ingest %s failed: %w", url, err)
	}

	cmd.Printf("Ingested page: %s\n", url)
	return nil
}
