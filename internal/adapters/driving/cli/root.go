// Package cli provides the cobra command tree for the alcove binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/alcove-ai/alcove/internal/adapters/driven/config/file"
	"github.com/alcove-ai/alcove/internal/adapters/driven/embedding"
	"github.com/alcove-ai/alcove/internal/adapters/driven/fallback"
	"github.com/alcove-ai/alcove/internal/adapters/driven/llm"
	groqllm "github.com/alcove-ai/alcove/internal/adapters/driven/llm/groq"
	"github.com/alcove-ai/alcove/internal/adapters/driven/producer"
	"github.com/alcove-ai/alcove/internal/adapters/driven/vector/sqvect"
	"github.com/alcove-ai/alcove/internal/core/domain"
	"github.com/alcove-ai/alcove/internal/core/ports/driven"
	"github.com/alcove-ai/alcove/internal/core/ports/driving"
	"github.com/alcove-ai/alcove/internal/core/services"
	"github.com/alcove-ai/alcove/internal/logger"
)

// version is set by Execute.
var version = "dev"

// Persistent flags.
var (
	verboseFlag bool
	configDir   string
)

// Services wired by initServices and used by the subcommands.
var (
	configStore      driven.ConfigStore
	ingestService    driving.IngestService
	retrievalService driving.RetrievalService
)

var rootCmd = &cobra.Command{
	Use:   "alcove",
	Short: "Local document store with semantic retrieval",
	Long: `Alcove ingests free-form text, embeds it, and persists it for
similarity retrieval. When no embedding provider or vector store is
available it degrades to a deterministic stub embedder and a lexical
fallback store, so ingestion and retrieval always work offline.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the CLI with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.alcove)")
}

// initServices wires the adapter stack. Runs before every command.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	store, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	configStore = store
	settings := configfile.LoadSettings(store)

	provider := sqvect.NewProvider(settings.Store.VectorDir, settings.Store.Collection)
	fallbackStore := fallback.NewJSONStore(settings.Store.FallbackPath)
	manager := services.NewStoreManager(provider, embedding.Resolve, settings.Embedding)

	ingestService = services.NewIngestService(manager, fallbackStore, producer.NewWebProducer())
	retrievalService = services.NewRetrievalService(manager, fallbackStore, newAnswerer(settings.Answer))
	return nil
}

// newAnswerer selects the remote answer provider when keyed, else the
// deterministic stub.
func newAnswerer(settings domain.AnswerSettings) driven.AnswerService {
	if settings.GroqAPIKey != "" {
		svc, err := groqllm.NewAnswerService(groqllm.Config{
			APIKey: settings.GroqAPIKey,
			Model:  settings.Model,
		})
		if err == nil {
			return svc
		}
		logger.Warn("Failed to initialize answer provider, using stub: %v", err)
	} else {
		logger.Info("No GROQ_API_KEY configured; using stub answerer")
	}
	return llm.NewStubAnswerer(settings.Model)
}
