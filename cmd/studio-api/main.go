package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	httpadapter "github.com/worklab-studio/Nextyoulinkedin/internal/adapters/http"
	"github.com/worklab-studio/Nextyoulinkedin/internal/adapters/llm"
	firestorestore "github.com/worklab-studio/Nextyoulinkedin/internal/adapters/storage/firestore"
	memstore "github.com/worklab-studio/Nextyoulinkedin/internal/adapters/storage/memory"
	sqlitestore "github.com/worklab-studio/Nextyoulinkedin/internal/adapters/storage/sqlite"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/prompts"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/schedule"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/session"
	"github.com/worklab-studio/Nextyoulinkedin/internal/config"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
	"github.com/worklab-studio/Nextyoulinkedin/internal/observability"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "studio-api",
	Short: "Nextyou content studio API",
	Long: `studio-api serves the Nextyou LinkedIn content studio: persona-driven
draft generation over an editable prompt stack, plus a date-indexed
publishing calendar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(ctx context.Context) error {
	if verbose {
		observability.SetLevel(zerolog.DebugLevel)
	}
	log := observability.Logger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	generator, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	store, cleanup, err := buildScheduleStore(ctx, cfg)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	fragments := prompts.NewStore()
	sessions := session.NewManager(fragments, generator)
	scheduleSvc := schedule.NewService(store)

	handler := httpadapter.NewServer(sessions, fragments, scheduleSvc)

	log.Info().
		Str("addr", cfg.Server.Addr).
		Str("provider", string(cfg.Generation.Provider)).
		Str("storage", cfg.Storage.Backend).
		Msg("studio API listening")

	return http.ListenAndServe(cfg.Server.Addr, handler)
}

func buildGenerator(ctx context.Context, cfg *config.Config) (domain.GenerationClient, error) {
	log := observability.Logger()

	switch cfg.Generation.Provider {
	case config.ProviderOpenAI:
		log.Info().Str("model", cfg.Generation.OpenAIModel).Msg("using OpenAI generation client")
		return llm.NewOpenAIClient(llm.OpenAIOptions{
			APIKey:          cfg.Generation.OpenAIAPIKey,
			Model:           cfg.Generation.OpenAIModel,
			BaseURL:         cfg.Generation.OpenAIBaseURL,
			Temperature:     cfg.Generation.Temperature,
			MaxOutputTokens: cfg.Generation.MaxOutputTokens,
		})

	case config.ProviderGemini:
		log.Info().Str("model", cfg.Generation.GeminiModel).Msg("using Gemini generation client")
		return llm.NewGeminiClient(ctx, llm.GeminiOptions{
			Project:         cfg.Generation.GCPProject,
			Location:        cfg.Generation.GCPLocation,
			Model:           cfg.Generation.GeminiModel,
			Temperature:     cfg.Generation.Temperature,
			MaxOutputTokens: cfg.Generation.MaxOutputTokens,
		})

	default:
		log.Info().Msg("using mock generation client")
		return llm.NewMockClient(), nil
	}
}

func buildScheduleStore(ctx context.Context, cfg *config.Config) (domain.ScheduleStore, func() error, error) {
	log := observability.Logger()

	switch cfg.Storage.Backend {
	case "sqlite":
		log.Info().Str("path", cfg.Storage.SQLitePath).Msg("using SQLite schedule store")
		store, err := sqlitestore.NewScheduleStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case "firestore":
		log.Info().Str("project", cfg.Storage.GCPProject).Msg("using Firestore schedule store")
		store, err := firestorestore.NewStore(ctx, cfg.Storage.GCPProject)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		log.Info().Msg("using in-memory schedule store")
		return memstore.NewScheduleStore(), nil, nil
	}
}
