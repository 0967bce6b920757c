package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/autoscience/autoscience/internal/conversation"
	"github.com/autoscience/autoscience/internal/llm"
	"github.com/autoscience/autoscience/internal/qualtrics"
	"github.com/autoscience/autoscience/internal/service"
	"github.com/autoscience/autoscience/internal/store"
	"github.com/autoscience/autoscience/internal/transport"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "autoscience",
		Short:         "Chat-driven survey ideation, publishing and simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newChatCmd(), newDiscordCmd())
	return root
}

func newChatCmd() *cobra.Command {
	var attachDir string
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot on the console",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			engine, closer, err := buildEngine(ctx)
			if err != nil {
				return err
			}
			defer closer()

			return transport.NewConsole(engine, attachDir).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&attachDir, "attachments", "attachments", "directory for saved attachments")
	return cmd
}

func newDiscordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discord",
		Short: "Run the bot against Discord",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			token := os.Getenv("DISCORD_TOKEN")
			if token == "" {
				return fmt.Errorf("DISCORD_TOKEN is not set")
			}

			engine, closer, err := buildEngine(ctx)
			if err != nil {
				return err
			}
			defer closer()

			bot, err := transport.NewDiscord(token, engine)
			if err != nil {
				return err
			}
			return bot.Run(ctx)
		},
	}
}

// buildEngine wires store, completion client, adapters and services.
// The returned closer releases the blob store if it holds resources.
func buildEngine(ctx context.Context) (*conversation.Engine, func(), error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	blobs, closer, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	var client llm.Client
	switch llmCfg.Provider {
	case llm.ProviderGemini:
		client, err = llm.NewGeminiClient(ctx, llmCfg, observer)
		if err != nil {
			closer()
			return nil, nil, err
		}
	default:
		client = llm.NewOllamaClient(llmCfg, observer)
	}

	publisher := qualtrics.NewClient(qualtrics.LoadConfig())

	engine := conversation.NewEngine(
		service.NewSurveyService(client, blobs),
		service.NewSimulationService(client, blobs),
		service.NewReportService(blobs),
		publisher,
		blobs,
	)
	return engine, closer, nil
}

func openStore() (store.BlobStore, func(), error) {
	if os.Getenv("AUTOSCIENCE_STORE") == "sqlite" {
		dbPath := os.Getenv("AUTOSCIENCE_DB")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, nil, fmt.Errorf("finding home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".autoscience", "blobs.db")
		}
		s, err := store.OpenSQLiteStore(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	}

	dataDir := os.Getenv("AUTOSCIENCE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	return store.NewFSStore(dataDir), func() {}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
