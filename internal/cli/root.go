// Package cli implements the flameo command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flameo-chatbot/internal/app"
	"flameo-chatbot/internal/models"
	"flameo-chatbot/pkg/config"
	"flameo-chatbot/pkg/logger"
)

// ChatService is the CLI-facing subset of the chat service.
type ChatService interface {
	Respond(ctx context.Context, rawInput string) (string, error)
	ListQuestions() []string
	CorpusSize() int
}

// HistoryService reads and clears the chat history.
type HistoryService interface {
	List(ctx context.Context) ([]*models.ChatRecord, error)
	Clear(ctx context.Context) error
}

var (
	version = "dev"

	cfg            *config.Config
	appLogger      = zap.NewNop()
	chatService    ChatService
	historyService HistoryService
	closeServices  = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "flameo",
	Short: "Flameo FAQ chatbot",
	Long: `Flameo answers free-text questions with the closest entry of a fixed
question/answer corpus and keeps a log of every exchange.

Configuration is read from the environment and an optional .env file
(CORPUS_LOCATION, HISTORY_BACKEND, ...), the same way the HTTP server does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cfg != nil {
			return nil
		}
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if err := logger.Init(cfg.Logger.Level, logger.FormatConsole); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		appLogger = logger.Get()
		return nil
	},
}

// Execute runs the root command with the build version.
func Execute(ctx context.Context, buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	defer func() { closeServices() }()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// ensureServices loads the corpus and history store on first use.
func ensureServices(ctx context.Context) error {
	if chatService != nil && historyService != nil {
		return nil
	}
	a, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	chatService = a.Chat
	historyService = a.History
	closeServices = a.Close
	return nil
}
