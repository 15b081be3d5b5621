package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flameo-chatbot/internal/api"
	"flameo-chatbot/internal/api/handlers"
	"flameo-chatbot/internal/app"
	"flameo-chatbot/internal/service"
	"flameo-chatbot/pkg/auth"
	"flameo-chatbot/pkg/config"
	"flameo-chatbot/pkg/logger"

	"github.com/google/gops/agent"
	"go.uber.org/zap"
)

var version = "dev"

// @title Flameo Chatbot API
// @version 1.0
// @description Answers free-text questions from a fixed question/answer corpus using TF-IDF similarity.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level, cfg.Logger.Format); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Flameo chatbot", zap.String("version", version))

	if cfg.Debug.Gops {
		if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
			appLogger.Warn("Failed to start gops agent", zap.Error(err))
		}
	}

	ctx := context.Background()
	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	var jwtManager *auth.JWTManager
	if cfg.Admin.JWTSecret != "" {
		jwtManager = auth.NewJWTManager(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	} else {
		appLogger.Warn("ADMIN_JWT_SECRET is not set, admin endpoints are open")
	}

	accessLog := service.NewAccessLogService(service.MaxAccessEntries)
	systemService := service.NewSystemService(version, application.Chat.CorpusSize)

	server := api.SetupRouter(api.Handlers{
		Chat:    handlers.NewChatHandler(application.Chat, appLogger),
		History: handlers.NewHistoryHandler(application.History, appLogger),
		System:  handlers.NewSystemHandler(systemService),
		Stats:   handlers.NewStatsHandler(accessLog, appLogger),
	}, accessLog, jwtManager, &cfg.Server, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := server.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := server.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
