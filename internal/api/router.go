package api

import (
	"os"
	"path/filepath"

	"flameo-chatbot/docs"
	"flameo-chatbot/internal/api/handlers"
	"flameo-chatbot/internal/service"
	"flameo-chatbot/pkg/auth"
	"flameo-chatbot/pkg/config"
	"flameo-chatbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers groups the route handlers the router mounts.
type Handlers struct {
	Chat    *handlers.ChatHandler
	History *handlers.HistoryHandler
	System  *handlers.SystemHandler
	Stats   *handlers.StatsHandler
}

// SetupRouter builds the fiber app. jwtManager may be nil, which leaves the admin routes open.
func SetupRouter(
	h Handlers,
	accessLog *service.AccessLogService,
	jwtManager *auth.JWTManager,
	serverCfg *config.ServerConfig,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Flameo Chatbot",
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())
	app.Use(middleware.AccessLog(accessLog))

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	webStaticPath := findWebStaticPath(serverCfg.StaticDir, appLogger)
	if webStaticPath != "" {
		appLogger.Info("Serving static files", zap.String("path", webStaticPath))
		app.Static("/static", webStaticPath)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		if webStaticPath != "" {
			return c.SendFile(filepath.Join(webStaticPath, "index.html"))
		}
		return h.System.Welcome(c)
	})
	app.Get("/health", h.System.Health)

	admin := middleware.AdminMiddleware(jwtManager, appLogger)

	api := app.Group("/api")
	api.Get("/info", h.System.Info)
	api.Post("/chat", h.Chat.Chat)
	api.Get("/questions", h.Chat.ListQuestions)
	api.Get("/history", h.History.ListHistory)
	api.Delete("/history", admin, h.History.ClearHistory)

	app.Get("/stats", h.Stats.Stats)
	app.Post("/stats/clear", admin, h.Stats.ClearStats)

	return app
}

// findWebStaticPath returns the first directory holding index.html, trying the
// configured one before the usual locations relative to the working directory.
func findWebStaticPath(configured string, logger *zap.Logger) string {
	paths := []string{
		"./web/static",
		"../web/static",
		"../../web/static",
	}
	if configured != "" {
		paths = append([]string{configured}, paths...)
	}

	for _, path := range paths {
		if fileExists(filepath.Join(path, "index.html")) {
			return path
		}
		logger.Debug("Tried static path", zap.String("path", path))
	}

	logger.Info("Web static directory not found, serving JSON welcome on /")
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
