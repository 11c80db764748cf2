package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/cliptrim/api/docs"
	"github.com/cliptrim/api/internal/client"
	"github.com/cliptrim/api/internal/config"
	"github.com/cliptrim/api/internal/handler"
	"github.com/cliptrim/api/internal/service"
	"github.com/cliptrim/api/internal/storage"
	"github.com/cliptrim/api/internal/transcoder"
	"github.com/cliptrim/api/pkg/logger"
	"github.com/cliptrim/api/pkg/response"
)

// @title          ClipTrim API
// @version        1.0
// @description    Video trimming service — downloads a source video, trims and fades it with ffmpeg, and hosts the result with time-based cleanup.
// @host           localhost:8080
// @BasePath       /
// @schemes        http https
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info").Fatal("failed to load config", zap.Error(err))
	}

	log := logger.Init(cfg.Server.LogLevel)
	defer logger.Sync()

	// Storage directory
	store, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}
	log.Info("storage ready", zap.String("dir", store.Dir()))

	// External collaborators
	downloader := client.NewDownloader(cfg.Fetch.Timeout)
	ffmpeg := transcoder.New(
		transcoder.WithPath(cfg.Transcode.FFmpegPath),
		transcoder.WithTimeout(cfg.Transcode.Timeout),
	)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := ffmpeg.VerifyInstalled(ctx); err != nil {
			log.Warn("ffmpeg probe failed; trim requests will fail until it is available", zap.Error(err))
		}
		cancel()
	}

	// Services
	trimService := service.NewTrimService(store, downloader, ffmpeg, cfg.Transcode.TempDir, cfg.Server.BaseURL)
	cleanupService := service.NewCleanupService(store, cfg.Cleanup.Interval, cfg.Cleanup.Retention)

	// Handlers
	validate := validator.New()
	trimHandler := handler.NewTrimHandler(trimService, validate)
	videoHandler := handler.NewVideoHandler(store)
	statusHandler := handler.NewStatusHandler(store, cleanupService)

	// Retention sweeper: one immediate pass, then recurring
	cleanupService.Start()
	defer cleanupService.Stop()

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	app.Get("/", statusHandler.Root)
	app.Get("/health", statusHandler.Health)
	app.Get("/cleanup", statusHandler.Cleanup)
	app.Post("/trim", trimHandler.Trim)
	app.Get("/video/:filename", videoHandler.Serve)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		cleanupService.Stop()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Server.Port
	log.Info("server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return response.Error(c, code, response.CodeServiceError, message, nil)
}
