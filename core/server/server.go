package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/config"
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/core/storage"
	"event-rsvp-api/modules/auth"
	"event-rsvp-api/modules/event"
	"event-rsvp-api/modules/guest"
	"event-rsvp-api/modules/media"
	"event-rsvp-api/modules/settings"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
)

// Run boots everything: config, logging, Postgres, Redis, the object
// store, the background worker and the HTTP server. It blocks until
// SIGINT/SIGTERM, then shuts down gracefully.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	defer logger.Sync()

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("init redis: %w", err)
	}

	store := storage.NewS3Store(storage.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
	})

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	taskClient := asynq.NewClient(redisOpt)
	defer taskClient.Close()

	worker := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	media.RegisterTasks(mux, store)
	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:Worker:Error", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	api := e.Group("/api/v1")

	// The Redis cache doubles as the middleware's token blacklist checker.
	mw := middleware.NewMiddleware(redisCache)

	auth.Init(api, db, redisCache, mw)
	settingsService := settings.Init(api, db, redisCache, mw)
	event.Init(api, db, redisCache, mw, settingsService)
	media.Init(api, db, store, taskClient, mw)
	guest.Init(api, db, mw)

	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server started", "addr", addr, "env", cfg.Server.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	worker.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
