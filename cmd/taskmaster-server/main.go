package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskmasterhq/taskmaster/internal/auth"
	"github.com/taskmasterhq/taskmaster/internal/config"
	"github.com/taskmasterhq/taskmaster/internal/database"
	"github.com/taskmasterhq/taskmaster/internal/handlers"
	"github.com/taskmasterhq/taskmaster/internal/logger"
	"github.com/taskmasterhq/taskmaster/internal/middleware"
	"github.com/taskmasterhq/taskmaster/internal/redis"
	"github.com/taskmasterhq/taskmaster/internal/service"
	"github.com/taskmasterhq/taskmaster/internal/storage"
)

func main() {
	log := logger.New("taskmaster-server")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if err := database.Migrate(ctx, cfg.Database.PrimaryDSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	// The limiter fails open, so a missing redis degrades to no rate
	// limiting instead of taking auth down.
	var limiter *middleware.RateLimiter
	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, auth rate limiting disabled: %v", err)
	} else {
		defer redisClient.Close()
		limiter = middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userStorage := storage.NewPostgresUserStorage(dbManager)
	taskStorage := storage.NewPostgresTaskStorage(dbManager)

	userService := service.NewUserService(userStorage, jwtManager)
	taskService := service.NewTaskService(taskStorage)

	mux := handlers.NewRouter(
		handlers.NewAuthHandler(userService),
		handlers.NewTaskHandler(taskService),
		handlers.NewUserHandler(userService),
		middleware.NewAuthMiddleware(jwtManager, userStorage),
		limiter,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: mux,
	}

	go func() {
		log.Info("Listening on :%s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown error: %v", err)
	}
	log.Info("Server stopped")
}
