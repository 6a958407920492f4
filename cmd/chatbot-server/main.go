// cmd/chatbot-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pegrio-chatbot/internal/common/config"
	"pegrio-chatbot/internal/common/database"
	"pegrio-chatbot/internal/common/logger"
	"pegrio-chatbot/internal/common/observability"
	"pegrio-chatbot/internal/engine"
	"pegrio-chatbot/internal/server"
	"pegrio-chatbot/internal/session"
	"pegrio-chatbot/pkg/patterns"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting chatbot server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New("chatbot-server")
	defer obs.Shutdown()

	set, err := patterns.Load(cfg.Engine.PatternsPath)
	if err != nil {
		zapLog.Fatal("pattern table load failed", zap.Error(err))
	}
	zapLog.Info("pattern tables loaded",
		zap.String("version", set.Version),
		zap.Int("intents", len(set.Intents)),
	)

	store, cleanup, err := buildStore(cfg, zapLog)
	if err != nil {
		zapLog.Fatal("session store initialization failed", zap.Error(err))
	}
	defer cleanup()

	eng := engine.New(set, log)
	handler := server.NewChatHandler(eng, store, obs, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}

// buildStore selects the session backend. Redis gets connection retries
// because the container often starts before the broker is ready.
func buildStore(cfg *config.Config, zapLog *zap.Logger) (session.Store, func(), error) {
	switch cfg.Session.Store {
	case "redis":
		var redisClient *database.RedisClient
		err := retryWithBackoff(func() error {
			var err error
			redisClient, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			return nil, nil, err
		}
		zapLog.Info("Redis session store connected",
			zap.String("address", cfg.Database.Redis.Address))
		store := session.NewRedisStore(redisClient.GetClient(), cfg.Session.TTL())
		return store, func() { redisClient.Close() }, nil
	default:
		zapLog.Info("In-memory session store selected")
		store := session.NewMemoryStore(cfg.Session.TTL())
		return store, store.Close, nil
	}
}
