package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatgogo/chatsettings/internal/api/handler"
	"chatgogo/chatsettings/internal/config"
	"chatgogo/chatsettings/internal/logger"
	"chatgogo/chatsettings/internal/settingshub"
	"chatgogo/chatsettings/internal/storage"
	"chatgogo/chatsettings/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(ctx context.Context, cfg config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return db, rdb, nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("chatsettings service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, cfg.Log)
	slog.SetDefault(log)
	log.Info("starting chatsettings service", slog.String("addr", cfg.Server.Addr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Storage
	db, rdb, err := setupDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	s := storage.NewStorageService(db, rdb, cfg.Redis.CacheTTL.Duration)
	if err := s.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("database and redis ready, migrations complete")

	// 2. Live updates
	hub := settingshub.NewManagerService(s, log)
	go hub.Run(ctx)

	// 3. Optional Telegram mirror
	var mirror handler.PinnedMirror
	if cfg.Telegram.MirrorEnabled() {
		m, err := telegram.NewMirror(cfg.Telegram.BotToken, cfg.Telegram.MirrorChatID, log)
		if err != nil {
			return err
		}
		mirror = m
	} else {
		log.Info("telegram mirror disabled")
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = uuid.NewString()
		log.Warn("JWT_SECRET not set, issued tokens will not survive a restart")
	}

	// 4. HTTP
	r := gin.Default()
	h := handler.NewHandler(s, hub, mirror, cfg.Auth, log)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.Server.Addr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-hub.Done()
	return nil
}
