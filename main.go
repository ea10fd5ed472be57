package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"filmoteca/config"
	"filmoteca/controllers"
	"filmoteca/db"
	"filmoteca/ledger"
	"filmoteca/router"
	"filmoteca/store"
	"filmoteca/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg := config.Get(configPath)

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	setupLogFile(cfg.LogPath)

	ctx := context.Background()

	db.SetConfigurations(cfg)
	database, err := db.Connect(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to mongo")
	}
	stores := store.NewMongoStores(database)

	resetLedger := buildLedger(ctx, cfg)
	workers.StartResetSweeper(ctx, resetLedger, 0)

	controllers.Setup(cfg, resetLedger)

	r := gin.New()
	r.Use(db.SetStoresToContext(stores))
	router.Initialize(r, cfg)

	logrus.WithField("port", cfg.ApiPort).Info("filmoteca listening")
	if err := r.Run(":" + cfg.ApiPort); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// setupLogFile mirrors logs to the configured file when possible.
func setupLogFile(path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.WithError(err).Warn("could not create log directory")
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.WithError(err).Warn("could not open log file")
		return
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, f))
}

// buildLedger picks the Redis ledger when an address is configured,
// falling back to process memory otherwise.
func buildLedger(ctx context.Context, cfg config.Configuration) ledger.Ledger {
	if cfg.RedisAddr == "" {
		logrus.Info("reset ledger: using in-memory store")
		return ledger.NewMemoryLedger()
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("reset ledger: redis unreachable, falling back to memory")
		return ledger.NewMemoryLedger()
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("reset ledger: using redis")
	return ledger.NewRedisLedger(client)
}
