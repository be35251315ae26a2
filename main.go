package main

import (
	"context"
	"log"
	"time"

	"fraud-portal/cmd"
	"fraud-portal/internal/data/repository"
	"fraud-portal/internal/guard"
	"fraud-portal/internal/notify"
	"fraud-portal/internal/wire"
	"fraud-portal/pkg/database"
	"fraud-portal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.RunMigrations(migrateCtx, config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	guardWindow := time.Duration(config.Guard.Window) * time.Second
	var rateGuard guard.Guard
	if config.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		rateGuard = guard.NewRedisGuard(client, logger, config.Guard.Limit, guardWindow)
		logger.Info("Rate guard backed by Redis", zap.String("addr", config.Redis.Addr))
	} else {
		rateGuard = guard.NewMemoryGuard(config.Guard.Limit, guardWindow)
		logger.Warn("REDIS_ADDR not set, rate guard counters are per-process")
	}

	var sender notify.CodeSender
	if twilioSender, err := notify.NewTwilioSender(
		config.SMS.AccountSID, config.SMS.AuthToken, config.SMS.From, logger,
	); err == nil {
		sender = twilioSender
		logger.Info("Code delivery via Twilio SMS")
	} else {
		sender = notify.NewLogSender(logger)
		logger.Warn("Twilio credentials not set, codes are logged instead of sent")
	}

	app := wire.Wiring(db, repos, rateGuard, sender, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
