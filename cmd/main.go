package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/ekovalev/drillbot.git/internal/audit"
	"github.com/ekovalev/drillbot.git/internal/bot"
	"github.com/ekovalev/drillbot.git/internal/client"
	"github.com/ekovalev/drillbot.git/internal/config"
	"github.com/ekovalev/drillbot.git/internal/repository"
	"github.com/ekovalev/drillbot.git/internal/service"
	"github.com/ekovalev/drillbot.git/internal/storage/cache"
	"github.com/ekovalev/drillbot.git/internal/storage/db"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	seed := flag.Bool("seed", false, "fill the global dictionary with the built-in word list before starting")
	flag.Parse()

	// Local runs keep secrets in .env; in production the vars are already set.
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	clients := client.InitClients(cfg.Yandex)

	recorder, err := audit.NewZapRecorder(cfg.Audit.LogPath)
	if err != nil {
		logger.Fatal("failed init audit log", zap.Error(err))
	}

	cache := cache.NewCache()
	services := service.InitServices(clients, repos, cache, recorder, cfg.Quiz, logger)

	if *seed {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		inserted, skipped, err := services.SeedDictionary(ctx, service.DefaultSeedWords)
		cancel()
		if err != nil {
			logger.Fatal("failed to seed dictionary", zap.Error(err))
		}
		logger.Info("seeding finished", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
