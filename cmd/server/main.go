package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sir-pinecone/rusty-roguelike/internal/engine"
	"github.com/sir-pinecone/rusty-roguelike/internal/server"
	"github.com/sir-pinecone/rusty-roguelike/internal/version"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

func init() {
	// .env опционален: в проде переменные приходят из окружения
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "World seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Rusty Roguelike core...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	fixedSeed := seed != 0
	if fixedSeed {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit seed: %d", seed)
	}

	port := os.Getenv("RL_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Проверяем конфигурацию генерации ДО приема клиентов:
	// ошибка конфигурации фатальна на старте, а не на первом подключении
	if err := cfg.Gen.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid generation config")
	}

	// 3. Запуск сервера
	srv := server.New(cfg, port, fixedSeed)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
