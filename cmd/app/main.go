package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"pizzeria/cmd"
	"pizzeria/internal/adapters/out/prom"
	"pizzeria/internal/adapters/out/redis"
)

func main() {
	configs := getConfigs()

	client, err := redis.NewClient(context.Background(), redis.Config{
		Host:     configs.RedisHost,
		Port:     configs.RedisPort,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, client)

	prom.Register()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		RedisHost:             goDotEnvVariable("REDIS_HOST"),
		RedisPort:             goDotEnvVariable("REDIS_PORT"),
		RedisPassword:         goDotEnvVariable("REDIS_PASSWORD"),
		RedisDB:               goDotEnvIntVariable("REDIS_DB", 0),
		CacheTTLSeconds:       goDotEnvIntVariable("CACHE_TTL_SECONDS", 5),
		MetricsRefreshSeconds: goDotEnvIntVariable("METRICS_REFRESH_SECONDS", 15),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
