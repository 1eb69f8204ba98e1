package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/pkg/logger"
)

func main() {
	// Local runs read .env; deployed environments set real variables.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Init(logger.Options{
		Env:     cfg.App.Environment,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	})

	if envErr != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := Serve(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
