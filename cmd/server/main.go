package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/finsight/decoder/internal/config"
	"github.com/finsight/decoder/internal/llm"
	"github.com/finsight/decoder/internal/server"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using process environment")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("refusing to start")
	}

	client, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize LLM client")
	}

	srv, err := server.New(cfg, client, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	r := srv.SetupRouter()
	log.Info().Str("port", cfg.Server.Port).Str("provider", cfg.LLM.Provider).Msg("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
