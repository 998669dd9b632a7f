package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-chat-backend/internal/config"
	"portfolio-chat-backend/internal/llm"
	"portfolio-chat-backend/internal/logging"
	"portfolio-chat-backend/internal/persona"
	"portfolio-chat-backend/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	p, err := persona.Load(cfg.PersonaFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.PersonaFile).Msg("failed to load persona")
	}

	var completer server.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = llm.NewClient(cfg.OpenAIAPIKey, cfg.Model)
	}

	s := server.NewServer(cfg, p, completer, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("env", cfg.Environment).Msg("portfolio chat server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server error")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
