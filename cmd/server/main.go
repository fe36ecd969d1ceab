package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/houraiteahouse/recruit-mailer/internal/config"
	"github.com/houraiteahouse/recruit-mailer/internal/intake"
	"github.com/houraiteahouse/recruit-mailer/internal/logger"
	"github.com/houraiteahouse/recruit-mailer/internal/mailer"
	"github.com/houraiteahouse/recruit-mailer/internal/scheduler"
	"github.com/houraiteahouse/recruit-mailer/internal/tracker"
)

func main() {
	// 1. Load .env and config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	log.Info().Msg("starting recruitment intake mailer")

	// 3. Setup context with graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("received shutdown signal")
		cancel()
	}()

	// 4. Wire the tracker and its scheduled reset
	trk := tracker.New(log)

	resetSched, err := scheduler.New(cfg.Reset, trk.Clear, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to install reset schedule")
	}
	resetSched.Start()
	defer resetSched.Stop()

	// 5. Wire the mailer and HTTP handler
	sg := mailer.NewSendGrid(cfg.SendGridAPIKey, log)
	handler := intake.NewHandler(trk, sg, cfg, log)
	router := intake.NewRouter(handler)

	// 6. Serve until cancelled
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Bool("sandbox", cfg.Development).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	log.Info().Msg("stopped")
}
