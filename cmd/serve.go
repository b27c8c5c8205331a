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

	"bizbot/internal/infrastructure"
	httpHandler "bizbot/internal/interfaces/http"
	"bizbot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const limiterCleanupInterval = time.Minute

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when configured, the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, generator, err := setup(cmd)
			if err != nil {
				return err
			}
			return runServe(config, generator)
		},
	}
}

func runServe(config *Config, generator *usecases.ContentGenerator) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	authUsecase := usecases.NewAuthUsecase(config.JWTSecret)
	if !authUsecase.Enabled() {
		log.Warn().Msg("JWT_SECRET not set, /api is open to every client")
	}

	limiter := infrastructure.NewMessageRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
	go limiter.Run(ctx, limiterCleanupInterval)

	webService := usecases.NewMessageService(generator, nil)
	webService.SetNameCount(config.NameCount)

	if config.TelegramBotToken != "" {
		telegramClient, err := infrastructure.NewTelegramClient(config.TelegramBotToken)
		if err != nil {
			return err
		}
		tgService := usecases.NewMessageService(generator, telegramClient)
		tgService.SetNameCount(config.NameCount)

		bot := infrastructure.NewTelegramBot(telegramClient, tgService, limiter)
		go bot.Run(ctx)
	} else {
		log.Info().Msg("TELEGRAM_BOT_TOKEN not set, Telegram bot disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	middleware := httpHandler.NewMiddleware(authUsecase, limiter, config.CORSAllowedOrigin)
	httpHandler.SetupRoutes(r, webService, middleware, httpHandler.RouterConfig{
		MaxRequestBytes: config.MaxRequestBytes,
	})

	srv := &http.Server{
		Addr:              config.HTTPAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", config.HTTPAddress).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
