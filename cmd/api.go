package cmd

import (
	"context"
	"errors"
	"log"
	"price-compare/internal/delivery/http"
	"price-compare/internal/delivery/telegram"
	"price-compare/pkg/logger"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the price comparison API",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	services, err := appDep.NewServices(ctx)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services, appDep.log)

	var telegramHandler *telegram.TelegramBotHandler
	if appDep.telegramBot != nil {
		telegramHandler = telegram.NewTelegramBotHandler(
			ctx,
			appDep.cfg,
			appDep.log,
			appDep.telegramBot,
			appDep.telegram,
			appDep.echo,
			services,
		)
		if err := telegramHandler.Start(); err != nil {
			appDep.log.Error("Failed to start telegram bot", logger.ErrorField(err))
		}
	}

	if appDep.cfg.Ingest.OnStart && appDep.cfg.Ingest.CSVPath != "" {
		if _, err := services.IngestService.IngestFile(ctx, appDep.cfg.Ingest.CSVPath); err != nil {
			appDep.log.Error("Initial catalog ingest failed", logger.ErrorField(err))
		}
	}

	if err := services.IngestScheduler.Start(ctx); err != nil {
		appDep.log.FatalContext(ctx, "Failed to start ingest scheduler", logger.ErrorField(err))
	}

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	services.IngestScheduler.Stop()
	if telegramHandler != nil {
		telegramHandler.Stop()
	}

	if err := apiServer.Stop(); err != nil {
		log.Printf("Failed to stop HTTP server: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}
