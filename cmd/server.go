package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trading-journal/internal/delivery/http"
	"trading-journal/internal/repository"
	"trading-journal/internal/service"
	"trading-journal/pkg/utils"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the trading journal API",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo := repository.NewRepository(appDep.db.DB)
	services, err := service.NewService(appDep.cfg, appDep.log, repo, appDep.cache)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.cfg, appDep.log, appDep.echo, appDep.validator, services)

	var scheduler *cron.Cron
	if appDep.cfg.Scheduler.Enabled {
		scheduler, err = newSnapshotScheduler(ctx, appDep.cfg.Scheduler.SnapshotSpec, appDep.log, services.SnapshotService)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		scheduler.Start()
	}

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	utils.GoSafe(appDep.log, func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	})

	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
		appDep.log.Info("Scheduler stopped")
	}

	if err := apiServer.Stop(); err != nil {
		appDep.log.Error("Failed to stop HTTP server", zap.Error(err))
	}

	if err := appDep.Close(); err != nil {
		log.Printf("Failed to close app dependency: %v", err)
	}
}
