package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dtroode/shopsense/internal/api/http/handler"
	"github.com/dtroode/shopsense/internal/api/http/router"
	"github.com/dtroode/shopsense/internal/api/http/server"
	"github.com/dtroode/shopsense/internal/config"
	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/repository/postgres"
	"github.com/dtroode/shopsense/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db, cfg.Analytics.SearchLimit)
	orderRepo := postgres.NewOrderRepository(db)

	profileService := service.NewProfile(userRepo, productRepo, orderRepo, logger)
	recommender := service.NewRecommender(profileService, productRepo, orderRepo, logger, cfg.Analytics.DefaultLimit)
	similarity := service.NewSimilarity(profileService, userRepo, productRepo, orderRepo, logger, cfg.Analytics.DefaultLimit)
	predictor := service.NewPredictor(profileService, orderRepo, logger)
	searchService := service.NewSearch(profileService, productRepo, orderRepo, logger)

	catalogHandler := handler.NewCatalog(userRepo, productRepo, logger)
	analyticsHandler := handler.NewAnalytics(profileService, recommender, similarity, predictor, searchService, logger)

	r := router.New(catalogHandler, analyticsHandler, logger)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", httpServer.Address())
		if err := httpServer.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
