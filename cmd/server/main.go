// @title           Print Shop Orders API
// @version         1.0.0
// @description     Backend API for the print shop app. Clients upload documents and submit print orders; administrators claim them and mark them finished. Order changes are broadcast on Supabase Realtime.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"printshop-backend/internal/config"
	"printshop-backend/internal/database"
	"printshop-backend/internal/logger"
	"printshop-backend/internal/server"
	"printshop-backend/internal/services"
	"printshop-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.New(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		zap.L().Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	dbClient, err := supabase.NewDatabaseClient(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	if err := database.NewMigrator(dbClient.DB()).Run(ctx); err != nil {
		return err
	}

	authClient, err := supabase.NewAuthClient(cfg)
	if err != nil {
		return err
	}
	storageClient := supabase.NewStorageClient(cfg.SupabaseURL, cfg.StorageKey(), cfg.SupabaseStorageBucket)
	realtimeClient := supabase.NewRealtimeClient(cfg.SupabaseURL, cfg.StorageKey(), cfg.SupabaseRealtimeTopic)

	resolver := services.NewSessionResolver(dbClient, services.ResolverOptions{
		Attempts: cfg.ProfileLookupAttempts,
		Delay:    cfg.ProfileLookupDelay,
		MaxDelay: cfg.ProfileLookupMaxDelay,
	})
	uploader := services.NewDocumentUploader(storageClient, cfg.MaxUploadSize)
	orders := services.NewOrderService(dbClient, uploader, realtimeClient)
	sweeper, err := services.NewOrphanSweeper(dbClient, storageClient, cfg.OrphanSweepInterval, cfg.OrphanGracePeriod)
	if err != nil {
		return err
	}

	router := server.NewRouter(cfg, server.Services{
		Identity: services.NewIdentityService(authClient, dbClient),
		Resolver: resolver,
		Orders:   orders,
	})
	srv := server.NewServer(cfg.Port, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		return sweeper.Start(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		return srv.Stop()
	})

	return g.Wait()
}
