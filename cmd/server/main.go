package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stackshop/internal/catalog"
	"stackshop/internal/config"
	"stackshop/internal/infrastructure/cache"
	"stackshop/internal/infrastructure/catalogapi"
	"stackshop/internal/infrastructure/logger"
	"stackshop/internal/infrastructure/redis"
	"stackshop/internal/product"
	"stackshop/internal/server"
	"stackshop/internal/web"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Serve the StackShop storefront",
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer zapLogger.Sync()

	var store cache.Store = cache.NewMemory(cfg.Cache.TTL)
	if cfg.Cache.Driver == config.CacheDriverRedis {
		client, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer client.Close()
		zapLogger.Info("redis connected")
		store = cache.NewRedis(client, cfg.Redis.KeyPrefix, cfg.Cache.TTL)
	}

	api := catalogapi.NewClient(cfg.CatalogAPI, zapLogger)

	renderer, err := web.NewRenderer(zapLogger)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	catalogCtrl := catalog.NewModule(api, store, renderer, zapLogger)
	productCtrl := product.NewModule(api, renderer, zapLogger)

	router := server.NewRouter(catalogCtrl, productCtrl, cfg.Server.RequestTimeout, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		zapLogger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	zapLogger.Info("server stopped gracefully")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
