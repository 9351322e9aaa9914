package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stackshop/internal/browser"
	"stackshop/internal/catalog"
	"stackshop/internal/config"
	"stackshop/internal/infrastructure/cache"
	"stackshop/internal/infrastructure/catalogapi"
	"stackshop/internal/infrastructure/logger"
	"stackshop/internal/product"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configPath string
	apiURL     string
	search     string
	category   string
)

var rootCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the StackShop catalog from the terminal",
	Long: `browse opens an interactive catalog browser backed by the catalog API.

Search, filter by category and sub-category, page through results and open
product details without leaving the terminal.`,
	SilenceUsage: true,
	RunE:         runBrowse,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "catalog API base URL (overrides config)")
	rootCmd.Flags().StringVar(&search, "search", "", "initial search text")
	rootCmd.Flags().StringVar(&category, "category", "", "initial category")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if apiURL != "" {
		cfg.CatalogAPI.BaseURL = apiURL
	}

	// The terminal belongs to the UI; logs only go to a file when configured.
	zapLogger, err := logger.NewFile(cfg.Log.Level, cfg.Browse.LogFile)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	api := catalogapi.NewClient(cfg.CatalogAPI, zapLogger)
	store := cache.NewMemory(cfg.Cache.TTL)

	model := browser.New(ctx,
		catalog.NewUseCase(api, store, zapLogger),
		product.NewUseCase(api),
		browser.Options{
			Search:        search,
			Category:      category,
			MarkdownStyle: cfg.Browse.MarkdownStyle,
		},
		zapLogger,
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
