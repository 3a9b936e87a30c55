package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"restock/logger"
	"restock/models"
	"restock/repository"
	"restock/service"
	"restock/utils"
)

// NewRootCommand builds the restock CLI
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "restock",
		Short:         "Restocking list service for the shop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newExportCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.LogLevel, !cfg.IsProduction()); err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Serve(ctx, cfg)
		},
	}
}

// Serve runs the HTTP service until ctx is cancelled
func Serve(ctx context.Context, cfg Config) error {
	a, err := Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Registry.StartSweeper(ctx, cfg.SessionTTL, time.Minute)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Infof("Server starting on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.L().Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type exportOptions struct {
	catalogPath   string
	selectionPath string
	outDir        string
	format        string
	chromePath    string
	export        service.ExportConfig
}

func newExportCommand() *cobra.Command {
	opts := exportOptions{export: service.DefaultExportConfig()}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an order sheet for a selection file without running the service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Init("warn", true); err != nil {
				return err
			}
			defer logger.Sync()

			path, err := runExport(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.catalogPath, "catalog", "data/market_items.json", "catalog file (JSON or YAML)")
	f.StringVar(&opts.selectionPath, "selection", "", `selection file: [{"name": "...", "quantity": n}]`)
	f.StringVar(&opts.outDir, "out", ".", "output directory")
	f.StringVar(&opts.format, "format", service.FormatPDF, "pdf, html, json or preview")
	f.StringVar(&opts.chromePath, "chrome-path", "", "Chrome/Chromium executable")
	f.StringVar(&opts.export.Title, "title", "", "document title")
	f.StringVar(&opts.export.FilePrefix, "prefix", opts.export.FilePrefix, "file name prefix")
	f.StringVar(&opts.export.Lang, "lang", opts.export.Lang, "label language: en or sq")
	f.StringVar(&opts.export.Locale, "locale", opts.export.Locale, "date locale")
	f.StringVar(&opts.export.CurrencySuffix, "currency", opts.export.CurrencySuffix, "currency suffix")
	_ = cmd.MarkFlagRequired("selection")
	return cmd
}

// runExport builds a selection the same way a session does and writes the
// rendered document to opts.outDir. It returns the written path.
func runExport(ctx context.Context, opts exportOptions) (string, error) {
	items, err := repository.NewFileCatalogSource(opts.catalogPath).LoadCatalog(ctx)
	if err != nil {
		return "", err
	}
	catalog, err := service.NewCatalogStore(items)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(opts.selectionPath)
	if err != nil {
		return "", fmt.Errorf("failed to read selection file: %w", err)
	}
	var entries []models.SelectionEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return "", fmt.Errorf("failed to parse selection file: %w", err)
	}

	selection := service.NewSelection()
	for _, entry := range entries {
		if _, ok := catalog.Get(entry.Name); !ok {
			return "", fmt.Errorf("%w: %q", service.ErrItemNotFound, entry.Name)
		}
		selection.Select(entry.Name, entry.Quantity)
	}

	opts.format = strings.ToLower(strings.TrimSpace(opts.format))
	var renderer service.DocumentRendererInterface
	if opts.format == service.FormatPDF || opts.format == service.FormatPreview {
		renderer = service.NewChromeRenderer(opts.chromePath, 0)
	}
	exporter := service.NewOrderExporter(opts.export, renderer)

	result, err := exporter.Export(ctx, selection.Lines(catalog), opts.format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(opts.outDir, result.FileName)
	if err := os.WriteFile(path, result.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.L().Infof("Export: wrote %s (%s)", path, utils.FormatAmount(selection.Total(catalog), opts.export.CurrencySuffix))
	return path, nil
}
