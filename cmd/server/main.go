package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/artvault/internal/config"
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/rpggio/artvault/internal/mcp"
	"github.com/rpggio/artvault/internal/metrics"
	"github.com/rpggio/artvault/internal/sqlite"
	"github.com/rpggio/artvault/internal/store"
	"github.com/rpggio/artvault/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDir(cfg.Activity.DBPath); err != nil {
		logger.Error("failed to prepare activity database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Activity.DBPath)
	if err != nil {
		logger.Error("failed to open activity database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var catalogMetrics *metrics.CatalogMetrics
	if cfg.Metrics.Enabled {
		catalogMetrics, err = metrics.New()
		if err != nil {
			logger.Error("failed to register metrics", "error", err)
			os.Exit(1)
		}
	}

	repo, err := store.Open(cfg.Storage.Backend, logger)
	if err != nil {
		logger.Error("failed to open catalog storage", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	defaultPath := cfg.Storage.Path
	if cfg.Storage.Backend == "memory" {
		defaultPath = ""
	}
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), logger)
	catalogSvc := catalog.NewService(repo, catalog.Options{
		Activities:  activitySvc,
		Metrics:     catalogMetrics,
		Logger:      logger,
		DefaultPath: defaultPath,
	})

	if cfg.Storage.Autoload && defaultPath != "" {
		autoload(logger, catalogSvc, defaultPath)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Catalog: catalogSvc,
		Logger:  logger,
	})

	if cfg.Transport.Mode == "stdio" {
		runStdioMode(logger, mcpServer)
	} else {
		runHTTPMode(logger, mcpServer, catalogMetrics, cfg)
	}
}

// autoload reads the catalog file when it exists. A missing file starts an
// empty catalog.
func autoload(logger *slog.Logger, svc *catalog.Service, path string) {
	if _, err := svc.Load(context.Background(), path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("catalog file not found, starting empty", "path", path)
			return
		}
		logger.Error("failed to load catalog", "path", path, "error", err)
		os.Exit(1)
	}
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
	logger.Info("shutting down")
}

func runHTTPMode(logger *slog.Logger, mcpServer *sdkmcp.Server, catalogMetrics *metrics.CatalogMetrics, cfg config.Config) {
	opts := transport.Options{
		APIKey: cfg.Auth.APIKey,
		Logger: logger,
	}
	if catalogMetrics != nil {
		opts.Metrics = catalogMetrics.Handler()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: transport.NewRouter(mcpServer, opts),
	}

	go func() {
		logger.Info("server listening", "addr", addr, "auth", cfg.Auth.APIKey != "")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
