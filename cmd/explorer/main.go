package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/nft-explorer/internal/handler"
	"github.com/vladislavprovich/nft-explorer/internal/service"
	"github.com/vladislavprovich/nft-explorer/pkg/cache"
	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
	logger2 "github.com/vladislavprovich/nft-explorer/pkg/logger"
	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

func main() {
	ctx := context.Background()
	cfg := initConfig(ctx)
	logger, err := logger2.New(ctx, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	if err = run(ctx, logger.Logger, cfg, stop); err != nil {
		log.Fatal(err)
	}
}

// run serves until stop fires or the listener fails, then shuts down gracefully.
func run(ctx context.Context, logger *slog.Logger, cfg *Config, stop <-chan os.Signal) error {
	baseClient := initBasicClient(ctx, logger, cfg)
	srv := initService(ctx, logger, baseClient, cfg)

	rend := render.New()
	serviceHandler := initServiceHandler(ctx, srv, logger, cfg, rend)
	router := handler.NewRouter(serviceHandler, logger, &cfg.Server)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)

		logger.InfoContext(ctx, "Server start. Listening on port", slog.Any("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("could not listen on port %s: %w", cfg.Server.Port, err)
	case <-stop:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.InfoContext(ctx, "Server shutdown error", slog.Any("error", err))
		return err
	}

	logger.InfoContext(ctx, "Server gracefully shutdown")
	return nil
}

func initConfig(ctx context.Context) *Config {
	cfg, err := LoadConfig(ctx)
	if err != nil {
		log.Fatalf("config load error %s", err)
	}

	return cfg
}

func initBasicClient(ctx context.Context, logger *slog.Logger, cfg *Config) *glacier.BasicClient {
	logger.InfoContext(ctx, "initializing glacier client")
	httpClient := glacier.NewRetryableClient(&cfg.Client, logger)

	return glacier.NewBasicClient(httpClient, &cfg.Client, logger)
}

func initService(
	ctx context.Context,
	logger *slog.Logger,
	basicClient *glacier.BasicClient,
	cfg *Config,
) *service.Service {
	logger.InfoContext(ctx, "initializing service")
	httpClient := &http.Client{
		Timeout: cfg.Server.HTTPClientTimeout,
	}

	memo := cache.NewMemory(cfg.IPFS.ProbeCacheTTL, 2*cfg.IPFS.ProbeCacheTTL)
	resolver := ipfs.NewResolver(httpClient, cfg.IPFS, memo, logger)
	fetcher := metadata.NewFetcher(httpClient, resolver, cfg.IPFS.FetchTimeout, logger)

	return service.NewExplorerService(ctx, logger, basicClient, service.Options{
		Address:     cfg.Client.Address,
		Fetcher:     fetcher,
		Resolver:    resolver,
		Placeholder: placeholder.New(cfg.Placeholder),
	})
}

func initServiceHandler(
	ctx context.Context,
	srv *service.Service,
	logger *slog.Logger,
	cfg *Config,
	render *render.Render,
) *handler.ServiceHandler {
	logger.InfoContext(ctx, "initializing service handler")

	return handler.NewServiceHandler(srv, logger, &cfg.Server, render)
}
