// Command visitcap is the local daemon behind the visit limit browser extension.
// The extension forwards tab events to it and applies the redirects it answers with.
//
//	@title			visitcap API
//	@version		1.0
//	@description	Local API used by the visit limit extension and its popup.
//	@BasePath		/api
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"visitcap/internal/config"
	"visitcap/internal/db"
	"visitcap/internal/handler"
	vh "visitcap/internal/http"
	"visitcap/internal/repository"
	"visitcap/internal/scheduler"
	"visitcap/internal/service"
	"visitcap/internal/tabtrack"
	"visitcap/pkg/logger"
	"visitcap/pkg/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (overrides VISITCAP_CONFIG)")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "visitcap: load .env: %v\n", err)
	}
	if *configPath != "" {
		os.Setenv("VISITCAP_CONFIG", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "visitcap: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("visitcap stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init id generator: %w", err)
	}

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	tabs := tabtrack.New()
	visits := service.NewVisitService(repo, nil)
	observer := service.NewObserverService(repo, visits, tabs, cfg.BlockedPageURL, nil)
	siteLimits := service.NewSiteLimitService(repo, nil)

	router := vh.NewRouter(
		handler.NewSiteLimitHandler(siteLimits),
		handler.NewTabEventHandler(observer),
		handler.NewBlockedHandler(),
		cfg.StaticDir,
		cfg.Swagger,
		cfg.APIRate,
	)

	if cfg.TabTTL > 0 {
		sweeper := scheduler.New(tabs, cfg.TabTTL, 0)
		sweeper.Start()
		defer sweeper.Stop()
	}

	srv := &nethttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("visitcap listening",
			"addr", cfg.Addr,
			"store", cfg.Store,
			"blocked_url", cfg.BlockedPageURL,
			"static_dir", cfg.StaticDir,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config) (repository.SiteLimitRepository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := repository.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("using redis registry", "key", repository.DefaultRedisKey)
		return repository.NewRedisSiteLimitRepository(client, repository.DefaultRedisKey), func() {
			if err := client.Close(); err != nil {
				logger.Warn("close redis", "error", err)
			}
		}, nil
	default:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		logger.Info("using sqlite registry", "path", cfg.DBPath)
		return repository.NewSiteLimitRepository(database), func() {
			if err := database.Close(); err != nil {
				logger.Warn("close database", "error", err)
			}
		}, nil
	}
}
