package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk"
	"github.com/helmethub/dealerdesk/apiclient"
	"github.com/helmethub/dealerdesk/internal/config"
	"github.com/helmethub/dealerdesk/internal/metrics"
	"github.com/helmethub/dealerdesk/internal/router"
	"github.com/helmethub/dealerdesk/internal/screens"
	"github.com/helmethub/dealerdesk/sessionstorage"
	"github.com/jackc/pgx/v5/pgxpool"
	rdb "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func serveCmd() *cobra.Command {
	var (
		configPath string
		envFiles   []string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnvFiles(envFiles...); err != nil {
				return err
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, ".env files loaded before the environment is read")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}

// lateSession lets the screens be built before the Dashboard they report to.
type lateSession struct {
	*dealerdesk.Dashboard
}

func serve(ctx context.Context, cfg *config.Config) error {
	m, err := metrics.New()
	if err != nil {
		return errors.Wrap(err, "metrics.New()")
	}

	api, err := apiclient.New(cfg.API.BaseURL, apiclient.WithTimeout(cfg.API.Timeout), apiclient.WithObserver(m))
	if err != nil {
		return errors.Wrap(err, "apiclient.New()")
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.Session.CookieKey == "" {
		logger.Ctx(ctx).Warn("session.cookie_key is empty, a random key is used and sessions end on restart")
	}

	sess := &lateSession{}
	pages, err := screens.New(api, sess, screens.WithSMSAPIKey(cfg.SMS.APIKey))
	if err != nil {
		return errors.Wrap(err, "screens.New()")
	}

	desk, err := dealerdesk.New(store, api, pages, cfg.Session.CookieKey,
		dealerdesk.WithCookieDomain(cfg.Session.CookieDomain),
		dealerdesk.WithBootstrapWait(cfg.Session.BootstrapWait),
		dealerdesk.WithObserver(m),
	)
	if err != nil {
		return errors.Wrap(err, "dealerdesk.New()")
	}
	sess.Dashboard = desk

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.New(desk, pages, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Ctx(ctx).Infof("dealerdesk listening on %s (storage: %s, api: %s)", cfg.Server.Addr, cfg.Storage.Driver, cfg.API.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http.Server.ListenAndServe()")
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http.Server.Shutdown()")
	}

	return nil
}

// openStore returns the session store selected by cfg.Storage.Driver and a
// func releasing its connections.
func openStore(ctx context.Context, cfg *config.Config) (sessionstorage.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client := rdb.NewClient(&rdb.Options{
			Addr:     cfg.Storage.Redis.Addr,
			DB:       cfg.Storage.Redis.DB,
			Password: cfg.Storage.Redis.Password,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, nil, errors.Wrap(err, "redis.Client.Ping()")
		}

		return sessionstorage.NewRedis(client, cfg.Session.Timeout), func() { _ = client.Close() }, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.Storage.Postgres.DSN)
		if err != nil {
			return nil, nil, errors.Wrap(err, "pgxpool.New()")
		}
		store := sessionstorage.NewPostgres(pool, cfg.Session.Timeout)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()

			return nil, nil, err
		}

		pruneCtx, stopPrune := context.WithCancel(ctx)
		go prune(pruneCtx, store, cfg.Storage.Postgres.PruneEvery)

		return store, func() { stopPrune(); pool.Close() }, nil

	default:
		return sessionstorage.NewMemory(cfg.Session.Timeout), func() {}, nil
	}
}

// prune removes expired sessions every interval until ctx is done.
func prune(ctx context.Context, store *sessionstorage.Postgres, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PruneSessions(ctx)
			if err != nil {
				logger.Ctx(ctx).Error(errors.Wrap(err, "sessionstorage.Postgres.PruneSessions()"))

				continue
			}
			if n > 0 {
				logger.Ctx(ctx).Infof("pruned %d expired sessions", n)
			}
		}
	}
}
