package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/archplane/archplane/internal/api"
	"github.com/archplane/archplane/internal/config"
	"github.com/archplane/archplane/pkg/cache"
	"github.com/archplane/archplane/pkg/layout"
	"github.com/archplane/archplane/pkg/layout/solver"
	"github.com/archplane/archplane/pkg/store"
)

// shutdownTimeout bounds graceful HTTP shutdown after a signal.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		noSolver bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

The server exposes a stateless layout endpoint plus CRUD for stored
diagrams. Backends come from the config file: Redis and MongoDB when
configured, local file cache and in-memory store otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noSolver)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&noSolver, "no-solver", false, "skip the Graphviz solver and use the built-in pipeline")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noSolver bool) error {
	cfg := c.cfg
	if addr != "" {
		cfg.Server.Addr = addr
	}

	eng := layout.NewEngine(cfg.LayoutConfig())
	eng.Logger = c.Logger
	if !noSolver {
		eng.Solver = solver.Graphviz{}
	}

	layoutCache, err := c.serverCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer layoutCache.Close()

	diagrams, err := c.diagramStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer diagrams.Close(context.Background())

	srv := api.NewServer(eng, diagrams, layoutCache, cfg.Cache.TTL.Duration, c.Logger)
	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()
	c.Logger.Infof("Listening on %s", cfg.Server.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// serverCache selects Redis when configured, the local file cache otherwise.
func (c *CLI) serverCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	if cfg.Cache.RedisAddr != "" {
		c.Logger.Debugf("Using Redis cache at %s", cfg.Cache.RedisAddr)
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// diagramStore selects MongoDB when configured, the in-memory store otherwise.
func (c *CLI) diagramStore(ctx context.Context, cfg config.Config) (store.DiagramStore, error) {
	if cfg.Store.MongoURI != "" {
		c.Logger.Debugf("Using MongoDB store (database %s)", cfg.Store.Database)
		ms, err := store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.Database)
		if err != nil {
			return nil, err
		}
		return ms, nil
	}
	c.Logger.Warn("No store configured, diagrams are kept in memory only")
	return store.NewMemoryStore(), nil
}
