package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/windbarb/pkg/cache"
	"github.com/matzehuels/windbarb/pkg/pipeline"
	"github.com/matzehuels/windbarb/pkg/server"
)

type serveOpts struct {
	addr      string
	redisAddr string
	prefix    string
	noCache   bool
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: server.DefaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve wind barbs over HTTP",
		Long: `Start the HTTP service.

Routes:
  GET /healthz
  GET /v1/barb.{svg,json,pdf,png}?speed=&angle=&unit=&factor=&width=&height=
  GET /v1/decompose?speed=&unit=&factor=
  GET /v1/units

Rendered artifacts are cached in Redis when --redis-addr is set, otherwise
in the local cache directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address or redis:// URL for the shared cache")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", "", "namespace for cache keys on a shared backend")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	ch, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(ch, serveKeyer(opts.prefix), logger)
	defer runner.Close()

	return server.New(runner, logger).ListenAndServe(ctx, opts.addr)
}

func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache || opts.redisAddr == "" {
		return newCache(opts.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisAddr)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Info("using redis cache", "addr", opts.redisAddr)
	return rc, nil
}

// serveKeyer scopes keys under prefix, or returns nil for the default keyer.
func serveKeyer(prefix string) cache.Keyer {
	if prefix == "" {
		return nil
	}
	return cache.NewScopedKeyer(nil, prefix)
}
