package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wordhaze/wordhaze/pkg/cache"
	"github.com/wordhaze/wordhaze/pkg/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		font     string
		noCache  bool
		useDisk  bool
		cacheTTL time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the word-cloud HTTP API",
		Long: `Serve starts an HTTP server that generates word-cloud images from
JSON requests. Rendered images are cached in memory by default; use
--disk-cache to persist them to the cache directory instead.`,
		Example: `  wordhaze serve
  wordhaze serve --addr :9090 --font DejaVuSans --disk-cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderCache, err := newServeCache(noCache, useDisk)
			if err != nil {
				return err
			}

			srv := server.New(c.Logger,
				server.WithFont(font),
				server.WithCache(renderCache),
				server.WithCacheTTL(cacheTTL),
			)
			return srv.Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&font, "font", "", "font file path or system font name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&useDisk, "disk-cache", false, "cache rendered images on disk")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", server.DefaultCacheTTL, "how long rendered images stay cached")

	return cmd
}

// newServeCache picks the render cache implementation for the server.
func newServeCache(noCache, useDisk bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if useDisk {
		dir, err := cacheDir()
		if err != nil {
			return cache.NewMemoryCache(), nil
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewMemoryCache(), nil
}
