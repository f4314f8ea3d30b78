// Package cli implements the windbarb command-line interface.
//
// Commands:
//   - render: draw one wind barb to SVG, JSON, PDF or PNG
//   - decompose: show how a speed splits into pennants and bars
//   - sheet: lay out many observations on one page
//   - serve: run the HTTP service
//   - explore: interactive terminal preview
//   - cache: manage the artifact cache
//
// Every command accepts --verbose (-v) for debug logging. The logger travels
// in the command context.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windbarb/pkg/buildinfo"
	"github.com/matzehuels/windbarb/pkg/cache"
	"github.com/matzehuels/windbarb/pkg/config"
	"github.com/matzehuels/windbarb/pkg/observability"
	"github.com/matzehuels/windbarb/pkg/pipeline"
)

const appName = "windbarb"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel changes the logger level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "windbarb draws meteorological wind barbs",
		Long: `windbarb turns a wind speed and direction into a wind barb glyph:
a shaft pointing into the wind carrying 50-knot pennants, 10-knot bars
and 5-knot half bars, or a circle when the wind is calm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetRenderHooks(hooks)
			observability.SetCacheHooks(hooks)
			return nil
		},
	}
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.decomposeCommand())
	root.AddCommand(c.sheetCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a pipeline runner backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns $XDG_CACHE_HOME/windbarb or ~/.cache/windbarb.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadOverrides reads a TOML style file, or returns empty overrides when
// path is "".
func loadOverrides(ctx context.Context, path string) (config.Overrides, error) {
	if path == "" {
		return config.Overrides{}, nil
	}
	o, err := config.Load(path)
	if err != nil {
		return config.Overrides{}, err
	}
	loggerFromContext(ctx).Debug("loaded config", "path", path)
	return o, nil
}
