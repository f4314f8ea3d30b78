package cli

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output     string
	formats    string
	unit       string
	factor     float64
	configPath string
	width      float64
	height     float64
	title      string
	overflow   bool
	scale      float64
	noCache    bool
	refresh    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render SPEED ANGLE",
		Short: "Render a wind barb",
		Long: `Render a wind barb for SPEED blowing from ANGLE degrees
(0 = north, clockwise).

SPEED is in knots unless --unit or --factor says otherwise. With one
format, -o names the file ("-" for stdout); with several it is a base
path and each format gets its own extension.`,
		Example: `  windbarb render 85 270
  windbarb render 12.5 180 --unit ms -f svg,png -o gust
  windbarb render 3 0 --config style.toml -o - | less`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			speed, err := parseNumberArg("speed", args[0])
			if err != nil {
				return err
			}
			angle, err := parseNumberArg("angle", args[1])
			if err != nil {
				return err
			}
			popts, err := opts.pipelineOptions(cmd, speed, angle)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output file, base path for several formats, or "-" for stdout`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatSVG, "output format(s): svg, json, pdf, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "speed unit: knots, ms, kmh, mph")
	cmd.Flags().Float64Var(&opts.factor, "factor", 1, "conversion factor into knots (overrides --unit)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML style file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG <title> text")
	cmd.Flags().BoolVar(&opts.overflow, "overflow", false, "let segments draw past the canvas edges")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	return cmd
}

// pipelineOptions merges the style file with flags; flags win.
func (o renderOpts) pipelineOptions(cmd *cobra.Command, speed, angle float64) (pipeline.Options, error) {
	formats, err := pipeline.ParseFormats(o.formats)
	if err != nil {
		return pipeline.Options{}, err
	}
	overrides, err := loadOverrides(cmd.Context(), o.configPath)
	if err != nil {
		return pipeline.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("unit") {
		unit := o.unit
		overrides.Unit = &unit
		overrides.ConversionFactor = nil
	}
	if flags.Changed("factor") {
		f := o.factor
		overrides.ConversionFactor = &f
	}
	if flags.Changed("width") {
		w := o.width
		overrides.Canvas.Width = &w
	}
	if flags.Changed("height") {
		h := o.height
		overrides.Canvas.Height = &h
	}

	return pipeline.Options{
		Speed:           speed,
		Angle:           angle,
		Overrides:       overrides,
		Formats:         formats,
		Scale:           o.scale,
		Title:           o.title,
		OverflowVisible: o.overflow,
		Refresh:         o.refresh,
	}, nil
}

func (c *CLI) runRender(ctx context.Context, popts pipeline.Options, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	if opts.output == "-" && len(popts.Formats) > 1 {
		return errs.New(errs.ErrCodeInvalidInput, "stdout output takes a single format, got %s", strings.Join(popts.Formats, ","))
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	popts.Logger = logger
	res, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}

	if opts.output == "-" {
		_, err := os.Stdout.Write(res.Artifacts[popts.Formats[0]])
		return err
	}

	printSuccess("Rendered %s", StyleHighlight.Render(res.Decomposition.String()))
	printStats(res.Decomposition, res.CacheInfo.RenderHit)
	if res.Stats.Overflow && !popts.OverflowVisible {
		printDetail("segments reach past the %g×%g canvas; --overflow shows them", res.Config.Canvas.Width, res.Config.Canvas.Height)
	}
	for _, format := range popts.Formats {
		path := outputPath(opts.output, format, len(popts.Formats))
		if err := writeArtifact(path, res.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done("render finished")
	return nil
}

// outputPath names the file for one format. A single format keeps output
// as given; several formats replace or add the extension.
func outputPath(output, format string, n int) string {
	if output == "" {
		return appName + "." + format
	}
	if n == 1 {
		return output
	}
	return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
}

func writeArtifact(path string, data []byte) error {
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

func parseNumberArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errs.New(errs.ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
	}
	return v, nil
}
