package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windbarb/pkg/config"
	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/render/document"
	"github.com/matzehuels/windbarb/pkg/render/sink"
	"github.com/matzehuels/windbarb/pkg/windbarb"
)

// sheetFile is the TOML layout of a station sheet:
//
//	columns = 3
//
//	[style.bar]
//	stroke = "#333"
//
//	[[container]]
//	id = "KSEA"
//	label = "Seattle"
//
//	[[observation]]
//	container = "KSEA"
//	speed = 25
//	angle = 200
type sheetFile struct {
	Columns      int                `toml:"columns"`
	CellWidth    float64            `toml:"cell_width"`
	CellHeight   float64            `toml:"cell_height"`
	Style        config.Overrides   `toml:"style"`
	Containers   []sheetContainer   `toml:"container"`
	Observations []sheetObservation `toml:"observation"`
}

type sheetContainer struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
}

type sheetObservation struct {
	Container string   `toml:"container"`
	Speed     float64  `toml:"speed"`
	Angle     float64  `toml:"angle"`
	Unit      *string  `toml:"unit"`
	Factor    *float64 `toml:"factor"`
}

const (
	defaultSheetColumns = 4
	defaultCellWidth    = 100
	defaultCellHeight   = 60
)

func decodeSheet(r io.Reader) (sheetFile, error) {
	var s sheetFile
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return sheetFile{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse sheet")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return sheetFile{}, errs.New(errs.ErrCodeInvalidInput, "unknown sheet keys: %s", strings.Join(keys, ", "))
	}
	if s.Columns == 0 {
		s.Columns = defaultSheetColumns
	}
	if s.CellWidth == 0 {
		s.CellWidth = defaultCellWidth
	}
	if s.CellHeight == 0 {
		s.CellHeight = defaultCellHeight
	}
	return s, nil
}

// sheetResult counts what buildSheet placed.
type sheetResult struct {
	Attached int
	Skipped  []string // observations whose container does not exist
}

// buildSheet renders every observation into its container. Observations
// naming a missing container are skipped and logged.
func buildSheet(s sheetFile, logger *log.Logger) (*document.Document, sheetResult, error) {
	var res sheetResult

	ids := make([]string, len(s.Containers))
	for i, c := range s.Containers {
		ids[i] = c.ID
	}
	doc, err := document.NewGrid(s.Columns, s.CellWidth, s.CellHeight, ids...)
	if err != nil {
		return nil, res, err
	}
	for _, c := range s.Containers {
		if c.Label != "" {
			doc.SetLabel(c.ID, c.Label)
		}
	}

	for _, obs := range s.Observations {
		base := s.Style
		if obs.Unit != nil && obs.Factor == nil {
			// an observation's own unit replaces the sheet-wide factor
			base.ConversionFactor = nil
		}
		style := base.Merge(config.Overrides{Unit: obs.Unit, ConversionFactor: obs.Factor})
		g, err := windbarb.Render(obs.Speed, obs.Angle, windbarb.WithOverrides(style))
		if err != nil {
			return nil, res, errs.Wrap(errs.GetCode(err), err, "observation for %q", obs.Container)
		}
		if !doc.Attach(obs.Container, g) {
			logger.Debug("no container for observation", "container", obs.Container)
			res.Skipped = append(res.Skipped, obs.Container)
			continue
		}
		res.Attached++
	}
	return doc, res, nil
}

func (c *CLI) sheetCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sheet FILE.toml",
		Short: "Lay out many observations on one SVG page",
		Long: `Render every [[observation]] of a sheet file into the [[container]]
it names. Observations for containers that do not exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheet(cmd.Context(), args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "sheet.svg", "output SVG file")
	return cmd
}

func (c *CLI) runSheet(ctx context.Context, path, output string) error {
	logger := loggerFromContext(ctx)
	if err := errs.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.Wrap(errs.ErrCodeNotFound, err, "sheet %s", path)
		}
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "open sheet %s", path)
	}
	defer f.Close()

	s, err := decodeSheet(f)
	if err != nil {
		return err
	}
	doc, res, err := buildSheet(s, logger)
	if err != nil {
		return err
	}
	if err := writeArtifact(output, doc.RenderSVG(sink.WithIndent("  "))); err != nil {
		return err
	}

	printSuccess("Placed %d of %d observations", res.Attached, len(s.Observations))
	printKeyValue("containers", strconv.Itoa(len(s.Containers)))
	printKeyValue("page", fmt.Sprintf("%g×%g", doc.Width, doc.Height))
	for _, id := range res.Skipped {
		printWarning("no container %q", id)
	}
	printFile(output)
	return nil
}
