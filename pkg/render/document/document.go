package document

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	errs "github.com/matzehuels/windbarb/pkg/errors"
	"github.com/matzehuels/windbarb/pkg/graphic"
	"github.com/matzehuels/windbarb/pkg/render/sink"
)

const (
	// DefaultLabelHeight is the space reserved under a container for its label.
	DefaultLabelHeight float64 = 14
	// DefaultGap separates grid cells.
	DefaultGap float64 = 8
)

// Container is a named slot on the page.
type Container struct {
	ID     string
	Label  string
	X, Y   float64
	Width  float64
	Height float64
}

// Document is a page of containers. The zero value is not usable; create
// one with [New] or [NewGrid].
type Document struct {
	Width  float64
	Height float64
	Class  string

	containers []Container
	index      map[string]int
	attached   map[string]*graphic.Graphic
}

// New returns an empty page of the given size.
func New(width, height float64) (*Document, error) {
	if err := errs.ValidatePositive("document.width", width); err != nil {
		return nil, err
	}
	if err := errs.ValidatePositive("document.height", height); err != nil {
		return nil, err
	}
	return &Document{
		Width:    width,
		Height:   height,
		Class:    "wind-barb-sheet",
		index:    make(map[string]int),
		attached: make(map[string]*graphic.Graphic),
	}, nil
}

// NewGrid lays out one container per id, cols per row, each cellW by cellH
// with room for a label underneath. Labels default to the id.
func NewGrid(cols int, cellW, cellH float64, ids ...string) (*Document, error) {
	if cols <= 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfiguration, "grid columns must be positive")
	}
	if err := errs.ValidatePositive("cell.width", cellW); err != nil {
		return nil, err
	}
	if err := errs.ValidatePositive("cell.height", cellH); err != nil {
		return nil, err
	}

	rows := (len(ids) + cols - 1) / cols
	used := min(cols, len(ids))
	width := DefaultGap + float64(max(used, 1))*(cellW+DefaultGap)
	height := DefaultGap + float64(max(rows, 1))*(cellH+DefaultLabelHeight+DefaultGap)

	doc, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		col, row := i%cols, i/cols
		c := Container{
			ID:     id,
			Label:  id,
			X:      DefaultGap + float64(col)*(cellW+DefaultGap),
			Y:      DefaultGap + float64(row)*(cellH+DefaultLabelHeight+DefaultGap),
			Width:  cellW,
			Height: cellH,
		}
		if err := doc.AddContainer(c); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// AddContainer registers a slot. Ids must be unique and well formed.
func (d *Document) AddContainer(c Container) error {
	if err := errs.ValidateID(c.ID); err != nil {
		return err
	}
	if _, dup := d.index[c.ID]; dup {
		return errs.New(errs.ErrCodeInvalidInput, "duplicate container id %q", c.ID)
	}
	if err := errs.ValidatePositive("container.width", c.Width); err != nil {
		return err
	}
	if err := errs.ValidatePositive("container.height", c.Height); err != nil {
		return err
	}
	d.index[c.ID] = len(d.containers)
	d.containers = append(d.containers, c)
	return nil
}

// Containers returns the slots in insertion order.
func (d *Document) Containers() []Container {
	return append([]Container(nil), d.containers...)
}

// SetLabel changes the caption of the container named id.
func (d *Document) SetLabel(id, label string) bool {
	i, ok := d.index[id]
	if !ok {
		return false
	}
	d.containers[i].Label = label
	return true
}

// Attach places g in the container named id, replacing any earlier glyph.
// It reports whether the container exists; a missing id or nil graphic
// leaves the document unchanged.
func (d *Document) Attach(id string, g *graphic.Graphic) bool {
	if g == nil {
		return false
	}
	if _, ok := d.index[id]; !ok {
		return false
	}
	d.attached[id] = g
	return true
}

// Attached returns the glyph placed in id, if any.
func (d *Document) Attached(id string) (*graphic.Graphic, bool) {
	g, ok := d.attached[id]
	return g, ok
}

// Len returns the number of containers holding a glyph.
func (d *Document) Len() int { return len(d.attached) }

// RenderSVG serializes the page. opts are passed to every nested glyph.
func (d *Document) RenderSVG(opts ...sink.SVGOption) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		html.EscapeString(d.Class), num(d.Width), num(d.Height), num(d.Width), num(d.Height))

	for _, c := range d.containers {
		fmt.Fprintf(&buf, `  <g id="%s" class="wind-barb-container">`+"\n", html.EscapeString(c.ID))
		if g, ok := d.attached[c.ID]; ok {
			x := c.X + (c.Width-g.Width)/2
			y := c.Y + (c.Height-g.Height)/2
			sink.WriteSVGElement(&buf, g, x, y, 2, opts...)
		}
		if c.Label != "" {
			fmt.Fprintf(&buf, `    <text x="%s" y="%s" text-anchor="middle" font-family="sans-serif" font-size="11">%s</text>`+"\n",
				num(c.X+c.Width/2), num(c.Y+c.Height+DefaultLabelHeight-3), html.EscapeString(c.Label))
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
