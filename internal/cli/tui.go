package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
	"github.com/matzehuels/windbarb/pkg/render/sink"
	"github.com/matzehuels/windbarb/pkg/windbarb"
)

var (
	exploreKeyStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	exploreBarbStyle  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	exploreHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	exploreFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

// exploreUnits is the order the "u" key cycles through.
var exploreUnits = []string{"knots", "ms", "kmh", "mph"}

const (
	speedStep      = 1
	speedStepLarge = 10
	angleStep      = 15
)

// ExploreModel is the bubbletea model behind "windbarb explore".
type ExploreModel struct {
	Speed float64
	Angle float64
	Unit  int // index into exploreUnits

	decomposition barb.Decomposition
	err           error
	status        string
}

// NewExploreModel starts the explorer at speed (knots) and angle.
func NewExploreModel(speed, angle float64) ExploreModel {
	m := ExploreModel{Speed: speed, Angle: normalizeAngle(angle)}
	m.recompute()
	return m
}

// savedMsg reports the result of writing an SVG.
type savedMsg struct {
	path string
	err  error
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.status = ""
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.Speed += speedStep
		case "down", "j":
			m.Speed = math.Max(0, m.Speed-speedStep)
		case "pgup", "K":
			m.Speed += speedStepLarge
		case "pgdown", "J":
			m.Speed = math.Max(0, m.Speed-speedStepLarge)
		case "right", "l":
			m.Angle = normalizeAngle(m.Angle + angleStep)
		case "left", "h":
			m.Angle = normalizeAngle(m.Angle - angleStep)
		case "u":
			m.Unit = (m.Unit + 1) % len(exploreUnits)
		case "enter":
			return m, m.save()
		default:
			return m, nil
		}
		m.recompute()
	case savedMsg:
		if msg.err != nil {
			m.status = StyleWarning.Render(msg.err.Error())
		} else {
			m.status = StyleSuccess.Render("saved " + msg.path)
		}
	}
	return m, nil
}

func (m *ExploreModel) recompute() {
	f, err := config.ParseUnit(exploreUnits[m.Unit])
	if err != nil {
		m.err = err
		return
	}
	m.decomposition, m.err = barb.DecomposeSpeed(m.Speed, f)
}

// save renders the current glyph to an SVG file in the working directory.
func (m ExploreModel) save() tea.Cmd {
	speed, angle, unit := m.Speed, m.Angle, exploreUnits[m.Unit]
	return func() tea.Msg {
		g, err := windbarb.Render(speed, angle, windbarb.WithUnit(unit))
		if err != nil {
			return savedMsg{err: err}
		}
		path := explorePath(speed, angle, unit)
		if err := os.WriteFile(path, sink.RenderSVG(g, sink.WithXMLHeader()), 0o644); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{path: path}
	}
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wind Barb Explorer"))
	b.WriteString("\n\n")

	var body strings.Builder
	row := func(k, v string) {
		body.WriteString(exploreKeyStyle.Render(k) + StyleValue.Render(v) + "\n")
	}
	row("speed", fmt.Sprintf("%g %s", m.Speed, exploreUnits[m.Unit]))
	row("from", fmt.Sprintf("%g° %s", m.Angle, compassPoint(m.Angle)))
	if m.err != nil {
		row("error", m.err.Error())
	} else {
		d := m.decomposition
		row("knots", fmt.Sprintf("%d", d.Knots()))
		if d.IsCalm() {
			row("segments", "calm")
		} else {
			row("segments", d.Counts().String())
		}
		body.WriteString("\n" + exploreBarbStyle.Render(segmentSymbols(d)))
	}
	b.WriteString(exploreFrameStyle.Render(body.String()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(exploreHelpStyle.Render("↑/↓ speed  PgUp/PgDn ±10  ←/→ direction  u unit  ⏎ save svg  q quit"))
	b.WriteString("\n")
	return b.String()
}

// normalizeAngle maps a to [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

var compassPoints = []string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// compassPoint names the 16-point direction nearest to angle.
func compassPoint(angle float64) string {
	i := int(math.Round(normalizeAngle(angle)/22.5)) % len(compassPoints)
	return compassPoints[i]
}

func explorePath(speed, angle float64, unit string) string {
	return fmt.Sprintf("windbarb-%g%s-%g.svg", speed, unit, angle)
}

func (c *CLI) exploreCommand() *cobra.Command {
	var speed, angle float64

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Adjust speed and direction interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(NewExploreModel(speed, angle), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&speed, "speed", 25, "initial speed")
	cmd.Flags().Float64Var(&angle, "angle", 270, "initial direction in degrees")
	return cmd
}
