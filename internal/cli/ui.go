package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/windbarb/pkg/barb"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// Segment glyphs for terminal output.
const (
	symPennant = "▲"
	symFull    = "┃"
	symHalf    = "╻"
	symCalm    = "○"
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints the decomposition and cache state on one line.
func printStats(d barb.Decomposition, cached bool) {
	parts := []string{fmt.Sprintf("%d kt", d.Knots()), segmentSymbols(d)}
	if n := d.Dropped(); n > 0 && !d.IsCalm() {
		parts = append(parts, fmt.Sprintf("%d kt dropped", n))
	}

	status := styleComputed.Render("fresh")
	if cached {
		status = styleCached.Render("cached")
	}

	line := "  "
	for i, p := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(p)
	}
	fmt.Println(line + StyleDim.Render(" · ") + status)
}

// segmentSymbols draws the segments in shaft order, e.g. "▲ ┃┃┃ ╻".
func segmentSymbols(d barb.Decomposition) string {
	if d.IsCalm() {
		return symCalm
	}
	c := d.Counts()
	var groups []string
	for _, g := range []string{
		strings.Repeat(symPennant, c.Pennants),
		strings.Repeat(symFull, c.Full),
		strings.Repeat(symHalf, c.Half),
	} {
		if g != "" {
			groups = append(groups, g)
		}
	}
	return strings.Join(groups, " ")
}
