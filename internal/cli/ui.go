package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleHeader      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

// statsRow is one line of the list table.
type statsRow struct {
	n, size, depth int
	scheme         string
}

// renderStats draws rows as a bordered table.
func renderStats(rows []statsRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("N", "SCHEME", "SIZE", "DEPTH")
	for _, r := range rows {
		t.Row(strconv.Itoa(r.n), r.scheme, strconv.Itoa(r.size), strconv.Itoa(r.depth))
	}

	return t.String()
}
