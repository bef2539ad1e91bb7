package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	secondaryColor = lipgloss.Color("#06B6D4")
	accentColor    = lipgloss.Color("#10B981")
	warningColor   = lipgloss.Color("#F59E0B")
	dangerColor    = lipgloss.Color("#EF4444")
	dimTextColor   = lipgloss.Color("#64748B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 2).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(dangerColor)

	rangeStyle  = lipgloss.NewStyle().Foreground(accentColor)
	markerStyle = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
	headStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)

	spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// timelineBar renders [0, span] with the loop range highlighted, both
// boundaries marked and the playhead drawn on top.
func timelineBar(width int, span, start, end, head float64) string {
	if width < 20 {
		width = 20
	}
	if span <= 0 {
		span = 1
	}

	cell := func(seconds float64) int {
		i := int(seconds / span * float64(width-1))
		return min(max(i, 0), width-1)
	}
	startPos, endPos, headPos := cell(start), cell(end), cell(head)
	lo, hi := min(startPos, endPos), max(startPos, endPos)

	var b strings.Builder
	b.WriteString(dimStyle.Render("["))
	for i := 0; i < width; i++ {
		switch {
		case i == headPos:
			b.WriteString(headStyle.Render("●"))
		case i == startPos || i == endPos:
			b.WriteString(markerStyle.Render("◆"))
		case i > lo && i < hi:
			b.WriteString(rangeStyle.Render("━"))
		default:
			b.WriteString(dimStyle.Render("─"))
		}
	}
	b.WriteString(dimStyle.Render("]"))
	return b.String()
}

var nudgeSteps = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60}

func increaseStep(current float64) float64 {
	for _, s := range nudgeSteps {
		if current < s {
			return s
		}
	}
	return nudgeSteps[len(nudgeSteps)-1]
}

func decreaseStep(current float64) float64 {
	for i := len(nudgeSteps) - 1; i >= 0; i-- {
		if current > nudgeSteps[i] {
			return nudgeSteps[i]
		}
	}
	return nudgeSteps[0]
}
