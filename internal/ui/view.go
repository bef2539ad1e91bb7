package ui

import (
	"fmt"
	"strings"

	"github.com/genricoloni/cliploop/internal/loop"
)

// View renders the current screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if p := m.router.Previewer(); p != nil {
		return m.viewPreviewer(p)
	}
	return m.viewSelector(m.router.Selector())
}

func (m Model) barWidth() int {
	if m.width > 0 && m.width < 80 {
		return 42
	}
	return 64
}

func (m Model) viewSelector(sel *loop.RangeSelector) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(" ◆ Select loop range "))
	b.WriteString("\n\n")

	sync := sel.Sync()
	if sync.Loading() {
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %s Loading video", spinnerFrames[m.spinner])))
		b.WriteString("\n\n")
	}

	span := sync.DurationSeconds()
	r := sel.Selection()
	head := sel.ScrubPosition()

	b.WriteString("  ")
	b.WriteString(timelineBar(m.barWidth(), span, r.StartSeconds, r.EndSeconds, head))
	b.WriteString("\n\n")

	b.WriteString(m.field(focusScrub, fmt.Sprintf("Position: %s / %s", loop.FormatTime(head), loop.FormatTime(span))))
	if sel.Dragging() {
		b.WriteString(dimStyle.Render("  (Enter to seek)"))
	}
	b.WriteString("\n")
	b.WriteString(m.field(focusStart, "Start:    "+loop.FormatTime(r.StartSeconds)))
	b.WriteString("\n")
	b.WriteString(m.field(focusEnd, "End:      "+loop.FormatTime(r.EndSeconds)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Step: %gs", m.step)))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ←/→ Adjust  •  Tab Focus  •  [ ] Step  •  Enter Seek/Confirm"))
	b.WriteString("\n")
	if sel.CanConfirm() {
		b.WriteString(dimStyle.Render("  p Preview loop  •  q Quit"))
	} else {
		b.WriteString(dimStyle.Render("  Preview available once the video loads  •  q Quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) field(f focus, text string) string {
	if m.focus == f {
		return focusStyle.Render("▸ " + text)
	}
	return infoStyle.Render("  " + text)
}

func (m Model) viewPreviewer(p *loop.LoopPreviewer) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(" ◆ Loop preview "))
	b.WriteString("\n\n")

	sync := p.Sync()
	if sync.Loading() {
		b.WriteString(infoStyle.Render(fmt.Sprintf("  %s Loading video", spinnerFrames[m.spinner])))
		b.WriteString("\n\n")
	}

	bounds := p.Boundaries()
	b.WriteString("  ")
	b.WriteString(timelineBar(m.barWidth(), sync.DurationSeconds(), bounds.Start, bounds.End, sync.PositionSeconds()))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("  " + p.Describe()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  Position: %s  •  Loops: %d",
		loop.FormatTime(sync.PositionSeconds()), p.LoopSeeks())))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  Esc Back  •  q Quit"))
	b.WriteString("\n")
	return b.String()
}
