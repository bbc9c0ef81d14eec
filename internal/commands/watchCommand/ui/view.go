package ui

import (
	"fmt"
	"strings"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
	reportservice "github.com/redjax/storbar/internal/services/reportService"
)

const gaugeWidth = 30

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("storbar watch"))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(fmt.Sprintf("%s Probing mounted filesystems...\n", m.spin.View()))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.viewSummary())
		b.WriteString("\n\n")
		b.WriteString(m.viewGauges())
		b.WriteString("\n")
	}

	b.WriteString(m.tbl.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("refreshing every %v  |  r: refresh now  |  q: quit", m.interval)))
	b.WriteString("\n")

	return b.String()
}

// viewSummary renders the bar-line equivalent: label, root usage, class.
func (m Model) viewSummary() string {
	style, ok := severityStyles[m.report.Class]
	if !ok {
		style = errStyle
	}

	line := fmt.Sprintf("%s  %d%%  %s",
		m.report.Text,
		m.report.Percentage,
		style.Render(string(m.report.Class)))

	return summaryStyle.Render(line)
}

func (m Model) viewGauges() string {
	var b strings.Builder
	for _, mount := range m.mounts {
		b.WriteString(gauge(mount))
		b.WriteString("\n")
	}
	return b.String()
}

func gauge(m mountservice.Mount) string {
	percent := m.Usage.UsedPercent
	filled := int(percent / 100 * gaugeWidth)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	style, ok := severityStyles[reportservice.Classify(percent)]
	if !ok {
		style = errStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", gaugeWidth-filled))

	return fmt.Sprintf("%s %5.1f%%  %s", bar, percent, m.MountPoint)
}
