package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	t "github.com/evertras/bubble-table/table"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
	reportservice "github.com/redjax/storbar/internal/services/reportService"
)

const (
	colDevice = "device"
	colMount  = "mount"
	colType   = "type"
	colSize   = "size"
	colUsed   = "used"
	colPct    = "pct"
)

type Model struct {
	interval time.Duration
	mode     reportservice.TooltipMode

	spin   spinner.Model
	tbl    t.Model
	mounts []mountservice.Mount
	report reportservice.Report

	loaded    bool
	err       error
	termWidth int
}

// Messages.
type sampleMsg struct {
	mounts []mountservice.Mount
	report reportservice.Report
}

type sampleErrMsg struct {
	err error
}

type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	faintStyle = lipgloss.NewStyle().Faint(true)

	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))

	severityStyles = map[reportservice.Severity]lipgloss.Style{
		reportservice.SeverityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("#25A065")),
		reportservice.SeverityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
		reportservice.SeverityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E59F4B")),
		reportservice.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
	}
)

func NewModel(interval time.Duration, mode reportservice.TooltipMode) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		interval: interval,
		mode:     mode,
		spin:     sp,
		tbl:      buildTable(nil),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, sampleCmd(m.mode))
}

// sampleCmd probes all mounts off the UI loop and composes the same report
// the run command would emit.
func sampleCmd(mode reportservice.TooltipMode) tea.Cmd {
	return func() tea.Msg {
		mounts, err := mountservice.ListMounts(false)
		if err != nil {
			return sampleErrMsg{err: err}
		}

		report, err := reportservice.Compose(mounts, mode)
		if err != nil {
			return sampleErrMsg{err: err}
		}

		return sampleMsg{mounts: mounts, report: report}
	}
}

func scheduleTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}
