package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	t "github.com/evertras/bubble-table/table"

	mountservice "github.com/redjax/storbar/internal/services/mountService"
	utils "github.com/redjax/storbar/internal/utils/convert"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			// Manual refresh between ticks.
			return m, sampleCmd(m.mode)
		}

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sampleMsg:
		m.mounts = msg.mounts
		m.report = msg.report
		m.tbl = buildTable(msg.mounts)
		m.loaded = true
		m.err = nil
		return m, scheduleTick(m.interval)

	case sampleErrMsg:
		m.err = msg.err
		m.loaded = true
		return m, scheduleTick(m.interval)

	case tickMsg:
		return m, sampleCmd(m.mode)
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func buildTable(mounts []mountservice.Mount) t.Model {
	cols := []t.Column{
		t.NewColumn(colDevice, "Device", 22),
		t.NewColumn(colMount, "Mount", 22),
		t.NewColumn(colType, "Type", 8),
		t.NewColumn(colSize, "Size", 12),
		t.NewColumn(colUsed, "Used", 12),
		t.NewColumn(colPct, "Use%", 7),
	}

	rows := make([]t.Row, 0, len(mounts))
	for _, m := range mounts {
		rows = append(rows, t.NewRow(t.RowData{
			colDevice: m.Device,
			colMount:  m.MountPoint,
			colType:   m.FSType,
			colSize:   fmt.Sprintf("%.2f GiB", utils.BytesToGiB(m.Usage.Total)),
			colUsed:   fmt.Sprintf("%.2f GiB", utils.BytesToGiB(m.Usage.Used)),
			colPct:    fmt.Sprintf("%.1f%%", m.Usage.UsedPercent),
		}))
	}

	return t.New(cols).WithRows(rows)
}
