package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/joshuapare/partsim/partition"
)

var (
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#666666")
	borderColor  = lipgloss.Color("#383838")
)

// Style selects colored or plain table output.
type Style struct {
	Color bool
}

func (s Style) header() lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if s.Color {
		st = st.Foreground(primaryColor)
	}
	return st
}

func (s Style) cell(v partition.View, col int) lipgloss.Style {
	st := lipgloss.NewStyle().Padding(0, 1)
	if col != colStatus && col != colIndex {
		st = st.Align(lipgloss.Right)
	}
	if !s.Color {
		return st
	}
	switch {
	case col == colStatus && v.Free:
		return st.Foreground(successColor)
	case col == colStatus:
		return st.Foreground(warningColor)
	case col == colFrag && v.Fragmentation == 0:
		return st.Foreground(mutedColor)
	}
	return st
}

const (
	colIndex = iota
	colSize
	colStatus
	colRequested
	colFrag
)

// Table renders the partitions as a bordered table followed by a stats line.
func Table(views []partition.View, stats partition.Stats, style Style) string {
	rows := make([][]string, len(views))
	for i, v := range views {
		req := "-"
		if !v.Free {
			req = strconv.Itoa(v.Requested)
		}
		rows[i] = []string{
			strconv.Itoa(v.Index),
			strconv.Itoa(v.Size),
			StatusLabel(v),
			req,
			strconv.Itoa(v.Fragmentation),
		}
	}

	border := lipgloss.NewStyle()
	if style.Color {
		border = border.Foreground(borderColor)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("#", "Size", "Status", "Requested", "Fragmentation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(views) {
				return style.header()
			}
			return style.cell(views[row], col)
		})

	footer := lipgloss.NewStyle()
	if style.Color {
		footer = footer.Foreground(mutedColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, t.Render(), footer.Render(Stats(stats)))
}
