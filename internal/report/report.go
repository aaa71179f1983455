// Package report renders weekday statistics as terminal tables.
package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/presence-analyzer/presence-analyzer/pkg/presence"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

func Means(values presence.WeekdayValues) string {
	rows := make([][]string, 0, len(presence.Weekdays))
	for _, day := range presence.Weekdays {
		rows = append(rows, []string{day, strconv.FormatFloat(values[day], 'f', -1, 64), presence.FormatClock(values[day])})
	}
	return table([]string{"Weekday", "Mean (s)", "Mean"}, rows)
}

func Totals(totals presence.WeekdayTotals) string {
	rows := make([][]string, 0, len(presence.Weekdays))
	for _, day := range presence.Weekdays {
		rows = append(rows, []string{day, strconv.Itoa(totals[day]), presence.FormatClock(float64(totals[day]))})
	}
	return table([]string{"Weekday", "Total (s)", "Total"}, rows)
}

func StartEnd(startEnd map[string]presence.StartEnd) string {
	rows := make([][]string, 0, len(presence.Weekdays))
	for _, day := range presence.Weekdays {
		rows = append(rows, []string{day, startEnd[day].Start, startEnd[day].End})
	}
	return table([]string{"Weekday", "Start", "End"}, rows)
}

func Users(ids []int) string {
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{strconv.Itoa(id), "User " + strconv.Itoa(id)})
	}
	return table([]string{"Id", "Name"}, rows)
}

// table lays out rows in left aligned columns. Rows with only zero values are dimmed.
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(headers, widths, headerStyle))
	for _, row := range rows {
		style := lipgloss.NewStyle()
		if isEmptyRow(row) {
			style = emptyStyle
		}
		lines = append(lines, renderRow(row, widths, style))
	}
	return strings.Join(lines, "\n") + "\n"
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, 0, len(cells))
	for i, cell := range cells {
		rendered = append(rendered, cellStyle.Width(widths[i]+2).Render(style.Render(cell)))
	}
	return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), " ")
}

func isEmptyRow(row []string) bool {
	for _, cell := range row[1:] {
		if cell != "0" && cell != presence.FormatClock(0) {
			return false
		}
	}
	return true
}
