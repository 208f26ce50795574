package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column widths for the fixed-width portion of a row. Title absorbs the
// remaining width. Every row renders at a fixed height of one line; the
// table shows only the rows that fit the current terminal.
const (
	colID       = 10
	colStatus   = 12
	colPriority = 9
	colDept     = 13
	colAssignee = 16
	colCreated  = 11
	colGap      = 1
	rowHeight   = 1
)

// windowOffset returns the first visible row index so that selected stays
// within a window of visible rows, moving the previous offset as little
// as possible.
func windowOffset(total, selected, visible, offset int) int {
	if total <= 0 || visible <= 0 {
		return 0
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= total {
		selected = total - 1
	}
	if offset > selected {
		offset = selected
	}
	if selected >= offset+visible {
		offset = selected - visible + 1
	}
	if offset > total-visible {
		offset = total - visible
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// visibleRows returns how many data rows fit in a content area of the
// given height, after the header row.
func visibleRows(contentHeight int) int {
	rows := (contentHeight - 1) / rowHeight
	if rows < 0 {
		return 0
	}
	return rows
}

func pad(s string, width int) string {
	if len(s) > width {
		if width <= 1 {
			return s[:width]
		}
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// renderTable renders the header plus the visible window of rows.
func (m Model) renderTable(width, height int) string {
	rows := visibleRows(height)
	offset := windowOffset(len(m.visible), m.selected, rows, m.offset)

	titleWidth := width - (colID + colStatus + colPriority + colDept + colAssignee + colCreated + 6*colGap) - 2
	if titleWidth < 8 {
		titleWidth = 8
	}

	var b strings.Builder
	header := pad("ID", colID) + " " +
		pad("STATUS", colStatus) + " " +
		pad("PRI", colPriority) + " " +
		pad("DEPARTMENT", colDept) + " " +
		pad("ASSIGNEE", colAssignee) + " " +
		pad("CREATED", colCreated) + " " +
		pad("TITLE", titleWidth)
	b.WriteString(m.styles.TableHeader.Render(header))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(m.styles.MutedText.Render("  No work orders match the current filters."))
		return b.String()
	}

	end := offset + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := offset; i < end; i++ {
		o := m.visible[i]
		if i == m.selected {
			line := pad(o.ID, colID) + " " +
				pad(string(o.Status), colStatus) + " " +
				pad(string(o.Priority), colPriority) + " " +
				pad(o.Department, colDept) + " " +
				pad(o.Assignee, colAssignee) + " " +
				pad(o.CreatedAt.Format("2006-01-02"), colCreated) + " " +
				pad(o.Title, titleWidth)
			b.WriteString(m.styles.SelectedRow.Render(line))
		} else {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				m.styles.Row.Render(pad(o.ID, colID)+" "),
				m.styles.StatusStyle(o.Status).Render(pad(string(o.Status), colStatus)),
				" ",
				m.styles.PriorityStyle(o.Priority).Render(pad(string(o.Priority), colPriority)),
				" ",
				m.styles.Row.Render(pad(o.Department, colDept)+" "),
				m.styles.Row.Render(pad(o.Assignee, colAssignee)+" "),
				m.styles.MutedText.Render(pad(o.CreatedAt.Format("2006-01-02"), colCreated)+" "),
				m.styles.Row.Render(pad(o.Title, titleWidth)),
			))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(m.visible) > rows {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render(
			fmt.Sprintf("  %d-%d of %d", offset+1, end, len(m.visible))))
	}
	return b.String()
}
