package tui

import (
	"fmt"
	"strings"

	"smartrename/internal/tui/styles"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.Theme.Title.Render("smartrename"))
	sb.WriteString("\n")
	sb.WriteString(styles.Theme.Help.Render(fmt.Sprintf("Directory: %s", m.request.Directory)))
	sb.WriteString("\n")
	sb.WriteString(styles.Theme.Help.Render(m.describeRequest()))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderPlan())

	if m.detail != "" {
		sb.WriteString("\n" + styles.Theme.Unselected.Render(m.detail))
	}
	if m.stale {
		sb.WriteString("\n" + styles.Theme.Warning.Render("Directory changed since the last scan"))
	}

	sb.WriteString("\n\n")
	if m.mode == Confirm {
		sb.WriteString(styles.Theme.Prompt.Render(fmt.Sprintf("Rename %d selected files? [y/n]", len(m.Selection()))))
		sb.WriteString("\n")
		sb.WriteString(m.help.View(confirmKeys{m.keys}))
	} else {
		if status := m.status.View(); status != "" {
			sb.WriteString(status + "\n")
		}
		sb.WriteString(m.help.View(m.keys))
	}

	return styles.Theme.App.Render(sb.String())
}

func (m *Model) describeRequest() string {
	policy := m.request.Policy
	numbering := "names kept"
	if policy.UseSequential {
		numbering = fmt.Sprintf("numbered from %d, %d digits", policy.StartNumber, policy.DigitPadding)
	}
	desc := fmt.Sprintf("Prefix %q, %s, types: %s", policy.Prefix, numbering, m.request.Categories)
	if m.request.Match != "" {
		desc += fmt.Sprintf(", match %q", m.request.Match)
	}
	return desc
}

func (m *Model) renderPlan() string {
	if len(m.plan) == 0 {
		return styles.Theme.Unselected.Render("No files to rename")
	}

	start, end := m.visibleRange()
	width := 0
	for _, pair := range m.plan[start:end] {
		width = max(width, len(pair.Current))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d of %d selected\n", len(m.Selection()), len(m.plan)))
	for i := start; i < end; i++ {
		pair := m.plan[i]
		check := "[ ]"
		style := styles.Theme.Unselected
		if m.selected[pair.Current] {
			check = "[x]"
			style = styles.Theme.Selected
		}

		row := fmt.Sprintf("%s %-*s %s %s", check, width, pair.Current, styles.Theme.Arrow.Render("->"), pair.Proposed)
		if pair.IsIdentity() {
			row += " (unchanged)"
		}
		if i == m.cursor {
			sb.WriteString(styles.Theme.Cursor.Render("> ") + style.Render(row))
		} else {
			sb.WriteString("  " + style.Render(row))
		}
		sb.WriteString("\n")
	}
	if end < len(m.plan) {
		sb.WriteString(styles.Theme.Unselected.Render(fmt.Sprintf("  ... %d more", len(m.plan)-end)))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// visibleRange returns the window of plan rows that fits the terminal, keeping the cursor in view.
func (m *Model) visibleRange() (int, int) {
	rows := len(m.plan)
	if m.height <= 0 {
		return 0, rows
	}
	size := m.pageSize()
	if rows <= size {
		return 0, rows
	}
	start := max(m.cursor-size/2, 0)
	end := min(start+size, rows)
	start = max(end-size, 0)
	return start, end
}
