package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	bodyHeight := max(1, m.height-3)
	form := m.renderForm(bodyHeight)
	results := m.renderResults(bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, results)

	status := m.styles.status.Width(m.width).Render(truncate(m.status, m.width-2))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

func (m *Model) renderForm(height int) string {
	var b strings.Builder

	b.WriteString(m.label("Folder:", focusFolder) + "\n")
	b.WriteString(m.folder.View() + "\n\n")
	b.WriteString(m.label("Search:", focusPattern) + "\n")
	b.WriteString(m.pattern.View() + "\n\n")

	algorithm := "none"
	if m.algorithm < len(m.names) {
		algorithm = m.names[m.algorithm]
	}
	b.WriteString(m.label("Algorithm:", focusAlgorithm) + fmt.Sprintf(" < %s >\n\n", algorithm))

	b.WriteString(m.checkbox("Match case", m.opts.MatchCase, focusMatchCase) + "\n")
	b.WriteString(m.checkbox("Match whole name", m.opts.MatchWhole, focusMatchWhole) + "\n")
	b.WriteString(m.checkbox("Include files", m.opts.IncludeFiles, focusFiles) + "\n")
	b.WriteString(m.checkbox("Include folders", m.opts.IncludeDirs, focusDirs) + "\n\n")

	switch {
	case m.run == nil:
		b.WriteString(m.styles.button.Render("[ Search ]"))
	case m.run.stopping:
		b.WriteString(m.styles.dim.Render("[ Stopping ]"))
	default:
		b.WriteString(m.styles.stopButton.Render("[ Stop ]"))
	}

	style := m.styles.pane
	if m.focus != focusResults {
		style = m.styles.focusedPane
	}
	return style.Width(m.ui.SearchPaneWidth).Height(height).Render(b.String())
}

func (m *Model) renderResults(height int) string {
	// Pane borders take two columns.
	width := max(minColumnWidth, m.width-m.ui.SearchPaneWidth-4)
	nameWidth := min(m.ui.NameColumnWidth, width-minColumnWidth-1)
	pathWidth := max(1, width-nameWidth-1)

	var b strings.Builder
	b.WriteString(m.styles.header.Render(truncate("Item", nameWidth) + " " + truncate("Path", pathWidth)))

	rows := m.visibleRows()
	end := min(len(m.results), m.offset+rows)
	for i := m.offset; i < end; i++ {
		r := m.results[i]
		name := r.name
		if r.isDir {
			name += string(filepath.Separator)
		}
		line := truncate(name, nameWidth) + " " + truncate(r.dir, pathWidth)
		switch {
		case i == m.cursor && m.focus == focusResults:
			line = m.styles.selected.Render(line)
		case r.isDir:
			line = m.styles.dir.Render(line)
		}
		b.WriteString("\n" + line)
	}
	if len(m.results) == 0 {
		b.WriteString("\n" + m.styles.dim.Render("No results"))
	}

	style := m.styles.pane
	if m.focus == focusResults {
		style = m.styles.focusedPane
	}
	return style.Width(width).Height(height).Render(b.String())
}

func (m *Model) label(text string, f focus) string {
	if m.focus == f {
		return m.styles.focused.Render(text)
	}
	return m.styles.label.Render(text)
}

func (m *Model) checkbox(text string, checked bool, f focus) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	return m.label(box+" "+text, f)
}

// truncate pads or cuts s to exactly width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s + strings.Repeat(" ", width-len(r))
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}
