package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarTitle = "🔧 Chat History"

// renderSidebar renders one preview per message, newest first.
func (m *Model) renderSidebar() string {
	innerWidth := max(sidebarWidth-viewportPadding, 1)
	innerHeight := max(m.bodyHeight()-modalPadding, minHeight)
	clip := lipgloss.NewStyle().MaxWidth(innerWidth).Inline(true)

	previews := m.conv.Previews()
	visible := max(innerHeight-2, 1) // title and blank line
	offset := scrollOffset(m.sidebarCursor, len(previews), visible)

	var content strings.Builder

	content.WriteString(sidebarTitleStyle.Render(clip.Render(sidebarTitle)))
	content.WriteString("\n\n")

	for idx := offset; idx < len(previews) && idx < offset+visible; idx++ {
		prefix := "  "
		style := sidebarItemStyle

		if m.focus == focusSidebar && idx == m.sidebarCursor {
			prefix = "› "
			style = sidebarSelectedStyle
		}

		content.WriteString(style.Render(clip.Render(prefix + previews[idx])))
		content.WriteString("\n")
	}

	box := viewportStyle
	if m.focus == focusSidebar {
		box = focusedViewportStyle
	}

	return box.Width(sidebarWidth - modalPadding).Height(innerHeight).Render(
		strings.TrimRight(content.String(), "\n"),
	)
}

// handleSidebarKey navigates the history sidebar.
func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebarCursor = max(m.sidebarCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.sidebarCursor = min(m.sidebarCursor+1, max(m.conv.Len()-1, 0))
	case key.Matches(msg, m.keys.Select):
		return m, m.selectHistory(m.sidebarCursor)
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.FocusSidebar):
		return m, m.focusInput()
	}

	return m, nil
}

// selectHistory replaces the conversation with the message at idx and returns focus to the input.
func (m *Model) selectHistory(idx int) tea.Cmd {
	if m.conv.Select(idx) {
		m.sidebarCursor = 0
		m.userScrolled = false
		m.updateViewportContent()
	}

	return m.focusInput()
}

func (m *Model) focusSidebar() {
	m.focus = focusSidebar
	m.sidebarCursor = min(m.sidebarCursor, max(m.conv.Len()-1, 0))
	m.textarea.Blur()
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput

	if m.conv.Loading() {
		return nil
	}

	return m.textarea.Focus()
}

// scrollOffset keeps the selected row inside a window of visible rows.
func scrollOffset(selected, total, visible int) int {
	if total <= visible {
		return 0
	}

	offset := 0
	if selected >= visible {
		offset = selected - visible + 1
	}

	return min(max(offset, 0), total-visible)
}
