package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title row with a right-aligned status.
func (m *Model) renderHeader() string {
	contentWidth := max(m.width-headerPadding, 1)

	title := titleStyle.Render(appTitle) + "  " + taglineStyle.Render(appTagline)
	status := m.buildStatusText()

	row := title
	if status != "" {
		spacing := max(contentWidth-lipgloss.Width(title)-lipgloss.Width(status), minSpacing)
		row = title + strings.Repeat(" ", spacing) + status
	}

	row = lipgloss.NewStyle().MaxWidth(contentWidth).Inline(true).Render(row)

	return headerBoxStyle.Width(max(m.width-modalPadding, 1)).Render(row)
}

// buildStatusText builds the status indicator (request state and transient feedback).
func (m *Model) buildStatusText() string {
	var parts []string

	if m.metricsVisible {
		parts = append(parts, metricsTitleStyle.Render(m.metricKind.Label()))
	}

	switch {
	case m.conv.Loading():
		parts = append(parts, m.spinner.View()+" "+statusStyle.Render("Thinking... (esc to stop)"))
	case m.resourceLoading:
		parts = append(parts, m.spinner.View()+" "+statusStyle.Render("Fetching resources..."))
	case m.showCopyFeedback:
		parts = append(parts, successStyle.Render("Copied"+checkmarkSuffix))
	default:
		parts = append(parts, statusStyle.Render("Ready"))
	}

	return strings.Join(parts, helpSep)
}

// renderBody renders the sidebar and chat column, or the resource modal when open.
func (m *Model) renderBody() string {
	if m.modalOpen {
		return m.renderResourceModal()
	}

	column := []string{m.renderChatWindow()}
	if m.metricsVisible {
		column = append(column, m.renderMetricsPanel())
	}

	main := lipgloss.JoinVertical(lipgloss.Left, column...)

	if !m.showSidebar() {
		return main
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

// renderChatWindow renders the bordered message viewport.
func (m *Model) renderChatWindow() string {
	style := viewportStyle
	if m.focus == focusInput && !m.menuOpen {
		style = focusedViewportStyle
	}

	return style.Width(max(m.mainWidth()-modalPadding, 1)).Render(m.viewport.View())
}

// renderInputOrModal renders either the input area or the active overlay.
func (m *Model) renderInputOrModal() string {
	if m.showHelpOverlay {
		return m.renderHelpOverlay()
	}

	if m.menuOpen {
		return m.renderResourceMenu()
	}

	style := inputStyle
	if m.conv.Loading() || m.focus != focusInput {
		style = disabledInputStyle
	}

	return style.Width(max(m.width-modalPadding, 1)).Render(m.textarea.View())
}
