package chat

import tea "github.com/charmbracelet/bubbletea"

// handleWindowSize processes terminal resize events.
func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.updateDimensions()

	if !m.ready {
		m.ready = true
	}
}

// showSidebar reports whether the terminal is wide enough for the history sidebar.
func (m *Model) showSidebar() bool {
	return m.width >= minSidebarWidth
}

// mainWidth returns the outer width of the chat column.
func (m *Model) mainWidth() int {
	if m.showSidebar() {
		return max(m.width-sidebarWidth, 1)
	}

	return max(m.width, 1)
}

// bodyHeight returns the outer height of the area between header and input.
func (m *Model) bodyHeight() int {
	reserved := headerHeight + footerHeight + len(m.notifications) + m.inputAreaHeight()

	return max(m.height-reserved, minHeight+modalPadding)
}

// inputAreaHeight returns the height of whatever occupies the input slot.
func (m *Model) inputAreaHeight() int {
	switch {
	case m.showHelpOverlay:
		return len(m.keys.FullHelp()[0]) + modalPadding
	case m.menuOpen:
		return menuHeight + modalPadding
	default:
		return inputBoxHeight
	}
}

// chatHeight returns the inner height of the chat window.
func (m *Model) chatHeight() int {
	height := m.bodyHeight() - modalPadding
	if m.metricsVisible {
		height -= metricsBoxHeight
	}

	return max(height, minHeight)
}

// updateDimensions updates component dimensions based on terminal size and open panes.
func (m *Model) updateDimensions() {
	contentWidth := max(m.mainWidth()-viewportPadding, minWrapWidth)

	oldWidth := m.viewport.Width
	m.viewport.Width = contentWidth
	m.viewport.Height = m.chatHeight()
	m.textarea.SetWidth(max(m.width-textAreaPadding, minWrapWidth))

	m.modalViewport.Width = max(m.width-contentPadding, minWrapWidth)
	m.modalViewport.Height = max(m.bodyHeight()-modalPadding-1, minHeight)

	if oldWidth != m.viewport.Width {
		m.renderer = createRenderer(contentWidth - contentPadding)
		clear(m.rendered)
	}

	m.updateViewportContent()
}
