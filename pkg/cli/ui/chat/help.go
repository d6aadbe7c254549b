package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	helpSep = " • "

	// UI dimension constants.
	defaultWidth   = 100
	defaultHeight  = 30
	modalPadding   = 2 // border width subtracted from terminal width
	contentPadding = 4 // padding inside modal content area

	// Layout constants.
	headerHeight     = 3 // one content row plus borders
	inputHeight      = 2
	inputBoxHeight   = inputHeight + 2
	footerHeight     = 1
	headerPadding    = 6
	textAreaPadding  = 6
	viewportPadding  = 4 // border plus horizontal padding of a bordered pane
	rendererPadding  = 8
	sidebarWidth     = 30
	minSidebarWidth  = 60 // terminals narrower than this hide the sidebar
	minWrapWidth     = 20
	minHeight        = 3
	minSpacing       = 2
	menuHeight       = 7 // title plus one row per resource kind
	scrollLines      = 3
	charLimit        = 4096
	eventChanBuf     = 100
	feedbackResetMs  = 1500
	metricsBoxHeight = metricsChartHeight + 4 // title, caption and borders

	checkmarkSuffix = " ✓"

	placeholderIdle    = "Type your query..."
	placeholderWaiting = "Waiting for a reply. Press esc to stop."
)

var helpKeyStyle = lipgloss.NewStyle().
	Foreground(keyColor)

var helpDescStyle = lipgloss.NewStyle().
	Foreground(dimColor)

// createHelpModel creates a configured help model.
func createHelpModel() help.Model {
	helpModel := help.New()
	helpModel.ShortSeparator = helpSep
	helpModel.FullSeparator = "   "
	helpModel.Ellipsis = "…"
	helpModel.Styles = help.Styles{
		ShortKey:       helpKeyStyle,
		ShortDesc:      helpDescStyle,
		ShortSeparator: helpStyle,
		Ellipsis:       helpStyle,
		FullKey:        helpKeyStyle,
		FullDesc:       helpDescStyle,
		FullSeparator:  helpStyle,
	}

	return helpModel
}

// renderHelpOverlay renders every keybinding in place of the input area.
func (m *Model) renderHelpOverlay() string {
	modalWidth := max(m.width-modalPadding, 1)
	m.help.Width = max(modalWidth-contentPadding, 1)

	content := m.help.FullHelpView(m.keys.FullHelp())
	lines := strings.Count(content, "\n") + 1

	return createModalStyle(modalWidth, lines).Render(content)
}

// renderFooter renders the context-aware help line.
func (m *Model) renderFooter() string {
	m.help.Width = max(m.width-contentPadding, 1)

	line := m.help.ShortHelpView(m.contextBindings())

	return lipgloss.NewStyle().MaxWidth(m.width).Inline(true).Render("  " + line)
}

// contextBindings returns the footer bindings for the current UI state.
func (m *Model) contextBindings() []key.Binding {
	switch {
	case m.showHelpOverlay:
		return []key.Binding{m.keys.Close, m.keys.Quit}

	case m.modalOpen:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.CopyOutput, m.keys.Close}

	case m.menuOpen:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Close}

	case m.focus == focusSidebar:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Close}

	case m.conv.Loading():
		return []key.Binding{m.keys.Stop, m.keys.OpenResources, m.keys.ToggleMetrics, m.keys.Quit}
	}

	bindings := []key.Binding{m.keys.Send}

	if _, ok := m.conv.LatestReply(); ok {
		bindings = append(bindings, m.keys.CopyOutput)
	}

	bindings = append(bindings, m.keys.FocusSidebar, m.keys.OpenResources, m.keys.ToggleMetrics)

	if m.metricsVisible {
		bindings = append(bindings, m.keys.NextMetric)
	}

	return append(bindings, m.keys.ToggleHelp, m.keys.Quit)
}
