package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
)

const resourceErrorText = "Error fetching resource: check backend or network connection."

// renderResourceMenu renders the resource kind picker in place of the input.
func (m *Model) renderResourceMenu() string {
	modalWidth := max(m.width-modalPadding, 1)

	var content strings.Builder

	content.WriteString(sidebarTitleStyle.Render("Resources"))

	for idx, kind := range inspector.Kinds() {
		content.WriteString("\n")

		if idx == m.menuCursor {
			content.WriteString(sidebarSelectedStyle.Render("› " + string(kind)))
		} else {
			content.WriteString(sidebarItemStyle.Render("  " + string(kind)))
		}
	}

	return createModalStyle(modalWidth, menuHeight).Render(content.String())
}

// handleMenuKey navigates the resource menu.
func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kinds := inspector.Kinds()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = max(m.menuCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = min(m.menuCursor+1, len(kinds)-1)
	case key.Matches(msg, m.keys.Select):
		m.closeMenu()

		return m.handleResourceSelected(ResourceSelectedMsg{Kind: string(kinds[m.menuCursor])})
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.OpenResources):
		m.closeMenu()
	}

	return m, nil
}

func (m *Model) openMenu() {
	m.menuOpen = true
	m.showHelpOverlay = false
	m.updateDimensions()
}

func (m *Model) closeMenu() {
	m.menuOpen = false
	m.updateDimensions()
}

// handleResourceSelected starts fetching the listing of one kind. Concurrent selections
// are not serialized: whichever response arrives last is shown.
func (m *Model) handleResourceSelected(msg ResourceSelectedMsg) (tea.Model, tea.Cmd) {
	m.resourceLoading = true

	ctx := m.ctx
	insp := m.inspector
	name := msg.Kind

	fetch := func() tea.Msg {
		payload, err := insp.Inspect(ctx, name)

		return resourceMsg{kind: name, payload: payload, err: err}
	}

	return m, tea.Batch(fetch, m.spinner.Tick)
}

// handleResource opens the modal with the fetched listing, or raises one error toast.
func (m *Model) handleResource(msg resourceMsg) (tea.Model, tea.Cmd) {
	m.resourceLoading = false

	if msg.err != nil {
		m.logger.WithError(msg.err).WithField("kind", msg.kind).Warn("fetch resource")

		return m, m.notify(resourceErrorText)
	}

	pretty, err := msg.payload.Pretty()
	if err != nil {
		m.logger.WithError(err).WithField("kind", msg.kind).Warn("format resource")

		return m, m.notify(resourceErrorText)
	}

	m.modalOpen = true
	m.modalKind = string(msg.payload.Kind)
	m.modalContent = pretty
	m.modalViewport.SetContent(pretty)
	m.modalViewport.GotoTop()
	m.updateDimensions()

	return m, nil
}

// renderResourceModal renders the scrollable JSON listing in place of the chat body.
func (m *Model) renderResourceModal() string {
	title := sidebarTitleStyle.Render(m.modalKind + " Resources")
	position := statusStyle.Render(fmt.Sprintf("%3.f%%", m.modalViewport.ScrollPercent()*100)) //nolint:mnd // percent

	content := title + strings.Repeat(" ", minSpacing) + position + "\n" + m.modalViewport.View()

	return createModalStyle(max(m.width-modalPadding, 1), max(m.bodyHeight()-modalPadding, minHeight)).
		Render(content)
}

// handleModalKey scrolls, copies, or closes the resource modal.
func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeModal()

		return m, nil
	case key.Matches(msg, m.keys.CopyOutput):
		return m, m.copyText(m.modalContent)
	}

	var cmd tea.Cmd
	m.modalViewport, cmd = m.modalViewport.Update(msg)

	return m, cmd
}

func (m *Model) closeModal() {
	m.modalOpen = false
	m.modalKind = ""
	m.modalContent = ""
	m.modalViewport.SetContent("")
	m.updateDimensions()
}
