package chat

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var roleTitle = cases.Title(language.English)

// updateViewportContent renders the conversation oldest first into the chat window.
func (m *Model) updateViewportContent() {
	messages := m.conv.Messages()

	if len(messages) == 0 && !m.conv.Loading() {
		m.viewport.SetContent(statusStyle.Render("  Type a query below to start chatting.\n"))

		return
	}

	wrapWidth := m.calculateWrapWidth()

	var builder strings.Builder

	for idx := len(messages) - 1; idx >= 0; idx-- {
		m.renderMessage(&builder, messages[idx], wrapWidth)
	}

	if m.conv.Loading() {
		builder.WriteString("\n")
		builder.WriteString(assistantMsgStyle.Render(roleLabel(conversation.RoleAssistant)))
		builder.WriteString(" " + m.spinner.View() + "\n")
	}

	m.viewport.SetContent(builder.String())

	if !m.userScrolled {
		m.viewport.GotoBottom()
	}
}

// calculateWrapWidth calculates the content width for text wrapping.
func (m *Model) calculateWrapWidth() uint {
	wrapWidth := max(m.viewport.Width-contentPadding, minWrapWidth)

	return uint(wrapWidth) //nolint:gosec // wrapWidth is guaranteed >= minWrapWidth
}

func (m *Model) renderMessage(builder *strings.Builder, msg conversation.Message, wrapWidth uint) {
	builder.WriteString("\n")

	switch msg.Role {
	case conversation.RoleUser:
		builder.WriteString(userMsgStyle.Render(roleLabel(msg.Role)))
		builder.WriteString("\n\n")

		wrapped := wordwrap.WrapString(msg.Content, wrapWidth)
		for line := range strings.SplitSeq(wrapped, "\n") {
			builder.WriteString("  ")
			builder.WriteString(line)
			builder.WriteString("\n")
		}
	case conversation.RoleAssistant:
		builder.WriteString(assistantMsgStyle.Render(roleLabel(msg.Role)))
		builder.WriteString("\n\n")
		builder.WriteString(m.renderReply(msg.Content))
		builder.WriteString("\n")
	}
}

// renderReply renders an assistant reply as markdown, caching by content.
func (m *Model) renderReply(content string) string {
	if out, ok := m.rendered[content]; ok {
		return out
	}

	out := renderMarkdown(m.renderer, content)
	m.rendered[content] = out

	return out
}

func roleLabel(role conversation.Role) string {
	return "▶ " + roleTitle.String(string(role))
}

// handleMouseMsg scrolls the chat window with the mouse wheel.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	target := &m.viewport
	if m.modalOpen {
		target = &m.modalViewport
	}

	//nolint:exhaustive // Only wheel events are relevant for scrolling.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		target.ScrollUp(scrollLines)
		m.userScrolled = !m.viewport.AtBottom()
	case tea.MouseButtonWheelDown:
		target.ScrollDown(scrollLines)

		if m.viewport.AtBottom() {
			m.userScrolled = false
		}
	default:
	}

	return m, nil
}
