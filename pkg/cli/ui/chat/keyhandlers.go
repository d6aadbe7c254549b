package chat

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
)

const sendErrorText = "Failed to send message."

// handleKeyMsg dispatches keyboard input to the active overlay or pane.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	switch {
	case m.showHelpOverlay:
		return m.handleHelpOverlayKey(msg)
	case m.modalOpen:
		return m.handleModalKey(msg)
	case m.menuOpen:
		return m.handleMenuKey(msg)
	case m.focus == focusSidebar:
		return m.handleSidebarKey(msg)
	}

	return m.handleChatKey(msg)
}

// handleHelpOverlayKey closes the help overlay on F1 or esc.
func (m *Model) handleHelpOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ToggleHelp) || key.Matches(msg, m.keys.Close) {
		m.showHelpOverlay = false
		m.updateDimensions()
	}

	return m, nil
}

// handleChatKey handles keyboard input in the main chat view.
//
//nolint:cyclop // flat key dispatcher
func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Stop):
		if m.conv.Loading() {
			m.stopRequest()

			return m, m.focusInput()
		}

		return m.quit()
	case key.Matches(msg, m.keys.Send):
		return m.submit()
	case key.Matches(msg, m.keys.ToggleHelp):
		m.showHelpOverlay = true
		m.updateDimensions()

		return m, nil
	case key.Matches(msg, m.keys.OpenResources):
		m.openMenu()

		return m, nil
	case key.Matches(msg, m.keys.ToggleMetrics):
		m.toggleMetrics()

		return m, nil
	case key.Matches(msg, m.keys.FocusSidebar):
		m.focusSidebar()

		return m, nil
	case key.Matches(msg, m.keys.CopyOutput):
		reply, ok := m.conv.LatestReply()
		if !ok {
			return m, nil
		}

		return m, m.copyText(reply)
	case m.cyclesMetric(msg):
		m.cycleMetric(key.Matches(msg, m.keys.NextMetric))

		return m, nil
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.userScrolled = !m.viewport.AtBottom()

		return m, cmd
	}

	if m.conv.Loading() {
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	return m, cmd
}

// cyclesMetric reports whether "[" or "]" should switch the metric kind instead of being typed.
// The brackets only cycle while the panel is visible and the input is empty.
func (m *Model) cyclesMetric(msg tea.KeyMsg) bool {
	if !m.metricsVisible {
		return false
	}

	if !key.Matches(msg, m.keys.PrevMetric) && !key.Matches(msg, m.keys.NextMetric) {
		return false
	}

	return m.textarea.Value() == "" || m.conv.Loading()
}

// submit sends the input as a query. Blank input is ignored.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	pending, err := m.conv.Begin(m.textarea.Value())
	if errors.Is(err, conversation.ErrEmptyQuery) || errors.Is(err, conversation.ErrBusy) {
		return m, nil
	}

	m.textarea.Reset()
	m.textarea.Placeholder = placeholderWaiting
	m.textarea.Blur()
	m.userScrolled = false
	m.updateViewportContent()

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelRequest = cancel

	asker := m.asker

	ask := func() tea.Msg {
		reply, err := asker.Ask(ctx, pending.Query)

		return replyMsg{seq: pending.Seq, reply: reply, err: err}
	}

	return m, tea.Batch(ask, m.spinner.Tick)
}

// handleReply resolves the outstanding request. Replies to stopped requests are dropped.
func (m *Model) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg.err != nil {
		if !m.conv.Fail(msg.seq) {
			return m, nil
		}

		m.logger.WithError(msg.err).Warn("ask")
		cmds = append(cmds, m.notify(sendErrorText))
	} else if !m.conv.Resolve(msg.seq, msg.reply) {
		return m, nil
	}

	m.finishRequest()
	cmds = append(cmds, m.focusInput())

	return m, tea.Batch(cmds...)
}

// stopRequest abandons the outstanding request. Its reply will be ignored.
func (m *Model) stopRequest() {
	m.conv.Stop()
	m.finishRequest()
}

func (m *Model) finishRequest() {
	if m.cancelRequest != nil {
		m.cancelRequest()
		m.cancelRequest = nil
	}

	m.textarea.Placeholder = placeholderIdle
	m.updateViewportContent()
}

// copyText writes text to the clipboard and shows brief feedback.
func (m *Model) copyText(text string) tea.Cmd {
	err := m.clipboard(text)
	if err != nil {
		// Clipboard is unavailable in headless environments.
		m.logger.WithError(err).Debug("copy to clipboard")

		return nil
	}

	m.showCopyFeedback = true

	return tea.Tick(feedbackResetMs*time.Millisecond, func(time.Time) tea.Msg {
		return copyFeedbackClearMsg{}
	})
}
