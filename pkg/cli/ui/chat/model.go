package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/sirupsen/logrus"
)

// focus identifies the pane that receives navigation keys.
type focus int

const (
	focusInput focus = iota
	focusSidebar
)

// Model is the bubbletea model for the kubeassist chat TUI.
type Model struct {
	// Components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model
	help     help.Model
	keys     KeyMap
	renderer *glamour.TermRenderer
	rendered map[string]string

	// Collaborators
	conv      *conversation.Conversation
	asker     conversation.Asker
	inspector Inspector
	poller    *metrics.Poller
	logger    logrus.FieldLogger
	clipboard func(string) error

	ctx           context.Context //nolint:containedctx // lifetime of the TUI session
	cancel        context.CancelFunc
	cancelRequest context.CancelFunc
	eventChan     chan tea.Msg

	// Dimensions
	width  int
	height int
	ready  bool

	// Focus and history sidebar
	focus         focus
	sidebarCursor int

	// Resource menu and modal
	menuOpen        bool
	menuCursor      int
	resourceLoading bool
	modalOpen       bool
	modalKind       string
	modalContent    string
	modalViewport   viewport.Model

	// Metrics panel
	metricsVisible bool
	metricKind     metrics.Kind
	metricsLoading bool
	metricsErr     error
	metricPoints   []metrics.Point

	// Notifications
	notifications        []notification
	nextNotificationID   int
	notificationDuration time.Duration

	// Transient UI state
	showHelpOverlay  bool
	showCopyFeedback bool
	userScrolled     bool
	quitting         bool
}

// NewModel creates a chat TUI model bound to a background context.
func NewModel(params Params) *Model {
	return newModel(context.Background(), params)
}

func newModel(ctx context.Context, params Params) *Model {
	params = params.withDefaults()

	ctx, cancel := context.WithCancel(ctx)

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = spinnerStyle

	model := &Model{
		viewport:             createViewport(),
		modalViewport:        viewport.New(defaultWidth-contentPadding, defaultHeight),
		textarea:             createTextArea(),
		spinner:              spin,
		help:                 createHelpModel(),
		keys:                 DefaultKeyMap(),
		renderer:             createRenderer(defaultWidth - rendererPadding),
		rendered:             make(map[string]string),
		conv:                 conversation.New(params.Greeting),
		asker:                params.Asker,
		inspector:            params.Inspector,
		logger:               params.Logger,
		clipboard:            params.Clipboard,
		ctx:                  ctx,
		cancel:               cancel,
		eventChan:            params.EventChan,
		width:                defaultWidth,
		height:               defaultHeight,
		metricKind:           params.DefaultMetric,
		notificationDuration: params.NotificationDuration,
	}

	model.poller = metrics.NewPoller(
		params.Metrics,
		model.deliverMetrics,
		metrics.WithInterval(params.MetricsInterval),
	)

	model.updateDimensions()

	return model
}

// createTextArea initializes the single query input.
func createTextArea() textarea.Model {
	textArea := textarea.New()
	textArea.Placeholder = placeholderIdle
	textArea.Focus()
	textArea.CharLimit = charLimit
	textArea.SetWidth(defaultWidth - textAreaPadding)
	textArea.SetHeight(inputHeight)
	textArea.ShowLineNumbers = false
	textArea.SetPromptFunc(modalPadding, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}

		return "  "
	})
	textArea.FocusedStyle.CursorLine = lipgloss.NewStyle()
	textArea.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	textArea.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	return textArea
}

// createViewport initializes the chat window.
func createViewport() viewport.Model {
	return viewport.New(defaultWidth-sidebarWidth-viewportPadding, defaultHeight)
}

// GetEventChannel returns the channel external code uses to send events to the TUI.
func (m *Model) GetEventChannel() chan tea.Msg {
	return m.eventChan
}

// Init initializes the model and returns an initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.waitForEvent())
}

// Update handles messages and updates the model.
//
//nolint:cyclop // type-switch dispatcher for tea.Msg
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

		return m, nil

	case replyMsg:
		return m.handleReply(msg)

	case ResourceSelectedMsg:
		return m.handleResourceSelected(msg)

	case resourceMsg:
		return m.handleResource(msg)

	case externalMsg:
		model, cmd := m.Update(msg.msg)

		return model, tea.Batch(cmd, m.waitForEvent())

	case metricsMsg:
		m.handleMetrics(msg.update)

		return m, m.spinnerTickIfBusy(msg.update.Loading)

	case notificationExpiredMsg:
		m.expireNotification(msg.id)

		return m, nil

	case copyFeedbackClearMsg:
		m.showCopyFeedback = false

		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateViewportContent()

		return m, cmd

	default:
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)

		return m, cmd
	}
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader(), m.renderBody()}

	if toasts := m.renderNotifications(); toasts != "" {
		sections = append(sections, toasts)
	}

	sections = append(sections, m.renderInputOrModal(), m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.NewStyle().MaxWidth(m.width).Render(content)
}

// Messages returns the conversation, newest first.
func (m *Model) Messages() []conversation.Message {
	return m.conv.Messages()
}

// Loading reports whether a chat request is outstanding.
func (m *Model) Loading() bool {
	return m.conv.Loading()
}

// ModalOpen reports whether the resource modal is showing.
func (m *Model) ModalOpen() bool {
	return m.modalOpen
}

// ModalContent returns the pretty-printed listing shown in the resource modal.
func (m *Model) ModalContent() string {
	return m.modalContent
}

// MenuOpen reports whether the resource menu is showing.
func (m *Model) MenuOpen() bool {
	return m.menuOpen
}

// SidebarFocused reports whether the history sidebar receives navigation keys.
func (m *Model) SidebarFocused() bool {
	return m.focus == focusSidebar
}

// MetricsVisible reports whether the metrics panel is showing.
func (m *Model) MetricsVisible() bool {
	return m.metricsVisible
}

// MetricKind returns the kind shown by the metrics panel.
func (m *Model) MetricKind() metrics.Kind {
	return m.metricKind
}

// Close stops background work owned by the model. It is safe to call repeatedly.
func (m *Model) Close() {
	m.poller.Stop()

	if m.cancelRequest != nil {
		m.cancelRequest()
		m.cancelRequest = nil
	}

	m.cancel()
}

// busy reports whether anything animates the spinner.
func (m *Model) busy() bool {
	return m.conv.Loading() || m.resourceLoading || (m.metricsVisible && m.metricsLoading)
}

// spinnerTickIfBusy restarts the spinner when a new loading phase begins.
func (m *Model) spinnerTickIfBusy(started bool) tea.Cmd {
	if !started {
		return nil
	}

	return m.spinner.Tick
}

// waitForEvent returns a command that delivers the next event from the channel.
func (m *Model) waitForEvent() tea.Cmd {
	ctx := m.ctx
	eventChan := m.eventChan

	return func() tea.Msg {
		select {
		case msg := <-eventChan:
			return externalMsg{msg: msg}
		case <-ctx.Done():
			return nil
		}
	}
}

// quit stops background work and ends the program.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.Close()

	return m, tea.Quit
}

// Run starts the chat TUI and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, params Params) error {
	model := newModel(ctx, params)
	defer model.Close()

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	if err != nil {
		return fmt.Errorf("running chat program: %w", err)
	}

	return nil
}
