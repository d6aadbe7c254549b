package chat

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/devantler-tech/kubeassist/pkg/utils/logging"
	"github.com/sirupsen/logrus"
)

// DefaultNotificationDuration is how long a toast stays visible.
const DefaultNotificationDuration = 4 * time.Second

// Inspector fetches the listing of one resource kind by its exact name.
type Inspector interface {
	Inspect(ctx context.Context, name string) (inspector.Payload, error)
}

// Params bundles the parameters for creating and running the chat TUI.
// Use this struct with NewModel or Run.
type Params struct {
	// Asker answers chat queries. Required.
	Asker conversation.Asker

	// Inspector serves the resource menu. Required.
	Inspector Inspector

	// Metrics feeds the metrics panel. Required.
	Metrics metrics.Fetcher

	// MetricsInterval is the polling period of the metrics panel.
	// Zero applies metrics.DefaultInterval.
	MetricsInterval time.Duration

	// DefaultMetric is the kind shown when the metrics panel first opens.
	// Zero applies metrics.CPU.
	DefaultMetric metrics.Kind

	// Greeting seeds the conversation. Empty applies conversation.DefaultGreeting.
	Greeting string

	// NotificationDuration controls how long toasts stay visible.
	// Zero applies DefaultNotificationDuration.
	NotificationDuration time.Duration

	// EventChan is an optional pre-created channel for sending external events to the TUI.
	// If nil, a new channel is created internally.
	EventChan chan tea.Msg

	// Logger receives diagnostics. The TUI owns the terminal, so it should not write to it.
	// Nil discards logs.
	Logger logrus.FieldLogger

	// Clipboard writes text to the system clipboard. Nil applies clipboard.WriteAll.
	Clipboard func(text string) error
}

func (p Params) withDefaults() Params {
	if p.MetricsInterval <= 0 {
		p.MetricsInterval = metrics.DefaultInterval
	}

	if !p.DefaultMetric.Valid() {
		p.DefaultMetric = metrics.CPU
	}

	if p.Greeting == "" {
		p.Greeting = conversation.DefaultGreeting
	}

	if p.NotificationDuration <= 0 {
		p.NotificationDuration = DefaultNotificationDuration
	}

	if p.EventChan == nil {
		p.EventChan = make(chan tea.Msg, eventChanBuf)
	}

	if p.Logger == nil {
		p.Logger = logging.Discard()
	}

	if p.Clipboard == nil {
		p.Clipboard = clipboard.WriteAll
	}

	return p
}
