package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
)

// ResourceSelectedMsg asks the TUI to fetch and show the listing of one resource kind.
// The resource menu emits it; other callers may send it through the event channel.
type ResourceSelectedMsg struct {
	Kind string
}

// externalMsg wraps an event received from the event channel so the waiter is re-armed exactly once.
type externalMsg struct {
	msg tea.Msg
}

// replyMsg carries the outcome of a chat request.
type replyMsg struct {
	seq   uint64
	reply string
	err   error
}

// resourceMsg carries the outcome of a resource fetch.
type resourceMsg struct {
	kind    string
	payload inspector.Payload
	err     error
}

// metricsMsg wraps a poller update delivered through the event channel.
type metricsMsg struct {
	update metrics.Update
}

// notificationExpiredMsg removes the toast with the given id.
type notificationExpiredMsg struct {
	id int
}

// copyFeedbackClearMsg hides the "Copied" status.
type copyFeedbackClearMsg struct{}
