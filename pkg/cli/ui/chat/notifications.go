package chat

import (
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notification is a transient toast.
type notification struct {
	id   int
	text string
}

// notify shows text as a toast and schedules its removal.
func (m *Model) notify(text string) tea.Cmd {
	m.nextNotificationID++
	id := m.nextNotificationID

	m.notifications = append(m.notifications, notification{id: id, text: text})
	m.updateDimensions()

	return tea.Tick(m.notificationDuration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (m *Model) expireNotification(id int) {
	before := len(m.notifications)

	m.notifications = slices.DeleteFunc(m.notifications, func(n notification) bool {
		return n.id == id
	})

	if len(m.notifications) != before {
		m.updateDimensions()
	}
}

// Notifications returns the texts of the visible toasts, oldest first.
func (m *Model) Notifications() []string {
	texts := make([]string, 0, len(m.notifications))
	for _, n := range m.notifications {
		texts = append(texts, n.text)
	}

	return texts
}

// renderNotifications renders one line per visible toast.
func (m *Model) renderNotifications() string {
	if len(m.notifications) == 0 {
		return ""
	}

	clip := lipgloss.NewStyle().MaxWidth(max(m.width-modalPadding, 1)).Inline(true)
	lines := make([]string, 0, len(m.notifications))

	for _, n := range m.notifications {
		lines = append(lines, clip.Render(errorStyle.Render("✗ ")+n.text))
	}

	return strings.Join(lines, "\n")
}
