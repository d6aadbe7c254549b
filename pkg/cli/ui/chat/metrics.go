package chat

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/devantler-tech/kubeassist/pkg/cli/ui/chart"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
)

const (
	metricsChartHeight = 8
	metricsErrorText   = "Failed to load metrics"
)

// deliverMetrics is the poller sink. It runs on poller goroutines and hands updates
// to the event loop, giving up once the TUI is gone.
func (m *Model) deliverMetrics(update metrics.Update) {
	select {
	case m.eventChan <- metricsMsg{update: update}:
	case <-m.ctx.Done():
	}
}

// toggleMetrics shows the panel and starts polling, or hides it and stops.
func (m *Model) toggleMetrics() {
	m.metricsVisible = !m.metricsVisible
	m.resetMetrics()
	m.updateDimensions()

	if !m.metricsVisible {
		m.poller.Stop()

		return
	}

	m.poller.Start(m.ctx, m.metricKind)
}

// cycleMetric switches to the next or previous kind. History is not kept across kinds.
func (m *Model) cycleMetric(next bool) {
	kind := m.metricKind.Prev()
	if next {
		kind = m.metricKind.Next()
	}

	m.metricKind = kind
	m.resetMetrics()
	m.poller.SetKind(kind)
}

func (m *Model) resetMetrics() {
	m.metricsLoading = false
	m.metricsErr = nil
	m.metricPoints = nil
}

// handleMetrics applies a poller update for the selected kind.
func (m *Model) handleMetrics(update metrics.Update) {
	if !m.metricsVisible || update.Kind != m.metricKind {
		return
	}

	switch {
	case update.Loading:
		m.metricsLoading = true
		m.metricsErr = nil
	case update.Err != nil:
		m.metricsLoading = false
		m.metricsErr = update.Err
		m.metricPoints = nil
		m.logger.WithError(update.Err).WithField("metric", string(update.Kind)).Warn("load metrics")
	default:
		m.metricsLoading = false
		m.metricsErr = nil
		m.metricPoints = update.Points
	}
}

// MetricsLoading reports whether the metrics panel is waiting for a fetch.
func (m *Model) MetricsLoading() bool {
	return m.metricsLoading
}

// MetricsError reports the failure shown in the metrics panel, if any.
func (m *Model) MetricsError() error {
	return m.metricsErr
}

// MetricPoints returns the samples shown in the metrics panel.
func (m *Model) MetricPoints() []metrics.Point {
	return m.metricPoints
}

// renderMetricsPanel renders the chart of the selected kind.
func (m *Model) renderMetricsPanel() string {
	outerWidth := max(m.mainWidth()-modalPadding, 1)
	innerWidth := max(outerWidth-viewportPadding, minWrapWidth)

	title := metricsTitleStyle.Render("Resource Metrics · " + m.metricKind.Label())
	if m.metricsLoading {
		title += " " + m.spinner.View()
	}

	body := m.renderMetricsBody(innerWidth)

	return viewportStyle.Width(outerWidth).Height(metricsBoxHeight - modalPadding).Render(
		title + "\n" + body,
	)
}

func (m *Model) renderMetricsBody(width int) string {
	switch {
	case m.metricsErr != nil:
		return errorStyle.Render(metricsErrorText)
	case m.metricPoints == nil && m.metricsLoading:
		return statusStyle.Render("Loading " + m.metricKind.Label() + "...")
	case len(m.metricPoints) == 0:
		return statusStyle.Render("No data points")
	}

	chartWidth := max(width-chart.AxisWidth, minWrapWidth)
	plot := chart.Render(m.metricKind, m.metricPoints,
		chart.WithHeight(metricsChartHeight-2),
		chart.WithWidth(chartWidth),
	)

	return lipgloss.NewStyle().MaxWidth(width).Render(plot)
}
