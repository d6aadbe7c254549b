package chat

import (
	"context"
	"io"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui"
	chatui "github.com/devantler-tech/kubeassist/pkg/cli/ui/chat"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
)

const terminalTitle = "kubeassist"

// runTUIChat starts the terminal UI and blocks until it exits.
func runTUIChat(ctx context.Context, deps dependencies, out io.Writer) error {
	// The UI owns the screen; log lines would corrupt it.
	deps.logger.Redirect(io.Discard)

	defaultMetric, err := metrics.ParseKind(string(deps.cfg.Metrics.DefaultKind))
	if err != nil {
		deps.logger.WithError(err).Warn("ignoring metrics.defaultKind")

		defaultMetric = metrics.CPU
	}

	ui.SetTerminalTitle(out, terminalTitle)

	return chatui.Run(ctx, chatui.Params{
		Asker:                deps.asker,
		Inspector:            deps.inspector,
		Metrics:              deps.fetcher,
		MetricsInterval:      deps.cfg.Metrics.Interval.Duration,
		DefaultMetric:        defaultMetric,
		Greeting:             deps.cfg.Chat.Greeting,
		NotificationDuration: deps.cfg.UI.NotificationDuration.Duration,
		Logger:               deps.logger,
	})
}
