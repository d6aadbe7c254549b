package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/chart"
	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewMetricsCmd creates the metrics command.
func NewMetricsCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics [kind]",
		Short: "Show node metric time series",
		Long: `Show node metric time series as a chart or as raw samples.

Kinds: cpu, memory, disk, net_rx, net_tx. Without a kind, metrics.defaultKind
from the configuration is used. With --watch the series is fetched again every
metrics.interval until interrupted.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
	}

	addOutputFlag(cmd, outputChart, outputChart, outputJSON, outputYAML)
	cmd.Flags().BoolP("watch", "w", false, "Keep polling and print every new result")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		output, err := outputFormat(cmd, outputChart, outputJSON, outputYAML)
		if err != nil {
			return err
		}

		watch, _ := cmd.Flags().GetBool("watch")

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			cfg, err := runtime.ResolveConfig(injector)
			if err != nil {
				return err
			}

			name := string(cfg.Metrics.DefaultKind)
			if len(args) == 1 {
				name = args[0]
			}

			kind, err := metrics.ParseKind(name)
			if err != nil {
				return err
			}

			fetcher, err := runtime.ResolveMetricsFetcher(injector)
			if err != nil {
				return err
			}

			if !watch {
				points, err := fetcher.Fetch(cmd.Context(), kind)
				if err != nil {
					return fmt.Errorf("fetch %s metrics: %w", kind, err)
				}

				return writeMetrics(cmd.OutOrStdout(), kind, points, output)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return watchMetrics(ctx, fetcher, kind, cfg.Metrics.Interval.Duration, output,
				cmd.OutOrStdout(), errorhandler.Stderr(cmd))
		})
	}

	return cmd
}

// watchMetrics polls kind until ctx is done. Failed fetches are reported and polling continues.
func watchMetrics(
	ctx context.Context,
	fetcher metrics.Fetcher,
	kind metrics.Kind,
	interval time.Duration,
	output string,
	out, errOut io.Writer,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := make(chan metrics.Update)

	poller := metrics.NewPoller(fetcher, func(update metrics.Update) {
		select {
		case updates <- update:
		case <-ctx.Done():
		}
	}, metrics.WithInterval(interval))

	poller.Start(ctx, kind)
	defer poller.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			switch {
			case update.Loading:
				continue
			case update.Err != nil:
				notify.Warningf(errOut, "fetch %s metrics: %v", kind, update.Err)
			default:
				err := writeMetrics(out, kind, update.Points, output)
				if err != nil {
					return err
				}
			}
		}
	}
}

func writeMetrics(out io.Writer, kind metrics.Kind, points []metrics.Point, output string) error {
	var (
		text string
		err  error
	)

	switch output {
	case outputJSON:
		var data []byte

		data, err = json.MarshalIndent(points, "", "  ")
		text = string(data)
	case outputYAML:
		var data []byte

		data, err = yaml.Marshal(points)
		text = string(data)
	default:
		text = kind.Label() + "\n" + chart.Render(kind, points)
		if len(points) == 0 {
			text = kind.Label() + "\nNo data points"
		}
	}

	if err != nil {
		return fmt.Errorf("marshal %s metrics: %w", kind, err)
	}

	_, err = fmt.Fprintln(out, text)
	if err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}
