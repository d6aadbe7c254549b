package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/client/netretry"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	pingBaseWait = 500 * time.Millisecond
	pingMaxWait  = 5 * time.Second
)

// NewPingCmd creates the ping command.
func NewPingCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the backend is reachable",
		Long: "Call the backend health endpoint. With --wait, connection errors and server errors are " +
			"retried with exponential backoff until the backend answers or the duration runs out.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().Duration("wait", 0, "keep retrying transient failures for up to this long")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		wait, _ := cmd.Flags().GetDuration("wait")

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			client, err := runtime.ResolveBackendClient(injector)
			if err != nil {
				return err
			}

			logger, err := runtime.ResolveLogger(injector)
			if err != nil {
				return err
			}

			return runPing(cmd.Context(), client, logger, wait, cmd.OutOrStdout(), errorhandler.Stderr(cmd))
		})
	}

	return cmd
}

func runPing(
	ctx context.Context,
	client *backend.Client,
	logger logrus.FieldLogger,
	wait time.Duration,
	out, errOut io.Writer,
) error {
	var message string

	check := func(ctx context.Context) error {
		var err error

		message, err = client.Health(ctx)

		return err
	}

	var err error

	if wait <= 0 {
		err = check(ctx)
	} else {
		waitCtx, cancel := context.WithTimeout(ctx, wait)
		defer cancel()

		err = netretry.Do(waitCtx, netretry.Policy{
			BaseWait: pingBaseWait,
			MaxWait:  pingMaxWait,
			OnRetry: func(attempt int, err error, delay time.Duration) {
				logger.WithError(err).WithField("attempt", attempt).Debug("backend not ready")
				notify.Activityf(errOut, "backend not ready, retrying in %s", delay)
			},
		}, check)
	}

	if err != nil {
		return fmt.Errorf("ping %s: %w", client.BaseURL(), err)
	}

	notify.Successf(out, "backend at %s is up: %s", client.BaseURL(), message)

	return nil
}
