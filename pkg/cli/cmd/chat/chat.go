package chat

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/cli/ui"
	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/devantler-tech/kubeassist/pkg/utils/logging"
	"github.com/spf13/cobra"
)

// dependencies are the services a chat session needs.
type dependencies struct {
	cfg       *v1alpha1.Config
	logger    *logging.Logger
	asker     conversation.Asker
	inspector *inspector.Inspector
	fetcher   metrics.Fetcher
}

func resolveDependencies(injector runtime.Injector) (dependencies, error) {
	cfg, err := runtime.ResolveConfig(injector)
	if err != nil {
		return dependencies{}, err
	}

	logger, err := runtime.ResolveLogger(injector)
	if err != nil {
		return dependencies{}, err
	}

	asker, err := runtime.ResolveAsker(injector)
	if err != nil {
		return dependencies{}, err
	}

	ins, err := runtime.ResolveInspector(injector)
	if err != nil {
		return dependencies{}, err
	}

	fetcher, err := runtime.ResolveMetricsFetcher(injector)
	if err != nil {
		return dependencies{}, err
	}

	return dependencies{cfg: cfg, logger: logger, asker: asker, inspector: ins, fetcher: fetcher}, nil
}

// NewChatCmd creates and returns the chat command.
func NewChatCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat with the Kubernetes assistant",
		Long: `Start an interactive chat with the Kubernetes assistant.

The terminal UI shows the conversation, a history sidebar, a resource browser
(ctrl+r) and a live metrics chart (ctrl+g). Press F1 for all key bindings.

When stdin or stdout is not a terminal, or --tui=false is given, a plain
line prompt is used instead. Type 'exit' or 'quit' to leave it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().Bool("tui", true, "Use the interactive terminal UI")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return handleChatRunE(cmd, runtimeContainer)
	}

	return cmd
}

// handleChatRunE handles the chat command execution.
func handleChatRunE(cmd *cobra.Command, runtimeContainer *runtime.Runtime) error {
	useTUI, _ := cmd.Flags().GetBool("tui")

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runtimeContainer.Invoke(func(injector runtime.Injector) error {
		deps, err := resolveDependencies(injector)
		if err != nil {
			return err
		}

		if useTUI && ui.IsInteractive(cmd.InOrStdin(), cmd.OutOrStdout()) {
			return runTUIChat(ctx, deps, cmd.OutOrStdout())
		}

		return runLineChat(ctx, deps, cmd.InOrStdin(), cmd.OutOrStdout(), errorhandler.Stderr(cmd))
	})
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
