package cmd

import (
	"fmt"
	"os"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/cli/cmd/chat"
	"github.com/devantler-tech/kubeassist/pkg/cli/cmd/resource"
	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	manager := configmanager.NewManager()
	runtimeContainer := runtime.NewRuntime(manager, os.Stderr)

	cmd := &cobra.Command{
		Use:   "kubeassist",
		Short: "kubeassist is a terminal client for an LLM-backed Kubernetes assistant",
		Long: "kubeassist talks to a Kubernetes assistant backend. Ask questions in plain language, " +
			"inspect cluster resources and follow node metrics from an interactive chat or from scripts.",
		RunE:         handleRootRunE,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return manager.BindFlags(cmd.Flags())
		},
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	manager.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(chat.NewChatCmd(runtimeContainer))
	cmd.AddCommand(chat.NewAskCmd(runtimeContainer))
	cmd.AddCommand(chat.NewHistoryCmd(runtimeContainer))
	cmd.AddCommand(resource.NewGetCmd(runtimeContainer))
	cmd.AddCommand(resource.NewMetricsCmd(runtimeContainer))
	cmd.AddCommand(resource.NewApplyCmd(runtimeContainer))
	cmd.AddCommand(NewPingCmd(runtimeContainer))
	cmd.AddCommand(NewConfigCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor(errorhandler.BackendHint(func() string {
		return flagBackendURL(cmd)
	}))

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(
	cmd *cobra.Command,
	_ []string,
) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}

func flagBackendURL(cmd *cobra.Command) string {
	if cmd == nil {
		return v1alpha1.DefaultBackendURL
	}

	flag := cmd.PersistentFlags().Lookup(configmanager.FlagBackendURL)
	if flag == nil {
		return v1alpha1.DefaultBackendURL
	}

	return flag.Value.String()
}
