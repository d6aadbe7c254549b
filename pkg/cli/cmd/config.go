package cmd

import (
	"fmt"

	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the client configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.AddCommand(newConfigViewCmd(runtimeContainer))
	cmd.AddCommand(newConfigSchemaCmd())

	return cmd
}

func newConfigViewCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "view",
		Short:        "Print the effective configuration as YAML",
		Long:         "Print the configuration after merging defaults, kubeassist.yaml, KUBEASSIST_* variables and flags.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runtimeContainer.Invoke(func(injector runtime.Injector) error {
				cfg, err := runtime.ResolveConfig(injector)
				if err != nil {
					return err
				}

				out, err := configmanager.Render(cfg)
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(out)
				if err != nil {
					return fmt.Errorf("write config: %w", err)
				}

				return nil
			})
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "schema",
		Short:        "Print the JSON schema of kubeassist.yaml",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := configmanager.Schema()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(append(out, '\n'))
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}
}
