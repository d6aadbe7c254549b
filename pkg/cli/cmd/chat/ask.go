package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command.
func NewAskCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Send a single query to the assistant",
		Long: `Send a single query to the assistant and print the reply.

Example:
  kubeassist ask show me all pods in the default namespace`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}

	cmd.Flags().Bool("raw", false, "Print the backend response as JSON instead of the reply text")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		query := strings.Join(args, " ")

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			client, err := runtime.ResolveBackendClient(injector)
			if err != nil {
				return err
			}

			resp, err := client.AskRaw(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("ask: %w", err)
			}

			if !raw {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.Reply())
				if err != nil {
					return fmt.Errorf("write reply: %w", err)
				}

				return nil
			}

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal response: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if err != nil {
				return fmt.Errorf("write reply: %w", err)
			}

			return nil
		})
	}

	return cmd
}
