package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/svc/inspector"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// NewGetCmd creates the get command.
func NewGetCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <kind>...",
		Short: "List cluster resources through the backend",
		Long: `List cluster resources through the backend.

Kinds: pods (po), deployments (deploy), services (svc), configmaps (cm),
namespaces (ns), nodes (no), or all. A single kind prints its listing.
Several kinds are fetched concurrently and printed as a map keyed by kind.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}

	addOutputFlag(cmd, outputJSON, outputJSON, outputYAML)
	cmd.Flags().BoolP("quiet", "q", false, "Do not report progress when fetching several kinds")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		output, err := outputFormat(cmd, outputJSON, outputYAML)
		if err != nil {
			return err
		}

		quiet, _ := cmd.Flags().GetBool("quiet")

		kinds, err := parseKinds(args)
		if err != nil {
			return err
		}

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			ins, err := runtime.ResolveInspector(injector)
			if err != nil {
				return err
			}

			progress := errorhandler.Stderr(cmd)
			if quiet {
				progress = nil
			}

			return runGet(cmd.Context(), ins, kinds, output, cmd.OutOrStdout(), progress)
		})
	}

	return cmd
}

// parseKinds resolves arguments to kinds, expanding "all" and dropping duplicates.
func parseKinds(args []string) ([]inspector.Kind, error) {
	var kinds []inspector.Kind

	for _, arg := range args {
		if strings.EqualFold(arg, "all") {
			for _, kind := range inspector.Kinds() {
				if !slices.Contains(kinds, kind) {
					kinds = append(kinds, kind)
				}
			}

			continue
		}

		kind, err := inspector.ParseKind(arg)
		if err != nil {
			return nil, err
		}

		if !slices.Contains(kinds, kind) {
			kinds = append(kinds, kind)
		}
	}

	return kinds, nil
}

func runGet(
	ctx context.Context,
	ins *inspector.Inspector,
	kinds []inspector.Kind,
	output string,
	out, progress io.Writer,
) error {
	if len(kinds) == 1 {
		payload, err := ins.Inspect(ctx, string(kinds[0]))
		if err != nil {
			return err
		}

		return writePayload(out, payload, output)
	}

	payloads, err := fetchAll(ctx, ins, kinds, progress)
	if err != nil {
		return err
	}

	combined := make(map[inspector.Kind][]json.RawMessage, len(payloads))
	for _, payload := range payloads {
		combined[payload.Kind] = payload.Items
	}

	var data []byte
	if output == outputYAML {
		data, err = yaml.Marshal(combined)
	} else {
		data, err = json.MarshalIndent(combined, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal resources: %w", err)
	}

	_, err = fmt.Fprintln(out, strings.TrimRight(string(data), "\n"))
	if err != nil {
		return fmt.Errorf("write resources: %w", err)
	}

	return nil
}

// fetchAll fetches kinds concurrently. When progress is set, each kind is reported on it.
func fetchAll(
	ctx context.Context,
	ins *inspector.Inspector,
	kinds []inspector.Kind,
	progress io.Writer,
) ([]inspector.Payload, error) {
	if progress == nil {
		return ins.InspectAll(ctx, kinds...)
	}

	payloads := make([]inspector.Payload, len(kinds))
	tasks := make([]notify.ProgressTask, 0, len(kinds))

	for idx, kind := range kinds {
		tasks = append(tasks, notify.ProgressTask{
			Name: string(kind),
			Fn: func(ctx context.Context) error {
				payload, err := ins.Inspect(ctx, string(kind))
				if err != nil {
					return err
				}

				payloads[idx] = payload

				return nil
			},
		})
	}

	group := notify.NewProgressGroup("Fetching resources", "🔎", progress,
		notify.WithLabels(notify.FetchingLabels()),
	)

	err := group.Run(ctx, tasks...)
	if err != nil {
		return nil, fmt.Errorf("inspect resources: %w", err)
	}

	return payloads, nil
}

func writePayload(out io.Writer, payload inspector.Payload, output string) error {
	var (
		text string
		err  error
	)

	if output == outputYAML {
		text, err = payload.YAML()
	} else {
		text, err = payload.Pretty()
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, strings.TrimRight(text, "\n"))
	if err != nil {
		return fmt.Errorf("write resources: %w", err)
	}

	return nil
}
