package chat

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const (
	historyColumnWidth = 60
	tabPadding         = 2
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "List the conversation stored by the backend",
		Long:         "List the questions and answers the backend has stored, newest first.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().IntP("limit", "n", 0, "Show at most this many entries (0 shows all)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or yaml")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		output, _ := cmd.Flags().GetString("output")

		if output != "table" && output != "yaml" {
			return fmt.Errorf("%w: %q", errUnsupportedOutput, output)
		}

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			client, err := runtime.ResolveBackendClient(injector)
			if err != nil {
				return err
			}

			records, err := client.History(cmd.Context())
			if err != nil {
				return fmt.Errorf("list history: %w", err)
			}

			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			if len(records) == 0 {
				notify.Infof(errorhandler.Stderr(cmd), "no history yet")

				return nil
			}

			if output == "yaml" {
				return writeHistoryYAML(cmd.OutOrStdout(), records)
			}

			return writeHistoryTable(cmd.OutOrStdout(), records)
		})
	}

	return cmd
}

func writeHistoryTable(out io.Writer, records []backend.HistoryRecord) error {
	writer := tabwriter.NewWriter(out, 0, 0, tabPadding, ' ', 0)

	_, _ = fmt.Fprintln(writer, "TIMESTAMP\tQUERY\tRESPONSE")

	for _, record := range records {
		_, _ = fmt.Fprintf(writer, "%s\t%s\t%s\n",
			record.Timestamp,
			truncate(record.Query, historyColumnWidth),
			truncate(record.Response, historyColumnWidth),
		)
	}

	err := writer.Flush()
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}

func writeHistoryYAML(out io.Writer, records []backend.HistoryRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}

	return nil
}

// truncate keeps the first line of text, cut to width runes.
func truncate(text string, width int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")

	runes := []rune(line)
	if len(runes) <= width {
		return line
	}

	return string(runes[:width-1]) + "…"
}
