package resource

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

const (
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputChart = "chart"
)

var errUnsupportedOutput = errors.New("unsupported output format")

// addOutputFlag registers -o/--output with the given default and accepted values.
func addOutputFlag(cmd *cobra.Command, fallback string, accepted ...string) {
	cmd.Flags().StringP("output", "o", fallback, fmt.Sprintf("Output format, one of %v", accepted))
}

// outputFormat reads -o/--output and validates it against accepted.
func outputFormat(cmd *cobra.Command, accepted ...string) (string, error) {
	output, _ := cmd.Flags().GetString("output")
	if !slices.Contains(accepted, output) {
		return "", fmt.Errorf("%w: %q (want one of %v)", errUnsupportedOutput, output, accepted)
	}

	return output, nil
}
