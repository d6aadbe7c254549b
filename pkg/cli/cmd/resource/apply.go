package resource

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	runtime "github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

const stdinName = "-"

var (
	errNoManifest      = errors.New("no Kubernetes objects found")
	errInvalidManifest = errors.New("invalid manifest")
)

// NewApplyCmd creates the apply command.
func NewApplyCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply -f <file>",
		Short: "Upload a manifest for the backend to apply",
		Long: `Upload a YAML manifest for the backend to apply to the cluster.

The file is checked locally first: every document must parse as YAML and name
an apiVersion and a kind. Use -f - to read from stdin.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("filename", "f", "", "Manifest to apply, or - for stdin")
	_ = cmd.MarkFlagRequired("filename")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		filename, _ := cmd.Flags().GetString("filename")

		manifest, err := readManifest(filename, cmd.InOrStdin())
		if err != nil {
			return err
		}

		objects, err := validateManifest(manifest)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		return runtimeContainer.Invoke(func(injector runtime.Injector) error {
			client, err := runtime.ResolveBackendClient(injector)
			if err != nil {
				return err
			}

			uploadName := filename
			if filename == stdinName {
				uploadName = "manifest.yaml"
			}

			resp, err := client.Upload(cmd.Context(), uploadName, bytes.NewReader(manifest))
			if err != nil {
				return fmt.Errorf("upload %s: %w", filename, err)
			}

			notify.Successf(cmd.OutOrStdout(), "applied %d object(s) from %s: %s", objects, filename, resp.Message)

			return nil
		})
	}

	return cmd
}

func readManifest(filename string, stdin io.Reader) ([]byte, error) {
	if filename == stdinName {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(filename) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return data, nil
}

// typeMeta is the part of an object the backend needs to route it.
type typeMeta struct {
	APIVersion string `json:"apiVersion"`
	Kind       string `json:"kind"`
}

// validateManifest checks every YAML document in data and returns the number of objects.
// Empty and comment-only documents are skipped.
func validateManifest(data []byte) (int, error) {
	objects := 0

	for idx, doc := range splitDocuments(data) {
		raw, err := yaml.YAMLToJSON([]byte(doc))
		if err != nil {
			return 0, fmt.Errorf("%w: document %d: %w", errInvalidManifest, idx+1, err)
		}

		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			continue
		}

		var meta typeMeta

		err = json.Unmarshal(raw, &meta)
		if err != nil {
			return 0, fmt.Errorf("%w: document %d: %w", errInvalidManifest, idx+1, err)
		}

		if meta.APIVersion == "" || meta.Kind == "" {
			return 0, fmt.Errorf("%w: document %d: apiVersion and kind are required", errInvalidManifest, idx+1)
		}

		objects++
	}

	if objects == 0 {
		return 0, errNoManifest
	}

	return objects, nil
}

// splitDocuments splits a multi-document YAML stream on "---" separator lines.
func splitDocuments(data []byte) []string {
	var (
		docs    []string
		current strings.Builder
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "---") && strings.TrimSpace(strings.TrimPrefix(line, "---")) == "" {
			docs = append(docs, current.String())
			current.Reset()

			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}

	return append(docs, current.String())
}
