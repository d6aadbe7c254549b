package errorhandler_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"syscall"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestBoom = errors.New("boom")

func TestExecutorExecuteSuccess(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "test",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	require.NoError(t, errorhandler.NewExecutor().Execute(cmd))
	require.NoError(t, errorhandler.NewExecutor().Execute(nil))
}

func TestExecutorExecuteInvalidSubcommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "test"}
	root.AddCommand(&cobra.Command{Use: "valid"})
	root.SetArgs([]string{"invalid"})

	err := errorhandler.NewExecutor().Execute(root)
	require.Error(t, err)

	message := err.Error()
	assert.Contains(t, message, "unknown command \"invalid\" for \"test\"")
	assert.NotContains(t, message, "Error: ")
	assert.Contains(t, message, "Run 'test --help' for usage.")
}

func TestExecutorExecuteKeepsCause(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:          "test",
		SilenceUsage: true,
		RunE:         func(*cobra.Command, []string) error { return errTestBoom },
	}
	cmd.SetArgs([]string{})

	err := errorhandler.NewExecutor().Execute(cmd)
	require.ErrorIs(t, err, errTestBoom)
	assert.Equal(t, "boom", err.Error())

	var cmdErr *errorhandler.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Empty(t, cmdErr.Hint())
}

func TestExecutorExecuteAddsBackendHint(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "test",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return fmt.Errorf("GET /pods: dial tcp 127.0.0.1:8000: %w", syscall.ECONNREFUSED)
		},
	}
	cmd.SetArgs([]string{})

	executor := errorhandler.NewExecutor(errorhandler.BackendHint(func() string { return "http://localhost:8000" }))

	err := executor.Execute(cmd)
	require.ErrorIs(t, err, syscall.ECONNREFUSED)

	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "is the backend running at http://localhost:8000? set --backend-url or KUBEASSIST_BACKEND_URL", lines[1])
}

func TestBackendHint(t *testing.T) {
	t.Parallel()

	hint := errorhandler.BackendHint(func() string { return "http://b" })

	assert.NotEmpty(t, hint(&backend.APIError{Method: "GET", Path: "/", StatusCode: 500}))
	assert.Empty(t, hint(&backend.APIError{Method: "GET", Path: "/", StatusCode: 404}))
	assert.Empty(t, hint(errTestBoom))
}

func TestBackendHintPrefersDialedURL(t *testing.T) {
	t.Parallel()

	hint := errorhandler.BackendHint(func() string { return "http://fallback" })
	err := &url.Error{Op: "Post", URL: "http://backend.internal:9000/ask", Err: syscall.ECONNREFUSED}

	assert.Equal(t,
		"is the backend running at http://backend.internal:9000? set --backend-url or KUBEASSIST_BACKEND_URL",
		hint(fmt.Errorf("ask: %w", err)),
	)
}

func TestStderrBypassesCapture(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	cmd := &cobra.Command{
		Use:          "test",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = io.WriteString(errorhandler.Stderr(cmd), "progress\n")

			return errTestBoom
		},
	}
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	err := errorhandler.NewExecutor().Execute(cmd)

	require.ErrorIs(t, err, errTestBoom)
	assert.Equal(t, "progress\n", stderr.String())
	assert.NotContains(t, err.Error(), "progress")
}

func TestStderrWithoutExecutor(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetErr(&stderr)

	assert.Same(t, &stderr, errorhandler.Stderr(cmd))
}

func TestCommandErrorNil(t *testing.T) {
	t.Parallel()

	var cmdErr *errorhandler.CommandError

	assert.Empty(t, cmdErr.Error())
	assert.Empty(t, cmdErr.Hint())
	assert.NoError(t, cmdErr.Unwrap())
}

func TestDefaultNormalizer(t *testing.T) {
	t.Parallel()

	normalizer := errorhandler.DefaultNormalizer{}

	assert.Empty(t, normalizer.Normalize("  \n "))
	assert.Equal(t, "bad flag\nRun 'x --help'", normalizer.Normalize("Error: bad flag\nRun 'x --help'\n"))
}
