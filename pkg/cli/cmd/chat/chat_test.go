package chat_test

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/cli/cmd/chat"
	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/client/backend/backendtest"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestChat_LinePromptWhenNotInteractive(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)

	stdout, stderr, err := execute(t, chat.NewChatCmd(server.Runtime()), "list pods\n\nexit\nnever sent\n")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Assistant: "+v1alpha1.DefaultGreeting)
	assert.Contains(t, stdout, "Assistant: "+backendtest.Reply)
	assert.Empty(t, stderr)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"query":"list pods"}`, requests[0].Body)
}

func TestChat_CustomGreetingAndEOF(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)
	runtime := server.Runtime(func(cfg *v1alpha1.Config) {
		cfg.Chat.Greeting = "Ready when you are."
	})

	stdout, _, err := execute(t, chat.NewChatCmd(runtime), "scale web to 3", "--tui=false")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Assistant: Ready when you are.")
	assert.Contains(t, stdout, "Assistant: "+backendtest.Reply)
}

func TestChat_FailedSendKeepsSessionOpen(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, map[string]http.HandlerFunc{
		"POST /ask": backendtest.JSON(http.StatusBadGateway, map[string]string{"detail": "upstream"}),
	})

	stdout, stderr, err := execute(t, chat.NewChatCmd(server.Runtime()), "first\nsecond\nquit\n")

	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stderr, "Failed to send message."))
	assert.NotContains(t, stdout, backendtest.Reply)
	assert.Len(t, server.Requests(), 2)
}

func TestAsk(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)

	stdout, _, err := execute(t, chat.NewAskCmd(server.Runtime()), "", "how", "many", "pods?")

	require.NoError(t, err)
	assert.Equal(t, backendtest.Reply+"\n", stdout)
	assert.JSONEq(t, `{"query":"how many pods?"}`, server.Requests()[0].Body)
}

func TestAsk_Raw(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)

	stdout, _, err := execute(t, chat.NewAskCmd(server.Runtime()), "", "--raw", "pods")

	require.NoError(t, err)
	assert.Contains(t, stdout, `"type": "text"`)
	assert.Contains(t, stdout, `"result": "`+backendtest.Reply+`"`)
}

func TestAsk_BackendReportedError(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, map[string]http.HandlerFunc{
		"POST /ask": backendtest.JSON(http.StatusOK, map[string]string{"type": "error", "message": "no cluster"}),
	})

	_, _, err := execute(t, chat.NewAskCmd(server.Runtime()), "", "pods")

	require.ErrorIs(t, err, backend.ErrBackendReported)
	assert.Contains(t, err.Error(), "no cluster")
}

func TestAsk_RequiresQuery(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)

	_, _, err := execute(t, chat.NewAskCmd(server.Runtime()), "")

	require.Error(t, err)
	assert.Empty(t, server.Requests())
}

func TestHistory(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, map[string]http.HandlerFunc{
		"GET /history": backendtest.JSON(http.StatusOK, []map[string]string{
			{"query": "show me all pods", "response": "line one\nline two", "timestamp": "2026-01-02T10:00:00"},
			{"query": "list nodes", "response": strings.Repeat("x", 80), "timestamp": "2026-01-02T09:00:00"},
		}),
	})

	tests := []struct {
		name string
		args []string
		want []string
		skip []string
	}{
		{
			name: "table",
			want: []string{"TIMESTAMP", "show me all pods", "line one", strings.Repeat("x", 59) + "…"},
			skip: []string{"line two"},
		},
		{
			name: "limit",
			args: []string{"-n", "1"},
			want: []string{"show me all pods"},
			skip: []string{"list nodes"},
		},
		{
			name: "yaml",
			args: []string{"-o", "yaml"},
			want: []string{"- query: show me all pods", "2026-01-02T09:00:00"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, chat.NewHistoryCmd(server.Runtime()), "", test.args...)
			require.NoError(t, err)

			for _, want := range test.want {
				assert.Contains(t, stdout, want)
			}

			for _, skip := range test.skip {
				assert.NotContains(t, stdout, skip)
			}
		})
	}
}

func TestHistory_Empty(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, map[string]http.HandlerFunc{
		"GET /history": backendtest.JSON(http.StatusOK, []any{}),
	})

	stdout, stderr, err := execute(t, chat.NewHistoryCmd(server.Runtime()), "")

	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no history yet")
}
