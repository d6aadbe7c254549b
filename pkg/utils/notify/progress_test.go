package notify_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestFetchFailed = errors.New("fetch failed")

func TestProgressGroup_EmptyTasks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := notify.NewProgressGroup("Fetching", "🔎", &buf).Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestProgressGroup_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	group := notify.NewProgressGroup("Fetching resources", "🔎", &buf, notify.WithLabels(notify.FetchingLabels()))

	err := group.Run(context.Background(),
		notify.ProgressTask{Name: "Pods", Fn: func(context.Context) error { return nil }},
		notify.ProgressTask{Name: "Nodes", Fn: func(context.Context) error { return nil }},
	)
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "🔎 Fetching resources...\n"))
	assert.Contains(t, output, "► Pods fetching\n")
	assert.Contains(t, output, "✔ Pods fetched\n")
	assert.Contains(t, output, "✔ Nodes fetched\n")
	assert.NotContains(t, output, "\033[")
}

func TestProgressGroup_Failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := notify.NewProgressGroup("Fetching", "", &buf).Run(context.Background(),
		notify.ProgressTask{Name: "Pods", Fn: func(context.Context) error { return errTestFetchFailed }},
	)

	require.ErrorIs(t, err, errTestFetchFailed)
	assert.Contains(t, err.Error(), "Pods")
	assert.Contains(t, buf.String(), "► Fetching...\n")
	assert.Contains(t, buf.String(), "✗ Pods failed\n")
}

func TestProgressGroup_FailureCancelsOthers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := notify.NewProgressGroup("Fetching", "🔎", &buf).Run(context.Background(),
		notify.ProgressTask{Name: "fails", Fn: func(context.Context) error { return errTestFetchFailed }},
		notify.ProgressTask{Name: "waits", Fn: func(ctx context.Context) error {
			<-ctx.Done()

			return ctx.Err()
		}},
	)

	require.ErrorIs(t, err, errTestFetchFailed)
}
