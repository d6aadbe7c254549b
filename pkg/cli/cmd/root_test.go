package cmd_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/cli/cmd"
	"github.com/devantler-tech/kubeassist/pkg/client/backend/backendtest"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

// run executes the root command through cmd.Execute and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := cmd.NewRootCmd("test", "test", "test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := cmd.Execute(root)

	return stdout.String(), stderr.String(), err
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	version := "1.2.3"
	commit := "abc123"
	date := "2026-10-01"
	root := cmd.NewRootCmd(version, commit, date)

	expectedVersion := version + " (Built on " + date + " from Git SHA " + commit + ")"
	assert.Equal(t, expectedVersion, root.Version)
}

func TestNewRootCmdGlobalFlags(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("test", "test", "test")

	for _, name := range []string{
		configmanager.FlagConfig,
		configmanager.FlagBackendURL,
		configmanager.FlagTimeout,
		configmanager.FlagLogLevel,
		configmanager.FlagLogFile,
	} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("", "", "")
	root.SetOut(&out)
	root.SetArgs([]string{})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	root := cmd.NewRootCmd("1.2.3", "abc123", "2026-10-01")
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	_ = root.Execute()

	snaps.MatchSnapshot(t, out.String())
}

func TestSubcommandHelp(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"chat"},
		{"ask"},
		{"history"},
		{"get"},
		{"metrics"},
		{"apply"},
		{"ping"},
		{"config"},
		{"config", "view"},
		{"config", "schema"},
	} {
		t.Run(strings.Join(args, "_"), func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			root := cmd.NewRootCmd("", "", "")
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs(append(args, "--help"))

			require.NoError(t, root.Execute())

			snaps.MatchSnapshot(t, out.String())
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	server := backendtest.New(t, nil)

	stdout, _, err := run(t, "ping", "--backend-url", server.URL)

	require.NoError(t, err)
	assert.Contains(t, stdout, "backend at "+server.URL+" is up: "+backendtest.HealthMessage)
}

func TestPingWaitRetriesUntilReady(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ready := backendtest.JSON(http.StatusOK, map[string]string{"message": backendtest.HealthMessage})
	starting := backendtest.JSON(http.StatusServiceUnavailable, map[string]string{"detail": "starting"})

	server := backendtest.New(t, map[string]http.HandlerFunc{
		"GET /{$}": func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				starting(w, r)

				return
			}

			ready(w, r)
		},
	})

	stdout, stderr, err := run(t, "ping", "--backend-url", server.URL, "--wait", "30s")

	require.NoError(t, err)
	assert.Contains(t, stdout, "is up")
	assert.Equal(t, 2, strings.Count(stderr, "backend not ready"))
	assert.Equal(t, int32(3), calls.Load())
}

func TestPingHintsWhenBackendIsDown(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, _, err := run(t, "ping", "--backend-url", url)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is the backend running at "+url+"?")
}

func TestConfigView(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "config", "view", "--backend-url", "http://assistant.internal:9000", "--timeout", "5s")

	require.NoError(t, err)
	assert.Contains(t, stdout, "url: http://assistant.internal:9000")
	assert.Contains(t, stdout, "timeout: 5s")
}

func TestConfigSchema(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "config", "schema")

	require.NoError(t, err)
	assert.Contains(t, stdout, `"title": "kubeassist configuration"`)
	assert.Contains(t, stdout, `"backend"`)
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "deploy")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "deploy" for "kubeassist"`)
}
