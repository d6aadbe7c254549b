package di_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/di"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errConfigBroken = errors.New("config broken")

func TestNewRuntime_ResolvesServices(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer

	rt := di.NewRuntime(configmanager.NewManager(), &logs)

	err := rt.Invoke(func(injector di.Injector) error {
		cfg, err := di.ResolveConfig(injector)
		require.NoError(t, err)
		assert.Equal(t, v1alpha1.DefaultBackendURL, cfg.Backend.URL)

		client, err := di.ResolveBackendClient(injector)
		require.NoError(t, err)
		assert.Equal(t, v1alpha1.DefaultBackendURL, client.BaseURL())

		ins, err := di.ResolveInspector(injector)
		require.NoError(t, err)
		assert.NotNil(t, ins)

		fetcher, err := di.ResolveMetricsFetcher(injector)
		require.NoError(t, err)
		assert.NotNil(t, fetcher)

		asker, err := di.ResolveAsker(injector)
		require.NoError(t, err)
		assert.Same(t, client, asker)

		logger, err := di.ResolveLogger(injector)
		require.NoError(t, err)
		logger.Warn("from test")

		return nil
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "from test")
}

func TestRuntime_ConfigErrorPropagates(t *testing.T) {
	t.Parallel()

	rt := di.New(di.ProvideConfig(func() (*v1alpha1.Config, error) { return nil, errConfigBroken }))

	err := rt.Invoke(func(injector di.Injector) error {
		_, err := di.ResolveConfig(injector)

		return err
	})

	require.ErrorIs(t, err, errConfigBroken)
}

func TestRuntime_ProviderErrorStopsInvoke(t *testing.T) {
	t.Parallel()

	called := false
	rt := di.New(func(di.Injector) error { return errConfigBroken })

	err := rt.Invoke(func(di.Injector) error {
		called = true

		return nil
	})

	require.ErrorIs(t, err, errConfigBroken)
	assert.False(t, called)
}

func TestRuntime_LogsToConfiguredFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kubeassist.log")
	cfg := v1alpha1.NewConfig()
	cfg.Log.File = path
	cfg.Log.Level = v1alpha1.LogLevelDebug

	var fallback bytes.Buffer

	rt := di.NewRuntimeFromLoader(func() (*v1alpha1.Config, error) { return cfg, nil }, &fallback)

	err := rt.Invoke(func(injector di.Injector) error {
		logger, err := di.ResolveLogger(injector)
		require.NoError(t, err)
		logger.Debug("written to file")

		return nil
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
	assert.Empty(t, fallback.String())
}
