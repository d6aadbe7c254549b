package configmanager_test

import (
	"encoding/json"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/devantler-tech/kubeassist/pkg/io/configmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	t.Parallel()

	out, err := configmanager.Schema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out, &schema))

	assert.Equal(t, "kubeassist configuration", schema["title"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "backend")
	assert.Contains(t, properties, "metrics")

	metrics := properties["metrics"].(map[string]any)["properties"].(map[string]any)
	interval := metrics["interval"].(map[string]any)
	assert.Equal(t, "string", interval["type"])

	defaultKind := metrics["defaultKind"].(map[string]any)
	assert.ElementsMatch(t, []any{"cpu", "memory", "disk", "net_rx", "net_tx"}, defaultKind["enum"])
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := configmanager.Render(v1alpha1.NewConfig())
	require.NoError(t, err)

	rendered := string(out)
	assert.Contains(t, rendered, "apiVersion: kubeassist.io/v1alpha1")
	assert.Contains(t, rendered, "url: http://localhost:8000")
	assert.Contains(t, rendered, "timeout: 30s")
	assert.Contains(t, rendered, "interval: 10s")
	assert.Contains(t, rendered, "defaultKind: cpu")
}
