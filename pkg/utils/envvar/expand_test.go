package envvar_test

import (
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/utils/envvar"
	"github.com/stretchr/testify/assert"
)

func TestExpandFunc(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"ASSISTANT_HOST": "assistant.internal",
		"ASSISTANT_PORT": "9000",
		"EMPTY":          "",
	}
	lookup := func(name string) (string, bool) {
		value, ok := env[name]

		return value, ok
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "no placeholders", input: "http://localhost:8000", want: "http://localhost:8000"},
		{
			name:  "several placeholders",
			input: "http://${ASSISTANT_HOST}:${ASSISTANT_PORT}",
			want:  "http://assistant.internal:9000",
		},
		{name: "unset without fallback", input: "x${MISSING}y", want: "xy"},
		{name: "unset with fallback", input: "${MISSING:-8000}", want: "8000"},
		{name: "empty uses fallback", input: "${EMPTY:-debug}", want: "debug"},
		{name: "set ignores fallback", input: "${ASSISTANT_PORT:-8000}", want: "9000"},
		{name: "bare dollar is kept", input: "$ASSISTANT_PORT", want: "$ASSISTANT_PORT"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, envvar.ExpandFunc(test.input, lookup))
		})
	}
}

//nolint:paralleltest // t.Setenv is incompatible with t.Parallel
func TestExpand(t *testing.T) {
	t.Setenv("KUBEASSIST_TEST_EXPAND", "on")

	assert.Equal(t, "metrics on", envvar.Expand("metrics ${KUBEASSIST_TEST_EXPAND}"))
}
