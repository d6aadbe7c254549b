package ui_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTerminalTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "kubeassist", want: "\033]0;kubeassist\007"},
		{name: "title with spaces", title: "kubeassist - chat", want: "\033]0;kubeassist - chat\007"},
		{name: "empty title", title: "", want: "\033]0;\007"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			ui.SetTerminalTitle(&buf, testCase.title)
			assert.Equal(t, testCase.want, buf.String())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ui.IsTerminal(strings.NewReader("")))
	assert.False(t, ui.IsTerminal(nil))

	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = reader.Close()
		_ = writer.Close()
	})

	assert.False(t, ui.IsTerminal(reader))
	assert.False(t, ui.IsInteractive(reader, writer))
}
