package notify_test

import (
	"bytes"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
)

func TestWriteMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  notify.Message
		want string
	}{
		{
			name: "error",
			msg:  notify.Message{Type: notify.ErrorType, Content: "test error"},
			want: "✗ test error\n",
		},
		{
			name: "error with formatting",
			msg:  notify.Message{Type: notify.ErrorType, Content: "error: %s (%d)", Args: []any{"failed", 42}},
			want: "✗ error: failed (42)\n",
		},
		{
			name: "warning",
			msg:  notify.Message{Type: notify.WarningType, Content: "backend slow"},
			want: "⚠ backend slow\n",
		},
		{
			name: "activity",
			msg:  notify.Message{Type: notify.ActivityType, Content: "uploading app.yaml"},
			want: "► uploading app.yaml\n",
		},
		{
			name: "success",
			msg:  notify.Message{Type: notify.SuccessType, Content: "applied"},
			want: "✔ applied\n",
		},
		{
			name: "info",
			msg:  notify.Message{Type: notify.InfoType, Content: "using defaults"},
			want: "ℹ using defaults\n",
		},
		{
			name: "title with default emoji",
			msg:  notify.Message{Type: notify.TitleType, Content: "History"},
			want: "ℹ️ History\n",
		},
		{
			name: "multi-line content is indented",
			msg:  notify.Message{Type: notify.ErrorType, Content: "first\nsecond\n\nthird"},
			want: "✗ first\n  second\n\n  third\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer

			msg := testCase.msg
			msg.Writer = &out
			notify.WriteMessage(msg)

			if got := out.String(); got != testCase.want {
				t.Fatalf("output mismatch. want %q, got %q", testCase.want, got)
			}
		})
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	notify.Errorf(&out, "e %d", 1)
	notify.Warningf(&out, "w")
	notify.Activityf(&out, "a")
	notify.Successf(&out, "s")
	notify.Infof(&out, "i")
	notify.Titlef(&out, "📜", "t %s", "x")

	want := "✗ e 1\n⚠ w\n► a\n✔ s\nℹ i\n📜 t x\n"
	if got := out.String(); got != want {
		t.Fatalf("output mismatch. want %q, got %q", want, got)
	}
}
