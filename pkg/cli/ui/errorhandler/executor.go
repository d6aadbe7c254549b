// Package errorhandler runs the cobra command tree and turns its failures into
// concise messages for the terminal.
package errorhandler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/spf13/cobra"
)

// Hinter suggests a fix for an error, or returns "" when it has nothing to add.
type Hinter func(err error) string

// Executor runs a cobra command, capturing its error stream and attaching hints.
type Executor struct {
	normalizer DefaultNormalizer
	hinters    []Hinter
}

// NewExecutor constructs an Executor with the given hinters.
func NewExecutor(hinters ...Hinter) *Executor {
	return &Executor{normalizer: DefaultNormalizer{}, hinters: hinters}
}

// Execute runs cmd. It returns nil on success or a *CommandError that keeps the
// original error in its chain.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(context.WithValue(ctx, stderrKey{}, originalErrWriter))
	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	return &CommandError{
		message: e.normalizer.Normalize(errBuf.String()),
		hint:    e.hint(err),
		cause:   err,
	}
}

type stderrKey struct{}

// Stderr returns the error stream in effect before the Executor captured it. Commands
// write progress and warnings there so they show while the command runs.
// Outside an Executor it is cmd.ErrOrStderr().
func Stderr(cmd *cobra.Command) io.Writer {
	if ctx := cmd.Context(); ctx != nil {
		if writer, ok := ctx.Value(stderrKey{}).(io.Writer); ok {
			return writer
		}
	}

	return cmd.ErrOrStderr()
}

func (e *Executor) hint(err error) string {
	for _, hinter := range e.hinters {
		if hint := hinter(err); hint != "" {
			return hint
		}
	}

	return ""
}

// CommandError is a cobra failure with its normalized stderr output and an optional hint.
type CommandError struct {
	message string
	hint    string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}

	text := e.text()
	if e.hint == "" {
		return text
	}

	return text + "\n" + e.hint
}

func (e *CommandError) text() string {
	switch {
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Hint returns the suggested fix, if any.
func (e *CommandError) Hint() string {
	if e == nil {
		return ""
	}

	return e.hint
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer trims cobra's stderr output.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes the leading "Error: " prefix, and keeps usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}

// BackendHint suggests checking the backend address when it could not be reached
// or answered with a server error.
func BackendHint(baseURL func() string) Hinter {
	return func(err error) string {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode >= 500 {
				return "the backend failed to handle the request; check its logs"
			}

			return ""
		}

		msg := err.Error()
		if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
			return "is the backend running at " + dialedURL(err, baseURL) + "? set --backend-url or KUBEASSIST_BACKEND_URL"
		}

		return ""
	}
}

// dialedURL returns the origin of the request that failed, falling back to baseURL
// when the chain carries no *url.Error.
func dialedURL(err error, baseURL func() string) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		parsed, parseErr := url.Parse(urlErr.URL)
		if parseErr == nil && parsed.Host != "" {
			return parsed.Scheme + "://" + parsed.Host
		}
	}

	return baseURL()
}
