package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/kubeassist/pkg/svc/conversation"
	"github.com/devantler-tech/kubeassist/pkg/utils/notify"
)

const sendErrorText = "Failed to send message."

// inputResult holds the result of reading from stdin.
type inputResult struct {
	input string
	err   error
}

// runLineChat runs a plain prompt loop over in and out until EOF, an exit command or ctx is done.
func runLineChat(ctx context.Context, deps dependencies, in io.Reader, out, errOut io.Writer) error {
	conv := conversation.New(deps.cfg.Chat.Greeting)

	notify.Titlef(out, "☸", "kubeassist chat")
	notify.Infof(out, "Type 'exit' or 'quit' to end the session.")

	for _, msg := range conv.Messages() {
		writeReply(out, msg.Content)
	}

	reader := bufio.NewReader(in)
	inputChan := make(chan inputResult, 1)

	for {
		input, err := readUserInput(ctx, reader, inputChan, out)
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}

		if err != nil {
			return err
		}

		if isExitCommand(input) {
			return nil
		}

		if input == "" {
			continue
		}

		reply, err := conv.Send(ctx, deps.asker, input)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			deps.logger.WithError(err).Warn("ask")
			notify.Errorf(errOut, sendErrorText)

			continue
		}

		writeReply(out, reply)
	}
}

// readUserInput prompts for and reads one line, supporting context cancellation.
// It returns io.EOF once the input stream ends.
//
// The read goroutine cannot be interrupted. If ctx is done first it stays blocked
// until the next line or process exit.
func readUserInput(
	ctx context.Context,
	reader *bufio.Reader,
	inputChan chan inputResult,
	writer io.Writer,
) (string, error) {
	_, _ = fmt.Fprint(writer, "You: ")

	go func() {
		input, readErr := reader.ReadString('\n')
		inputChan <- inputResult{input: input, err: readErr}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("input cancelled: %w", ctx.Err())
	case result := <-inputChan:
		input := strings.TrimSpace(result.input)

		switch {
		case result.err == nil:
			return input, nil
		case errors.Is(result.err, io.EOF) && input != "":
			// Last line without a trailing newline.
			return input, nil
		case errors.Is(result.err, io.EOF):
			return "", io.EOF
		default:
			return "", fmt.Errorf("failed to read input: %w", result.err)
		}
	}
}

func writeReply(writer io.Writer, reply string) {
	_, _ = fmt.Fprintf(writer, "\nAssistant: %s\n\n", reply)
}

func isExitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	default:
		return false
	}
}
