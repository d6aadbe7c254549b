// Package logging builds the logrus logger shared by the CLI and the terminal UI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

const logFilePermissions = 0o600

// Logger is a logrus logger that owns its output file, if any.
type Logger struct {
	*logrus.Logger

	file *os.File
}

// New creates a logger at the given level. When file is set, output is appended to it;
// otherwise it goes to fallback.
func New(level, file string, fallback io.Writer) (*Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := &Logger{Logger: logrus.New()}
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    file != "",
		FullTimestamp:    true,
		DisableTimestamp: false,
	})

	if file == "" {
		logger.SetOutput(fallback)

		return logger, nil
	}

	handle, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger.file = handle
	logger.SetOutput(handle)

	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	logger := &Logger{Logger: logrus.New()}
	logger.SetOutput(io.Discard)

	return logger
}

// Redirect points the logger at w unless it already writes to a file.
// The terminal UI uses it to keep log lines off the screen it draws.
func (l *Logger) Redirect(w io.Writer) {
	if l.file != nil {
		return
	}

	l.SetOutput(w)
}

// Shutdown closes the log file. It is called by the dependency injector on teardown.
func (l *Logger) Shutdown() error {
	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil

	if err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("close log file: %w", err)
	}

	return nil
}
