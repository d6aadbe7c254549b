package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	fcolor "github.com/fatih/color"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// ProgressLabels are the status words shown for each task state.
type ProgressLabels struct {
	Pending   string
	Running   string
	Completed string
}

// DefaultLabels returns generic labels.
func DefaultLabels() ProgressLabels {
	return ProgressLabels{Pending: "pending", Running: "running", Completed: "completed"}
}

// FetchingLabels returns labels for resource and metric downloads.
func FetchingLabels() ProgressLabels {
	return ProgressLabels{Pending: "pending", Running: "fetching", Completed: "fetched"}
}

// ProgressTask is a named unit of work.
type ProgressTask struct {
	Name string
	Fn   func(ctx context.Context) error
}

// ProgressGroup runs tasks concurrently and reports their progress under a title.
//
// On a terminal the task lines are redrawn in place with a spinner:
//
//	🔎 Fetching resources...
//	⠦ Pods fetching
//	✔ Nodes fetched
//	○ Services pending
//
// Elsewhere only transitions are printed:
//
//	🔎 Fetching resources...
//	► Pods fetching
//	✔ Pods fetched
type ProgressGroup struct {
	title  string
	emoji  string
	labels ProgressLabels
	writer io.Writer
	isTTY  bool

	mu         sync.Mutex
	states     map[string]taskState
	order      []string
	frame      int
	linesDrawn int
}

type taskState int

const (
	taskPending taskState = iota
	taskRunning
	taskComplete
	taskFailed
)

const spinnerTickInterval = 100 * time.Millisecond

func spinnerFrames() []string {
	return []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
}

// ProgressOption configures a ProgressGroup.
type ProgressOption func(*ProgressGroup)

// WithLabels sets the status words.
func WithLabels(labels ProgressLabels) ProgressOption {
	return func(pg *ProgressGroup) {
		pg.labels = labels
	}
}

// NewProgressGroup creates a ProgressGroup writing to writer (os.Stdout when nil).
func NewProgressGroup(title, emoji string, writer io.Writer, opts ...ProgressOption) *ProgressGroup {
	if writer == nil {
		writer = os.Stdout
	}

	if emoji == "" {
		emoji = "►"
	}

	isTTY := false
	if file, ok := writer.(*os.File); ok {
		isTTY = term.IsTerminal(int(file.Fd()))
	}

	pg := &ProgressGroup{
		title:  title,
		emoji:  emoji,
		labels: DefaultLabels(),
		writer: writer,
		isTTY:  isTTY,
		states: make(map[string]taskState),
	}

	for _, opt := range opts {
		opt(pg)
	}

	return pg
}

// Run executes the tasks concurrently. The first failure cancels the others.
func (pg *ProgressGroup) Run(ctx context.Context, tasks ...ProgressTask) error {
	if len(tasks) == 0 {
		return nil
	}

	for _, task := range tasks {
		pg.states[task.Name] = taskPending
		pg.order = append(pg.order, task.Name)
	}

	_, _ = fmt.Fprintf(pg.writer, "%s %s...\n", pg.emoji, pg.title)

	var stop func()
	if pg.isTTY {
		pg.redraw()
		stop = pg.animate()
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for _, task := range tasks {
		group.Go(func() error {
			pg.transition(task.Name, taskRunning)

			err := task.Fn(groupCtx)
			if err != nil {
				pg.transition(task.Name, taskFailed)

				return fmt.Errorf("%s: %w", task.Name, err)
			}

			pg.transition(task.Name, taskComplete)

			return nil
		})
	}

	err := group.Wait()

	if stop != nil {
		stop()
		pg.redraw()
	}

	if err != nil {
		return fmt.Errorf("parallel execution: %w", err)
	}

	return nil
}

func (pg *ProgressGroup) transition(name string, state taskState) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	pg.states[name] = state

	if pg.isTTY {
		return
	}

	switch state {
	case taskRunning:
		_, _ = fmt.Fprintf(pg.writer, "► %s %s\n", name, pg.labels.Running)
	case taskComplete:
		_, _ = fcolor.New(fcolor.FgGreen).Fprintf(pg.writer, "✔ %s %s\n", name, pg.labels.Completed)
	case taskFailed:
		_, _ = fcolor.New(fcolor.FgRed).Fprintf(pg.writer, "✗ %s failed\n", name)
	case taskPending:
	}
}

func (pg *ProgressGroup) animate() func() {
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(spinnerTickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				pg.mu.Lock()
				pg.frame = (pg.frame + 1) % len(spinnerFrames())
				pg.mu.Unlock()
				pg.redraw()
			}
		}
	}()

	return func() {
		close(stop)
		<-done
	}
}

func (pg *ProgressGroup) redraw() {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.linesDrawn > 0 {
		_, _ = fmt.Fprintf(pg.writer, "\033[%dA", pg.linesDrawn)
	}

	for _, name := range pg.order {
		_, _ = fmt.Fprint(pg.writer, "\033[K")
		_, _ = fmt.Fprintln(pg.writer, pg.line(name))
	}

	pg.linesDrawn = len(pg.order)
}

func (pg *ProgressGroup) line(name string) string {
	switch pg.states[name] {
	case taskPending:
		return fcolor.New(fcolor.FgHiBlack).Sprintf("○ %s %s", name, pg.labels.Pending)
	case taskRunning:
		return fcolor.New(fcolor.FgCyan).Sprintf("%s %s %s", spinnerFrames()[pg.frame], name, pg.labels.Running)
	case taskComplete:
		return fcolor.New(fcolor.FgGreen).Sprintf("✔ %s %s", name, pg.labels.Completed)
	case taskFailed:
		return fcolor.New(fcolor.FgRed).Sprintf("✗ %s failed", name)
	default:
		return "? " + name
	}
}
