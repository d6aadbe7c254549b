// Package conversation holds the chat state: role-tagged messages stored newest first,
// the loading flag, and the ticket that ties an outstanding request to its reply.
//
// A Conversation is owned by a single goroutine (the terminal UI event loop or the
// line-based CLI loop) and is not safe for concurrent use.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Role identifies who wrote a message.
type Role string

const (
	// RoleUser marks messages typed by the user.
	RoleUser Role = "user"
	// RoleAssistant marks replies from the backend.
	RoleAssistant Role = "assistant"
)

// DefaultGreeting seeds every new conversation.
const DefaultGreeting = "Hello! How can I help you with Kubernetes today?"

// ErrEmptyQuery is returned by Begin for blank input.
var ErrEmptyQuery = errors.New("query must not be empty")

// ErrBusy is returned by Begin while another request is outstanding.
var ErrBusy = errors.New("a request is already in progress")

// ErrStopped is returned by Send when the request was stopped before its reply arrived.
var ErrStopped = errors.New("request stopped")

// Message is a single chat entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Asker answers a query. The backend client satisfies it.
type Asker interface {
	Ask(ctx context.Context, query string) (string, error)
}

// AskerFunc adapts a function to Asker.
type AskerFunc func(ctx context.Context, query string) (string, error)

// Ask implements Asker.
func (f AskerFunc) Ask(ctx context.Context, query string) (string, error) {
	return f(ctx, query)
}

// Pending identifies an outstanding request.
type Pending struct {
	Seq   uint64
	Query string
}

// Conversation is the ordered message list, newest first.
type Conversation struct {
	messages []Message
	loading  bool
	seq      uint64
	pending  uint64
}

// New creates a conversation seeded with an assistant greeting.
// An empty greeting starts with no messages.
func New(greeting string) *Conversation {
	conv := &Conversation{}
	if greeting != "" {
		conv.messages = []Message{{Role: RoleAssistant, Content: greeting}}
	}

	return conv
}

// Messages returns a copy of the messages, newest first.
func (c *Conversation) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Loading reports whether a request is outstanding.
func (c *Conversation) Loading() bool {
	return c.loading
}

// Begin records the user's message and marks the conversation as loading.
func (c *Conversation) Begin(text string) (Pending, error) {
	query := strings.TrimSpace(text)
	if query == "" {
		return Pending{}, ErrEmptyQuery
	}

	if c.loading {
		return Pending{}, ErrBusy
	}

	c.seq++
	c.pending = c.seq
	c.loading = true
	c.prepend(Message{Role: RoleUser, Content: query})

	return Pending{Seq: c.seq, Query: query}, nil
}

// Resolve records the reply for seq. It returns false and changes nothing when seq
// was stopped or superseded.
func (c *Conversation) Resolve(seq uint64, reply string) bool {
	if !c.current(seq) {
		return false
	}

	c.prepend(Message{Role: RoleAssistant, Content: reply})
	c.finish()

	return true
}

// Fail ends the request for seq without a reply. It returns false when seq is stale.
func (c *Conversation) Fail(seq uint64) bool {
	if !c.current(seq) {
		return false
	}

	c.finish()

	return true
}

// Stop abandons the outstanding request. Its reply will be ignored if it arrives.
func (c *Conversation) Stop() bool {
	if !c.loading {
		return false
	}

	c.finish()

	return true
}

// Send runs Begin, asks, and resolves or fails in one call.
func (c *Conversation) Send(ctx context.Context, asker Asker, text string) (string, error) {
	pending, err := c.Begin(text)
	if err != nil {
		return "", err
	}

	reply, err := asker.Ask(ctx, pending.Query)
	if err != nil {
		c.Fail(pending.Seq)

		return "", fmt.Errorf("ask: %w", err)
	}

	if !c.Resolve(pending.Seq, reply) {
		return "", ErrStopped
	}

	return reply, nil
}

// LatestReply returns the newest assistant message.
func (c *Conversation) LatestReply() (string, bool) {
	for _, msg := range c.messages {
		if msg.Role == RoleAssistant {
			return msg.Content, true
		}
	}

	return "", false
}

// Previews returns one preview per message, in list order.
func (c *Conversation) Previews() []string {
	previews := make([]string, 0, len(c.messages))
	for _, msg := range c.messages {
		previews = append(previews, Preview(msg.Content))
	}

	return previews
}

// Select replaces the whole conversation with the message at index i.
// It cannot be undone. An out-of-range index changes nothing and returns false.
func (c *Conversation) Select(i int) bool {
	if i < 0 || i >= len(c.messages) {
		return false
	}

	c.messages = []Message{c.messages[i]}

	return true
}

func (c *Conversation) current(seq uint64) bool {
	return c.loading && seq == c.pending
}

func (c *Conversation) finish() {
	c.loading = false
	c.pending = 0
}

func (c *Conversation) prepend(msg Message) {
	c.messages = append([]Message{msg}, c.messages...)
}
