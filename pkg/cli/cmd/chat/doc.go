// Package chat implements the conversational commands.
//
// `kubeassist chat` starts the interactive terminal UI, or a line prompt when the
// terminal UI is unavailable. `kubeassist ask` sends a single query, and
// `kubeassist history` prints the conversation stored by the backend.
package chat
