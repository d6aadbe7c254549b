// Package cli holds the command line surface of kubeassist.
//
//   - cli/cmd: cobra commands
//   - cli/ui: terminal helpers, the chat TUI, charts, and error handling
package cli
