// Package notify writes user-facing CLI output.
//
// [WriteMessage] prints a line prefixed with a type-specific symbol and color:
// success (✔), error (✗), warning (⚠), info (ℹ), activity (►), and titles with
// a custom emoji. [ProgressGroup] runs tasks concurrently and reports their state,
// animating in a terminal and printing one line per transition otherwise.
package notify
