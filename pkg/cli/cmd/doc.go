// Package cmd provides the command-line interface for kubeassist.
//
// This package contains the root command, ping and config, and delegates to
// subcommand packages:
//   - chat: the interactive chat, one-shot queries and stored history
//   - resource: resource listings, metric series and manifest upload
package cmd
