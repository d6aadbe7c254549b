// Package svc provides the service layer between the commands and the backend client.
//
// Subpackages:
//   - conversation: message ordering, request sequencing, and the history preview
//   - inspector: resource kinds and their fetchers
//   - metrics: metric kinds, series grouping, and the polling loop
package svc
