// Package client provides clients for the systems kubeassist talks to.
//
//   - backend: HTTP client for the assistant backend
//   - netretry: retry with exponential backoff for transient network failures
package client
