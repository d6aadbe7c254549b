// Package backend is the HTTP client for the kubeassist assistant backend.
//
// The backend answers natural-language questions, proxies read-only Kubernetes
// resource listings, serves Prometheus time series, and applies uploaded manifests.
// Requests are plain JSON over HTTP and are never retried.
package backend
