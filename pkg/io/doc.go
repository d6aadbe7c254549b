// Package io groups input and output concerns of kubeassist.
//
// Subpackages:
//   - configmanager: loading kubeassist.yaml, environment and flag overrides, and the JSON schema
package io
