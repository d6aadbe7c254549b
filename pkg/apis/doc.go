// Package apis provides the versioned configuration types of kubeassist.
//
// The types follow Kubernetes API conventions so that kubeassist.yaml carries
// an apiVersion and kind like any other manifest.
package apis
