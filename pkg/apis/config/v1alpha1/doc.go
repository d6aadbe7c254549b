// Package v1alpha1 defines the kubeassist client configuration API types and their defaults.
package v1alpha1
