// Package configmanager loads the kubeassist configuration from defaults, kubeassist.yaml,
// KUBEASSIST_* environment variables, and command-line flags, in that order of precedence.
package configmanager
