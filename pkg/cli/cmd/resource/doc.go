// Package resource implements the cluster inspection commands: get, metrics and apply.
package resource
