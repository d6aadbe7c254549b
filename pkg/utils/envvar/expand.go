// Package envvar expands environment variable placeholders in configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${NAME} and ${NAME:-fallback}.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces placeholders with values from the process environment.
// An unset or empty variable yields its fallback, or the empty string without one.
func Expand(value string) string {
	return ExpandFunc(value, os.LookupEnv)
}

// ExpandFunc is Expand with a custom lookup.
func ExpandFunc(value string, lookup func(string) (string, bool)) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		resolved, ok := lookup(groups[1])
		if ok && resolved != "" {
			return resolved
		}

		return groups[2]
	})
}
