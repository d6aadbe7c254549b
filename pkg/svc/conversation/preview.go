package conversation

import "strings"

// Preview shortens text to its first words: five when there are at least five,
// all four when there are exactly four, otherwise up to three.
func Preview(text string) string {
	words := strings.Fields(text)

	limit := 3

	switch {
	case len(words) >= 5:
		limit = 5
	case len(words) == 4:
		limit = 4
	}

	return strings.Join(words[:min(limit, len(words))], " ")
}
