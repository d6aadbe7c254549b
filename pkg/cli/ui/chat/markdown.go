package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

const listLevelIndent = 2

// createRenderer creates a glamour renderer with a static style.
// Auto-detected styles query the terminal, and the answers leak into the input once bubbletea owns it.
func createRenderer(width int) *glamour.TermRenderer {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(replyStyle()),
		glamour.WithWordWrap(max(width, minWrapWidth)),
	)
	if err != nil {
		return nil
	}

	return renderer
}

// replyStyle is the markdown style for assistant replies.
func replyStyle() ansi.StyleConfig { //nolint:funlen // pure struct literal definition
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			Margin: uintPtr(0),
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr("14"),
				Bold:  boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "# "},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "## "},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Prefix: "### "},
		},
		Paragraph: ansi.StyleBlock{
			Margin: uintPtr(0),
		},
		List: ansi.StyleList{
			LevelIndent: listLevelIndent,
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Enumeration: ansi.StylePrimitive{
			BlockPrefix: ". ",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr("11"),
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{
					Color: stringPtr("250"),
				},
				Margin: uintPtr(1),
			},
			Chroma: &ansi.Chroma{
				Text:          ansi.StylePrimitive{Color: stringPtr("#d0d0d0")},
				NameTag:       ansi.StylePrimitive{Color: stringPtr("#87d7ff")},
				Keyword:       ansi.StylePrimitive{Color: stringPtr("#00afff")},
				LiteralString: ansi.StylePrimitive{Color: stringPtr("#5fd75f")},
				LiteralNumber: ansi.StylePrimitive{Color: stringPtr("#d7875f")},
				Punctuation:   ansi.StylePrimitive{Color: stringPtr("#8a8a8a")},
			},
		},
		Table: ansi.StyleTable{
			CenterSeparator: stringPtr("│"),
			ColumnSeparator: stringPtr("│"),
			RowSeparator:    stringPtr("─"),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Link: ansi.StylePrimitive{
			Color:     stringPtr("6"),
			Underline: boolPtr(true),
		},
	}
}

// renderMarkdown renders content with renderer, falling back to the raw text.
func renderMarkdown(renderer *glamour.TermRenderer, content string) string {
	if renderer == nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.Trim(out, "\n")
}

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }
func uintPtr(u uint) *uint       { return &u }
