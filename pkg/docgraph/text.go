package docgraph

import (
	"slices"
	"strings"
)

// TextContent recovers reading-order body text from the LINE blocks: top to
// bottom, ties broken left to right. Lines with empty text are skipped.
func (g *Graph) TextContent() string {
	var lines []Line

	for _, b := range g.blocks {
		if line, ok := b.(Line); ok {
			lines = append(lines, line)
		}
	}

	slices.SortStableFunc(lines, func(a, b Line) int {
		if a.Top != b.Top {
			if a.Top < b.Top {
				return -1
			}

			return 1
		}

		if a.Left != b.Left {
			if a.Left < b.Left {
				return -1
			}

			return 1
		}

		return 0
	})

	var texts []string

	for _, line := range lines {
		if text := strings.TrimSpace(line.Text); text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, "\n")
}
