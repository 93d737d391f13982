package docgraph

import (
	"strings"
)

// Graph indexes one analysis response. It is read-only after construction;
// all extraction passes share the same index.
type Graph struct {
	blocks []Block
	index  map[string]Block
}

func New(blocks []Block) *Graph {
	index := make(map[string]Block, len(blocks))

	for _, b := range blocks {
		index[b.blockID()] = b
	}

	return &Graph{
		blocks: blocks,
		index:  index,
	}
}

// lookup resolves a referenced id. Dangling ids are a tolerated state of the
// input and resolve to (nil, false).
func (g *Graph) lookup(id string) (Block, bool) {
	b, ok := g.index[id]
	return b, ok
}

// text composes a block's full text: its own literal text followed by the
// text of its child WORD blocks, space-separated, trimmed.
func (g *Graph) text(b Block) string {
	var parts []string

	var children []string

	switch b := b.(type) {
	case Line:
		if b.Text != "" {
			parts = append(parts, b.Text)
		}

	case Word:
		if b.Text != "" {
			parts = append(parts, b.Text)
		}

	case Cell:
		if b.Text != "" {
			parts = append(parts, b.Text)
		}

		children = b.Children

	case KeyValueSet:
		children = b.Children
	}

	for _, id := range children {
		child, ok := g.lookup(id)

		if !ok {
			continue
		}

		if word, ok := child.(Word); ok && word.Text != "" {
			parts = append(parts, word.Text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
