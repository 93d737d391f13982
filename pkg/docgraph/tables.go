package docgraph

import (
	"strings"
)

// Tables renders every table in the response as a markdown table, in
// encounter order. Tables without any resolvable cells produce no entry.
func (g *Graph) Tables() []string {
	var tables []string

	for _, b := range g.blocks {
		table, ok := b.(Table)

		if !ok {
			continue
		}

		if rendered, ok := g.renderTable(table); ok {
			tables = append(tables, rendered)
		}
	}

	return tables
}

func (g *Graph) renderTable(table Table) (string, bool) {
	var cells []Cell

	for _, id := range table.Children {
		b, ok := g.lookup(id)

		if !ok {
			continue
		}

		// Coordinates are 1-based; cells without them cannot be placed.
		if cell, ok := b.(Cell); ok && cell.Row >= 1 && cell.Column >= 1 {
			cells = append(cells, cell)
		}
	}

	if len(cells) == 0 {
		return "", false
	}

	var rows, cols int

	for _, cell := range cells {
		rows = max(rows, cell.Row)
		cols = max(cols, cell.Column)
	}

	// Coordinates are 1-based. Positions not covered by any cell stay empty;
	// a sparse grid is a valid analysis result, not an error.
	grid := make([][]string, rows)

	for i := range grid {
		grid[i] = make([]string, cols)
	}

	for _, cell := range cells {
		grid[cell.Row-1][cell.Column-1] = g.text(cell)
	}

	var sb strings.Builder

	for i, row := range grid {
		sb.WriteString("| " + strings.Join(row, " | ") + " |")

		if i == 0 {
			separator := make([]string, cols)

			for j := range separator {
				separator[j] = "---"
			}

			sb.WriteString("\n| " + strings.Join(separator, " | ") + " |")
		}

		if i < len(grid)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String(), true
}
