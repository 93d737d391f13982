package docgraph_test

import (
	"strings"
	"testing"

	"github.com/crosscheck-ai/crosscheck/pkg/docgraph"

	"github.com/stretchr/testify/require"
)

func key(id, text string, valueIDs ...string) []docgraph.Block {
	wordID := id + "-w"

	return []docgraph.Block{
		docgraph.KeyValueSet{
			ID:       id,
			Role:     docgraph.RoleKey,
			Children: []string{wordID},
			Values:   valueIDs,
		},
		docgraph.Word{ID: wordID, Text: text},
	}
}

func value(id, text string) []docgraph.Block {
	wordID := id + "-w"

	return []docgraph.Block{
		docgraph.KeyValueSet{
			ID:       id,
			Role:     docgraph.RoleValue,
			Children: []string{wordID},
		},
		docgraph.Word{ID: wordID, Text: text},
	}
}

func TestFields(t *testing.T) {
	var blocks []docgraph.Block

	blocks = append(blocks, key("k1", "Total", "v1")...)
	blocks = append(blocks, value("v1", "$500.00")...)

	blocks = append(blocks, key("k2", "Date", "v2")...)
	blocks = append(blocks, value("v2", "2024-05-01")...)

	fields := docgraph.New(blocks).Fields()

	require.Equal(t, []docgraph.Field{
		{Name: "Total", Value: "$500.00"},
		{Name: "Date", Value: "2024-05-01"},
	}, fields)
}

func TestFieldsDuplicateNames(t *testing.T) {
	var blocks []docgraph.Block

	blocks = append(blocks, key("k1", "Item", "v1")...)
	blocks = append(blocks, value("v1", "Widget")...)

	blocks = append(blocks, key("k2", "Item", "v2")...)
	blocks = append(blocks, value("v2", "Gadget")...)

	fields := docgraph.New(blocks).Fields()

	require.Len(t, fields, 2)
	require.Equal(t, "Widget", fields[0].Value)
	require.Equal(t, "Gadget", fields[1].Value)
}

func TestFieldsFirstValueWins(t *testing.T) {
	var blocks []docgraph.Block

	blocks = append(blocks, key("k1", "Total", "missing", "v1", "v2")...)
	blocks = append(blocks, value("v1", "$500.00")...)
	blocks = append(blocks, value("v2", "$999.99")...)

	fields := docgraph.New(blocks).Fields()

	require.Equal(t, []docgraph.Field{{Name: "Total", Value: "$500.00"}}, fields)
}

func TestFieldsDropped(t *testing.T) {
	tests := []struct {
		name   string
		blocks func() []docgraph.Block
	}{
		{
			name: "dangling value id",
			blocks: func() []docgraph.Block {
				return key("k1", "Total", "nope")
			},
		},
		{
			name: "value without VALUE role",
			blocks: func() []docgraph.Block {
				blocks := key("k1", "Total", "v1")
				blocks = append(blocks, key("v1", "NotAValue")...)
				return blocks
			},
		},
		{
			name: "empty key text",
			blocks: func() []docgraph.Block {
				blocks := key("k1", "", "v1")
				blocks = append(blocks, value("v1", "$500.00")...)
				return blocks
			},
		},
		{
			name: "empty value text",
			blocks: func() []docgraph.Block {
				blocks := key("k1", "Total", "v1")
				blocks = append(blocks, value("v1", "")...)
				return blocks
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := docgraph.New(tt.blocks()).Fields()
			require.Empty(t, fields)
		})
	}
}

func TestTextComposition(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.KeyValueSet{
			ID:       "k1",
			Role:     docgraph.RoleKey,
			Children: []string{"w1", "dangling", "line", "w2"},
			Values:   []string{"v1"},
		},
		docgraph.Word{ID: "w1", Text: "Invoice"},
		docgraph.Word{ID: "w2", Text: "Number"},
		docgraph.Line{ID: "line", Text: "ignored"},
	}

	blocks = append(blocks, value("v1", "INV-001")...)

	fields := docgraph.New(blocks).Fields()

	require.Equal(t, []docgraph.Field{{Name: "Invoice Number", Value: "INV-001"}}, fields)
}

func cellWithText(id string, row, col int, text string) []docgraph.Block {
	wordID := id + "-w"

	return []docgraph.Block{
		docgraph.Cell{
			ID:       id,
			Row:      row,
			Column:   col,
			Children: []string{wordID},
		},
		docgraph.Word{ID: wordID, Text: text},
	}
}

func TestTables(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Table{ID: "t1", Children: []string{"c11", "c12", "c21", "c22"}},
	}

	blocks = append(blocks, cellWithText("c11", 1, 1, "Item")...)
	blocks = append(blocks, cellWithText("c12", 1, 2, "Qty")...)
	blocks = append(blocks, cellWithText("c21", 2, 1, "Widget")...)
	blocks = append(blocks, cellWithText("c22", 2, 2, "3")...)

	tables := docgraph.New(blocks).Tables()

	require.Len(t, tables, 1)
	require.Equal(t, "| Item | Qty |\n| --- | --- |\n| Widget | 3 |", tables[0])
}

func TestTablesSparse(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Table{ID: "t1", Children: []string{"c11", "c33"}},
	}

	blocks = append(blocks, cellWithText("c11", 1, 1, "only")...)
	blocks = append(blocks, cellWithText("c33", 3, 3, "corner")...)

	tables := docgraph.New(blocks).Tables()
	require.Len(t, tables, 1)

	lines := strings.Split(tables[0], "\n")

	// 3 rows plus the separator, each with 3 columns.
	require.Len(t, lines, 4)

	for _, line := range lines {
		require.Len(t, strings.Split(line, "|"), 5)
	}

	require.Equal(t, "| only |  |  |", lines[0])
	require.Equal(t, "|  |  | corner |", lines[3])
	require.NotContains(t, tables[0], "null")
	require.NotContains(t, tables[0], "None")
}

func TestTablesIgnoresNonCells(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Table{ID: "t1", Children: []string{"line", "dangling", "c11"}},
		docgraph.Line{ID: "line", Text: "not a cell"},
	}

	blocks = append(blocks, cellWithText("c11", 1, 1, "x")...)

	tables := docgraph.New(blocks).Tables()

	require.Len(t, tables, 1)
	require.Equal(t, "| x |\n| --- |", tables[0])
}

func TestTablesWithoutCoordinates(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Table{ID: "t1", Children: []string{"c1"}},
		docgraph.Cell{ID: "c1", Text: "lost"},
	}

	g := docgraph.New(blocks)

	require.Empty(t, g.Tables())
	require.NotContains(t, g.Report("INVOICE"), "### Tables")
}

func TestTablesWithoutCells(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Table{ID: "t1", Children: []string{"dangling"}},
		docgraph.Table{ID: "t2"},
	}

	require.Empty(t, docgraph.New(blocks).Tables())
}

func TestTextContentOrder(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Line{ID: "l1", Text: "second", Top: 0.10, Left: 0.1},
		docgraph.Line{ID: "l2", Text: "first", Top: 0.05, Left: 0.1},
		docgraph.Line{ID: "l3", Text: "third", Top: 0.10, Left: 0.5},
		docgraph.Line{ID: "l4", Text: "   ", Top: 0.01},
	}

	text := docgraph.New(blocks).TextContent()

	require.Equal(t, "first\nsecond\nthird", text)
}
