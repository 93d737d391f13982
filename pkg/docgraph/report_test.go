package docgraph_test

import (
	"testing"

	"github.com/crosscheck-ai/crosscheck/pkg/docgraph"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	var blocks []docgraph.Block

	blocks = append(blocks, key("k1", "Total", "v1")...)
	blocks = append(blocks, value("v1", "$500.00")...)

	blocks = append(blocks,
		docgraph.Line{ID: "l1", Text: "Thank you", Top: 0.9, Left: 0.1},
	)

	report := docgraph.New(blocks).Report("INVOICE")

	require.Contains(t, report, "## INVOICE Document Analysis")
	require.Contains(t, report, "### Key-Value Pairs (Forms)")
	require.Contains(t, report, "**Total:** $500.00")
	require.NotContains(t, report, "### Tables")
	require.Contains(t, report, "### Text Content")
	require.Contains(t, report, "Thank you")
}

func TestReportOmitsEmptySections(t *testing.T) {
	report := docgraph.New(nil).Report("PURCHASE ORDER")

	require.Contains(t, report, "## PURCHASE ORDER Document Analysis")
	require.NotContains(t, report, "### Key-Value Pairs (Forms)")
	require.NotContains(t, report, "### Tables")
	require.NotContains(t, report, "### Text Content")
}

func TestReportNoForms(t *testing.T) {
	blocks := []docgraph.Block{
		docgraph.Line{ID: "l1", Text: "Just text", Top: 0.1, Left: 0.1},
	}

	report := docgraph.New(blocks).Report("INVOICE")

	require.NotContains(t, report, "### Key-Value Pairs (Forms)")
	require.Contains(t, report, "Just text")
}

func TestCombineReports(t *testing.T) {
	combined := docgraph.CombineReports("invoice report", "po report")

	require.Contains(t, combined, "# INVOICE DOCUMENT ANALYSIS\ninvoice report")
	require.Contains(t, combined, "\n\n---\n\n")
	require.Contains(t, combined, "# PURCHASE ORDER DOCUMENT ANALYSIS\npo report")
}
