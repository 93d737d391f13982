package docgraph

import (
	"strings"
)

// Report composes the three extraction passes into one markdown document.
// Subsections without content are omitted entirely.
func (g *Graph) Report(docType string) string {
	result := []string{
		"## " + docType + " Document Analysis\n",
	}

	if fields := g.Fields(); len(fields) > 0 {
		result = append(result, "### Key-Value Pairs (Forms)", "")

		for _, field := range fields {
			result = append(result, "**"+field.Name+":** "+field.Value)
		}

		result = append(result, "")
	}

	if tables := g.Tables(); len(tables) > 0 {
		result = append(result, "### Tables", "")

		for _, table := range tables {
			result = append(result, table, "")
		}
	}

	if text := g.TextContent(); text != "" {
		result = append(result, "### Text Content", "", text)
	}

	return strings.Join(result, "\n")
}

// CombineReports joins the invoice and purchase order reports into the final
// two-document output.
func CombineReports(invoice, po string) string {
	return "# INVOICE DOCUMENT ANALYSIS\n" + invoice +
		"\n\n---\n\n" +
		"# PURCHASE ORDER DOCUMENT ANALYSIS\n" + po
}
