// Package output serializes ranked extraction records to disk and
// renders the console summary.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/goimpressum/internal/domain"
)

// summarySize is how many top-ranked records the console summary shows.
const summarySize = 3

// WriteJSON writes the ranked records as a single UTF-8 JSON array to
// path. Non-ASCII characters are preserved as-is, not escaped; the
// ASCII folding done during extraction is internal only.
func WriteJSON(path string, records []*domain.Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if records == nil {
		records = []*domain.Record{}
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	return nil
}

// PrintSummary renders the total count and a table of the top-ranked
// records with their average confidence to two decimal places.
func PrintSummary(w io.Writer, records []*domain.Record) {
	fmt.Fprintf(w, "Total processed URLs: %d\n\n", len(records))

	top := records
	if len(top) > summarySize {
		top = top[:summarySize]
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "URL", "Company", "Contact", "Email", "Avg Confidence"})

	for i, record := range top {
		t.AppendRow(table.Row{
			i + 1,
			record.URL,
			record.CompanyName,
			record.ContactName,
			record.Email,
			fmt.Sprintf("%.2f", record.AverageConfidence()),
		})
	}

	t.Render()
}
