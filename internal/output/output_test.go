package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/output"
)

func TestWriteJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	records := []*domain.Record{
		domain.NewRecord("https://a.de", "Beispiel GmbH", "Herr Max Weber", "max@beispiel.de"),
		domain.NewRecord("https://b.de", domain.NotAvailable, domain.NotAvailable, domain.NotAvailable),
	}

	require.NoError(t, output.WriteJSON(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []*domain.Record
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "https://a.de", decoded[0].URL)
	assert.Equal(t, domain.ConfidenceResolved, decoded[0].Confidence[domain.FieldEmail])
	assert.Equal(t, domain.NotAvailable, decoded[1].CompanyName)
}

func TestWriteJSON_PreservesNonASCII(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	records := []*domain.Record{
		domain.NewRecord("https://a.de", "Kanzlei Müller & Söhne", domain.NotAvailable, domain.NotAvailable),
	}

	require.NoError(t, output.WriteJSON(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Output keeps umlauts literal; the ASCII folding during extraction
	// is internal only, and HTML escaping is disabled on the encoder.
	assert.Contains(t, string(data), "Müller & Söhne")
	assert.NotContains(t, string(data), "\\u00fc")
	assert.NotContains(t, string(data), "\\u0026")
}

func TestWriteJSON_EmptyRecords(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, output.WriteJSON(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestPrintSummary_TopThreeOnly(t *testing.T) {
	t.Parallel()

	records := []*domain.Record{
		domain.NewRecord("https://a.de", "A GmbH", "Herr A Weber", "a@a.de"),
		domain.NewRecord("https://b.de", "B GmbH", domain.NotAvailable, "b@b.de"),
		domain.NewRecord("https://c.de", "C GmbH", domain.NotAvailable, domain.NotAvailable),
		domain.NewRecord("https://d.de", domain.NotAvailable, domain.NotAvailable, domain.NotAvailable),
	}

	var buf bytes.Buffer
	output.PrintSummary(&buf, records)

	out := buf.String()
	assert.Contains(t, out, "Total processed URLs: 4")
	assert.Contains(t, out, "https://a.de")
	assert.Contains(t, out, "https://c.de")
	assert.NotContains(t, out, "https://d.de")

	// Average confidence formatted to two decimals.
	assert.Contains(t, out, "0.90")
	assert.Contains(t, out, "0.77")
}

func TestPrintSummary_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	output.PrintSummary(&buf, nil)

	assert.Contains(t, buf.String(), "Total processed URLs: 0")
}
