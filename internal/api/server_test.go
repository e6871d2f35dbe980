package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goimpressum/internal/api"
	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/logger"
)

// fakeRunner records the call and returns canned records.
type fakeRunner struct {
	gotURLs    []string
	gotWorkers int
	records    []*domain.Record
}

func (r *fakeRunner) Run(ctx context.Context, urls []string, maxWorkers int) []*domain.Record {
	r.gotURLs = urls
	r.gotWorkers = maxWorkers
	return r.records
}

func newTestServer(runner api.Runner) *api.Server {
	return api.NewServer(runner, 4, logger.NewNoOp())
}

func TestHealth(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeRunner{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestExtract(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{records: []*domain.Record{
		domain.NewRecord("https://a.de", "Beispiel GmbH", "Herr Max Weber", "max@beispiel.de"),
		domain.NewRecord("https://b.de", domain.NotAvailable, domain.NotAvailable, domain.NotAvailable),
	}}
	server := newTestServer(runner)

	body := `{"urls":["https://a.de","https://b.de"]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"https://a.de", "https://b.de"}, runner.gotURLs)
	assert.Equal(t, 4, runner.gotWorkers)

	var resp struct {
		Total   int              `json:"total"`
		Records []*domain.Record `json:"records"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "Beispiel GmbH", resp.Records[0].CompanyName)
}

func TestExtract_NoRecords(t *testing.T) {
	t.Parallel()

	server := newTestServer(&fakeRunner{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract",
		strings.NewReader(`{"urls":["https://down.de"]}`))
	req.Header.Set("Content-Type", "application/json")
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Empty result is an empty array, never null.
	assert.JSONEq(t, `{"total":0,"records":[]}`, rec.Body.String())
}

func TestExtract_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"urls":`},
		{name: "missing urls", body: `{}`},
		{name: "empty urls", body: `{"urls":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(&fakeRunner{})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
