package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/logger"
	"github.com/jonesrussell/goimpressum/internal/pipeline"
)

// scriptedBuilder returns per-URL canned results.
type scriptedBuilder struct {
	mu      sync.Mutex
	records map[string]*domain.Record
	errs    map[string]error
	panics  map[string]bool

	active  atomic.Int32
	maxSeen atomic.Int32
}

func (b *scriptedBuilder) Build(ctx context.Context, pageURL string) (*domain.Record, error) {
	current := b.active.Add(1)
	defer b.active.Add(-1)

	// Track the highest observed concurrency.
	for {
		seen := b.maxSeen.Load()
		if current <= seen || b.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}

	if b.panics[pageURL] {
		panic("scripted panic for " + pageURL)
	}
	if err := b.errs[pageURL]; err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.records[pageURL], nil
}

func record(url, company, contact, email string) *domain.Record {
	return domain.NewRecord(url, company, contact, email)
}

func TestRun_RanksByDescendingMeanConfidence(t *testing.T) {
	t.Parallel()

	builder := &scriptedBuilder{records: map[string]*domain.Record{
		"https://a.de": record("https://a.de", domain.NotAvailable, domain.NotAvailable, domain.NotAvailable),
		"https://b.de": record("https://b.de", "Beispiel GmbH", "Herr Max Weber", "max@beispiel.de"),
		"https://c.de": record("https://c.de", "Muster AG", domain.NotAvailable, "info@muster.de"),
	}}
	orchestrator := pipeline.NewOrchestrator(builder, logger.NewNoOp())

	records := orchestrator.Run(context.Background(), []string{"https://a.de", "https://b.de", "https://c.de"}, 2)

	require.Len(t, records, 3)
	assert.Equal(t, "https://b.de", records[0].URL)
	assert.Equal(t, "https://c.de", records[1].URL)
	assert.Equal(t, "https://a.de", records[2].URL)

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t,
			records[i-1].AverageConfidence(),
			records[i].AverageConfidence(),
		)
	}
}

func TestRun_UnavailablePageExcluded(t *testing.T) {
	t.Parallel()

	builder := &scriptedBuilder{
		records: map[string]*domain.Record{
			"https://ok.de": record("https://ok.de", "Beispiel GmbH", domain.NotAvailable, domain.NotAvailable),
		},
		errs: map[string]error{
			"https://down.de": pipeline.ErrPageUnavailable,
		},
	}
	orchestrator := pipeline.NewOrchestrator(builder, logger.NewNoOp())

	records := orchestrator.Run(context.Background(), []string{"https://down.de", "https://ok.de"}, 2)

	require.Len(t, records, 1)
	assert.Equal(t, "https://ok.de", records[0].URL)
}

func TestRun_TaskFailureDoesNotAbortSiblings(t *testing.T) {
	t.Parallel()

	builder := &scriptedBuilder{
		records: map[string]*domain.Record{
			"https://ok.de": record("https://ok.de", "Beispiel GmbH", domain.NotAvailable, domain.NotAvailable),
		},
		errs: map[string]error{
			"https://broken.de": errors.New("parse landing page: unexpected EOF"),
		},
		panics: map[string]bool{
			"https://panic.de": true,
		},
	}
	orchestrator := pipeline.NewOrchestrator(builder, logger.NewNoOp())

	records := orchestrator.Run(
		context.Background(),
		[]string{"https://broken.de", "https://panic.de", "https://ok.de"},
		3,
	)

	require.Len(t, records, 1)
	assert.Equal(t, "https://ok.de", records[0].URL)
}

func TestRun_RespectsWorkerBound(t *testing.T) {
	t.Parallel()

	records := make(map[string]*domain.Record)
	urls := make([]string, 0, 20)
	for _, u := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		url := "https://" + u + ".de"
		urls = append(urls, url)
		records[url] = record(url, "Beispiel GmbH", domain.NotAvailable, domain.NotAvailable)
	}

	builder := &scriptedBuilder{records: records}
	orchestrator := pipeline.NewOrchestrator(builder, logger.NewNoOp())

	const maxWorkers = 3
	out := orchestrator.Run(context.Background(), urls, maxWorkers)

	assert.Len(t, out, len(urls))
	assert.LessOrEqual(t, builder.maxSeen.Load(), int32(maxWorkers))
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	orchestrator := pipeline.NewOrchestrator(&scriptedBuilder{}, logger.NewNoOp())

	records := orchestrator.Run(context.Background(), nil, 4)
	assert.Empty(t, records)
}
