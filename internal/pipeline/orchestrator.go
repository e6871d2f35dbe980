package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/logger"
)

// defaultMaxWorkers bounds concurrency when the caller passes none.
const defaultMaxWorkers = 5

// Builder produces the extraction record for one input URL.
type Builder interface {
	Build(ctx context.Context, pageURL string) (*domain.Record, error)
}

// Orchestrator fans builder tasks out over a bounded worker pool and
// collects the surviving records, ranked by mean confidence.
type Orchestrator struct {
	builder Builder
	log     logger.Interface
}

// NewOrchestrator creates an orchestrator over the given builder.
func NewOrchestrator(builder Builder, log logger.Interface) *Orchestrator {
	return &Orchestrator{builder: builder, log: log}
}

// Run processes all URLs with at most maxWorkers concurrent tasks and
// returns the records sorted by descending average confidence. A failed
// or panicking task is logged with its URL and contributes nothing;
// sibling tasks are unaffected. Input order is not preserved.
func (o *Orchestrator) Run(ctx context.Context, urls []string, maxWorkers int) []*domain.Record {
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	runLog := o.log.With("run_id", uuid.NewString())
	runLog.Info("extraction run started",
		"url_count", len(urls),
		"max_workers", maxWorkers,
	)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		records []*domain.Record
	)
	sem := make(chan struct{}, maxWorkers)

	for _, pageURL := range urls {
		wg.Add(1)

		go func(pageURL string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			record := o.runTask(ctx, runLog, pageURL)
			if record == nil {
				return
			}

			mu.Lock()
			records = append(records, record)
			mu.Unlock()
		}(pageURL)
	}

	wg.Wait()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AverageConfidence() > records[j].AverageConfidence()
	})

	runLog.Info("extraction run finished", "record_count", len(records))
	return records
}

// runTask builds one record, converting every failure mode into a log
// line and a nil record so one URL can never abort its siblings.
func (o *Orchestrator) runTask(ctx context.Context, log logger.Interface, pageURL string) (record *domain.Record) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("extraction task panicked",
				"url", pageURL,
				"panic", fmt.Sprint(r),
			)
			record = nil
		}
	}()

	record, err := o.builder.Build(ctx, pageURL)
	switch {
	case errors.Is(err, ErrPageUnavailable):
		log.Warn("no data for url", "url", pageURL)
		return nil
	case err != nil:
		log.Error("extraction task failed",
			"url", pageURL,
			"error", err.Error(),
		)
		return nil
	}

	log.Info("processed",
		"url", record.URL,
		"company_name", record.CompanyName,
		"contact_name", record.ContactName,
		"email", record.Email,
		"average_confidence", record.AverageConfidence(),
	)
	return record
}
