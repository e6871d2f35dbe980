// Package pipeline runs the two-stage extraction per URL and the
// concurrent orchestration over all input URLs.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/extract"
	"github.com/jonesrussell/goimpressum/internal/logger"
	"github.com/jonesrussell/goimpressum/internal/navigate"
	"github.com/jonesrussell/goimpressum/internal/normalize"
	"github.com/jonesrussell/goimpressum/internal/page"
)

// ErrPageUnavailable signals that the landing page could not be fetched
// after all retries. The URL contributes no record; this is degradation,
// not a task failure.
var ErrPageUnavailable = errors.New("page unavailable after retries")

// PageFetcher retrieves a page body, reporting ok=false after exhausted
// retries. Implementations must be safe for concurrent use.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (body string, ok bool)
}

// FallbackPolicy decides whether an impressum-derived record stands or
// the landing-page extraction replaces it.
type FallbackPolicy interface {
	UseImpressum(record *domain.Record) bool
}

// AllOrNothingPolicy keeps the impressum record only when every field
// resolved. A single unresolved field discards the whole impressum
// record in favor of the landing-page extraction; there is no
// field-wise merge.
type AllOrNothingPolicy struct{}

// UseImpressum reports whether the impressum record is complete.
func (AllOrNothingPolicy) UseImpressum(record *domain.Record) bool {
	return record.Complete()
}

// RecordBuilder applies the two-stage extraction policy for one URL:
// discover and extract from the impressum page, falling back to the
// landing page per the configured policy.
type RecordBuilder struct {
	fetcher   PageFetcher
	extractor *extract.Extractor
	policy    FallbackPolicy
	log       logger.Interface
}

// NewRecordBuilder creates a record builder with the all-or-nothing
// fallback policy.
func NewRecordBuilder(fetcher PageFetcher, extractor *extract.Extractor, log logger.Interface) *RecordBuilder {
	return &RecordBuilder{
		fetcher:   fetcher,
		extractor: extractor,
		policy:    AllOrNothingPolicy{},
		log:       log,
	}
}

// WithPolicy returns a copy of the builder using the given fallback
// policy.
func (b *RecordBuilder) WithPolicy(policy FallbackPolicy) *RecordBuilder {
	copied := *b
	copied.policy = policy
	return &copied
}

// Build produces the extraction record for one input URL.
// Returns ErrPageUnavailable when the landing page cannot be fetched;
// any other error is an unexpected task failure for the orchestrator
// to log and drop.
func (b *RecordBuilder) Build(ctx context.Context, pageURL string) (*domain.Record, error) {
	body, ok := b.fetcher.Fetch(ctx, pageURL)
	if !ok {
		return nil, ErrPageUnavailable
	}

	landing, err := page.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse landing page %s: %w", pageURL, err)
	}

	if impressumURL, found := navigate.FindImpressum(landing, pageURL); found {
		if record := b.tryImpressum(ctx, impressumURL); record != nil {
			return record, nil
		}
	}

	// Fallback: extract from the landing page itself.
	return b.extractRecord(pageURL, landing), nil
}

// tryImpressum fetches and extracts from the impressum page, returning
// nil whenever the fallback path should run instead.
func (b *RecordBuilder) tryImpressum(ctx context.Context, impressumURL string) *domain.Record {
	body, ok := b.fetcher.Fetch(ctx, impressumURL)
	if !ok {
		return nil
	}

	parsed, err := page.Parse(body)
	if err != nil {
		b.log.Warn("impressum page unparseable, falling back",
			"url", impressumURL,
			"error", err.Error(),
		)
		return nil
	}

	record := b.extractRecord(impressumURL, parsed)
	if !b.policy.UseImpressum(record) {
		b.log.Debug("impressum record incomplete, falling back to landing page",
			"url", impressumURL,
		)
		return nil
	}

	return record
}

// extractRecord runs entity extraction over the page's normalized text.
func (b *RecordBuilder) extractRecord(pageURL string, p *page.Page) *domain.Record {
	text := normalize.Normalize(p.Text())
	fields := b.extractor.Extract(text)

	return domain.NewRecord(pageURL, fields.CompanyName, fields.ContactName, fields.Email)
}
