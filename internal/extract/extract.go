// Package extract combines recognition-model spans with pattern matches
// into the three record fields.
package extract

import (
	"github.com/jonesrussell/goimpressum/internal/domain"
	"github.com/jonesrussell/goimpressum/internal/patterns"
	"github.com/jonesrussell/goimpressum/internal/recognize"
)

// Fields holds the extracted field values; unresolved fields carry the
// N/A sentinel.
type Fields struct {
	CompanyName string
	ContactName string
	Email       string
}

// Extractor resolves record fields from normalized page text. The
// recognizer handle is shared read-only across concurrent extractions.
type Extractor struct {
	recognizer recognize.Recognizer
	patterns   *patterns.Library
}

// New creates an extractor over the given recognition model.
func New(recognizer recognize.Recognizer) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		patterns:   patterns.NewLibrary(),
	}
}

// Extract resolves the three fields from normalized text. Per field,
// model-derived matches come before pattern-derived matches and the
// first candidate wins; an empty candidate list resolves to N/A.
// Email is pattern-only: the model is not consulted.
func (e *Extractor) Extract(normalizedText string) Fields {
	spans := e.recognizer.Recognize(normalizedText)

	company := firstOf(
		recognize.SpansByLabel(spans, recognize.LabelOrganization),
		e.patterns.Organizations(normalizedText),
	)
	contact := firstOf(
		recognize.SpansByLabel(spans, recognize.LabelPerson),
		e.patterns.Persons(normalizedText),
	)
	email := firstOf(nil, e.patterns.Emails(normalizedText))

	return Fields{
		CompanyName: company,
		ContactName: contact,
		Email:       email,
	}
}

// firstOf returns the first element of the concatenated candidate
// sequences, or the N/A sentinel when both are empty.
func firstOf(modelMatches, patternMatches []string) string {
	if len(modelMatches) > 0 {
		return modelMatches[0]
	}
	if len(patternMatches) > 0 {
		return patternMatches[0]
	}
	return domain.NotAvailable
}
