// Package domain provides domain models used across the application.
package domain

// NotAvailable is the sentinel value for an unresolved field.
const NotAvailable = "N/A"

// Confidence scores for resolved and unresolved fields.
const (
	// ConfidenceResolved is assigned when a field resolved to a real value.
	ConfidenceResolved = 0.9
	// ConfidenceUnresolved is assigned when a field is the N/A sentinel.
	ConfidenceUnresolved = 0.5
)

// Field names used as confidence map keys.
const (
	FieldCompanyName = "company_name"
	FieldContactName = "contact_name"
	FieldEmail       = "email"
)

// Record holds the contact details extracted for one input URL.
type Record struct {
	// URL is the page the record was extracted from.
	URL string `json:"url" mapstructure:"url"`
	// CompanyName is the extracted company name, or N/A.
	CompanyName string `json:"company_name" mapstructure:"company_name"`
	// ContactName is the extracted contact person, or N/A.
	ContactName string `json:"contact_name" mapstructure:"contact_name"`
	// Email is the extracted email address, or N/A.
	Email string `json:"email" mapstructure:"email"`
	// Confidence maps each field name to its score.
	// Always contains exactly the three field keys.
	Confidence map[string]float64 `json:"confidence" mapstructure:"confidence"`
}

// NewRecord creates a record for the given URL, scoring each field.
func NewRecord(url, companyName, contactName, email string) *Record {
	return &Record{
		URL:         url,
		CompanyName: companyName,
		ContactName: contactName,
		Email:       email,
		Confidence: map[string]float64{
			FieldCompanyName: scoreField(companyName),
			FieldContactName: scoreField(contactName),
			FieldEmail:       scoreField(email),
		},
	}
}

// scoreField returns the confidence score for a field value.
func scoreField(value string) float64 {
	if value == NotAvailable {
		return ConfidenceUnresolved
	}
	return ConfidenceResolved
}

// Complete reports whether every field resolved to a non-sentinel value.
func (r *Record) Complete() bool {
	return r.CompanyName != NotAvailable &&
		r.ContactName != NotAvailable &&
		r.Email != NotAvailable
}

// AverageConfidence returns the mean of the field confidence scores.
func (r *Record) AverageConfidence() float64 {
	if len(r.Confidence) == 0 {
		return 0
	}

	var sum float64
	for _, score := range r.Confidence {
		sum += score
	}
	return sum / float64(len(r.Confidence))
}
