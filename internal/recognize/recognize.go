// Package recognize provides the entity-recognition collaborator: a
// trainable, versioned phrase model that labels organization, person,
// and email spans in normalized page text.
package recognize

// Label classifies a recognized span.
type Label string

// Span labels produced by the recognizer.
const (
	LabelOrganization Label = "ORG"
	LabelPerson       Label = "PER"
	LabelEmail        Label = "EMAIL"
)

// Span is a labeled substring found in the input text.
type Span struct {
	// Text is the matched substring.
	Text string `json:"text"`
	// Label classifies the span.
	Label Label `json:"label"`
	// Start is the byte offset of the span in the input.
	Start int `json:"start"`
}

// Recognizer labels entity spans in text.
// Implementations must be safe for concurrent use.
type Recognizer interface {
	Recognize(text string) []Span
}

// Entity is one labeled span within a training example.
type Entity struct {
	Start int   `json:"start"`
	End   int   `json:"end"`
	Label Label `json:"label"`
}

// Example is one labeled training example.
type Example struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
}
