package domain

// LinkCandidate is an anchor discovered on a page.
// Relevance is carried for future ranking; navigation currently
// takes the first keyword match in document order.
type LinkCandidate struct {
	// URL is the resolved absolute anchor target.
	URL string `json:"url"`
	// Text is the anchor's visible text.
	Text string `json:"text"`
	// Relevance is a keyword-based relevance indicator.
	Relevance int `json:"relevance"`
}
