package ai

// SourceReference is one web citation attached to a grounded answer.
type SourceReference struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// SearchResult is the answer to one health-advice query.
type SearchResult struct {
	Text    string            `json:"text"`
	Sources []SourceReference `json:"sources"`
}
