package models

// WordCount is a single entry of a ranked result.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Analysis is the full outcome of one engine invocation.
type Analysis struct {
	TopWords       []WordCount `json:"top_words"`
	TotalTokens    int         `json:"total_tokens"`
	DistinctTokens int         `json:"distinct_tokens"`
	Language       string      `json:"language,omitempty"`
	FailedURLs     []string    `json:"failed_urls,omitempty"`
}

// ErrorInfo is the structured error body returned by the HTTP API.
type ErrorInfo struct {
	Type    string `json:"error_type"`
	Message string `json:"message"`
}
