// Package domain contains the core domain types for the content generator.
package domain

// GenerateRequest is the input to the batch content generator.
type GenerateRequest struct {
	Topics     []string `json:"topics"`
	Categories []string `json:"categories"`
}

// Article is the generated content for a single (topic, category) pair.
// It is produced by the generator and consumed immediately by the persister.
type Article struct {
	Content         string
	MetaDescription string
	CategoryName    string
}

// GeneratedPage records one successfully generated and stored page.
type GeneratedPage struct {
	Topic      string `json:"topic"`
	Category   string `json:"category"`
	OutputPath string `json:"output_path"`
	CreatedAt  string `json:"created_at"`
}

// Failure records one (topic, category) pair that could not be processed.
type Failure struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

// BatchOutcome is the response payload for a processed batch.
type BatchOutcome struct {
	Success        bool            `json:"success"`
	Generated      []GeneratedPage `json:"generated"`
	Failed         []Failure       `json:"failed"`
	TotalGenerated int             `json:"total_generated"`
	Message        string          `json:"message"`
}

// ErrorResponse is the payload for validation and method errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
