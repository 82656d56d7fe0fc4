package interfaces

import "context"

// IndexStatus reports how far the external content index has progressed
// through the documents attached to an index.
type IndexStatus struct {
	InProgress int
	Completed  int
}

// ContentIndex exposes the completion counters of an external indexing
// service. Generation must not start until InProgress reaches zero.
type ContentIndex interface {
	Status(ctx context.Context, indexID string) (IndexStatus, error)
}

// GenerationStatusCompleted is the completion status a provider reports for
// a successful run. Anything else is treated as a failure.
const GenerationStatusCompleted = "completed"

// GenerationRequest carries the inputs for one provider call.
type GenerationRequest struct {
	Subject      string
	IndexID      string
	Instructions string
}

// GenerationResult is the provider's raw output: a completion status plus
// the generated markdown-like text.
type GenerationResult struct {
	Status string
	Text   string
}

// Succeeded reports whether the provider finished with usable content.
func (r GenerationResult) Succeeded() bool {
	return r.Status == GenerationStatusCompleted && r.Text != ""
}

// GenerationProvider is the external capability that turns a subject plus an
// index reference into generated prose.
type GenerationProvider interface {
	Generate(ctx context.Context, req GenerationRequest) (GenerationResult, error)
}
