// Package llm provides the completion-service adapter. Every prompt
// sent through it specifies the exact output grammar it expects, so
// format failures are detected by the parsers, not here.
package llm

import "context"

// GenerateRequest holds the parameters for a completion call.
type GenerateRequest struct {
	Task        TaskType
	Prompt      string
	Temperature *float64 // nil uses task default
}

// GenerateResponse holds the result of a completion call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a text-completion service. The returned
// text is best-effort and untrusted.
type Client interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether the completion backend is reachable.
	Available(ctx context.Context) bool
}
