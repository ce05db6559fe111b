package statement

import (
	"context"
	"fmt"

	"github.com/finsight/decoder/internal/llm"
)

// DefaultMaxPromptBytes bounds the serialized table sent to the model.
// Oversized documents are rejected before the call rather than truncated,
// so the serialization contract (all rows, all columns) always holds.
const DefaultMaxPromptBytes = 256 << 10

// Limits bounds what the generator is willing to send to the external model.
type Limits struct {
	MaxPromptBytes int
}

// FailureMarker prefixes every failure rendered as plain text, so callers
// that only see strings can branch on success vs failure.
const FailureMarker = "ERROR:"

// FailureKind classifies a failure for callers that map results onto
// transport status codes.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureInput covers problems detected locally (empty table, unknown
	// document kind, oversized document). The external service is never
	// called for these.
	FailureInput
	// FailureExternal covers errors from the model call itself.
	FailureExternal
)

// Result is the outcome of one summarization: a narrative summary, or a
// human-readable failure tagged with its kind. Failures are values, never
// errors or panics escaping the generator.
type Result struct {
	Summary string      `json:"summary,omitempty"`
	Failure string      `json:"failure,omitempty"`
	Cause   FailureKind `json:"-"`
}

// Failed reports whether the summarization produced a failure.
func (r Result) Failed() bool { return r.Failure != "" }

// String renders the result for string-only consumers. Failures carry the
// FailureMarker prefix.
func (r Result) String() string {
	if r.Failed() {
		return FailureMarker + " " + r.Failure
	}
	return r.Summary
}

func inputFailure(format string, args ...any) Result {
	return Result{Failure: fmt.Sprintf(format, args...), Cause: FailureInput}
}

func externalFailure(format string, args ...any) Result {
	return Result{Failure: fmt.Sprintf(format, args...), Cause: FailureExternal}
}

// Summarizer turns a table plus a document kind into a narrative summary via
// a single call to the external model. It holds no mutable state, so any
// number of goroutines may share one instance.
type Summarizer struct {
	llm      llm.Client
	registry *Registry
	limits   Limits
}

func NewSummarizer(client llm.Client, registry *Registry, limits Limits) *Summarizer {
	if limits.MaxPromptBytes <= 0 {
		limits.MaxPromptBytes = DefaultMaxPromptBytes
	}
	return &Summarizer{llm: client, registry: registry, limits: limits}
}

// Summarize validates the input, resolves the template, serializes the table
// and makes exactly one model call. Invalid input never reaches the external
// service, and every failure, local or remote, comes back as a descriptive
// Result. No retries, no caching: each invocation is independent.
func (s *Summarizer) Summarize(ctx context.Context, table *Table, kind Kind) Result {
	if table.Empty() {
		return inputFailure("no data available to analyze")
	}

	tmpl, ok := s.registry.Get(kind)
	if !ok {
		return inputFailure("unknown document type: %s", kind)
	}

	data := table.Text()
	if len(data) > s.limits.MaxPromptBytes {
		return inputFailure("document too large to summarize: serialized table is %d bytes, limit is %d", len(data), s.limits.MaxPromptBytes)
	}

	text, err := s.llm.Generate(ctx, tmpl.Render(data))
	if err != nil {
		return externalFailure("error generating summary: %v", err)
	}
	return Result{Summary: text}
}
