package model

import (
	"fmt"
	"io"
)

// SearchPosition describes the state of a failed decision frame, for
// tracing. Decisions names the Candidates resolved to reach this point
// and Conflict names the participants of the clause that failed.
type SearchPosition interface {
	Decisions() []*Candidate
	Conflict() []ConflictParticipant
}

// Tracer is notified once per failed decision frame during DPLL search,
// and once for the top-level conflict report. It mirrors deppy's own
// Tracer/DefaultTracer/LoggingTracer shape: the solver never reaches for
// a third-party logging library itself.
type Tracer interface {
	Trace(p SearchPosition)
}

// DefaultTracer discards every trace event.
type DefaultTracer struct{}

func (DefaultTracer) Trace(SearchPosition) {}

// LoggingTracer writes a human-readable report of each traced position to
// Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p SearchPosition) {
	fmt.Fprintf(t.Writer, "---\ndecisions:\n")
	for _, c := range p.Decisions() {
		fmt.Fprintf(t.Writer, "- %s\n", c)
	}
	fmt.Fprintf(t.Writer, "conflict:\n")
	for _, part := range p.Conflict() {
		fmt.Fprintf(t.Writer, "- %s\n", part)
	}
}
