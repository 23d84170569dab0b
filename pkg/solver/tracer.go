package solver

import "github.com/pkgkit/pkgsolve/internal/model"

// SearchPosition describes the state of a failed decision frame, for
// tracing. Decisions names the Candidates resolved to reach this point
// and Conflict names the participants of the clause that failed.
type SearchPosition = model.SearchPosition

// Tracer is notified once per failed decision frame during DPLL search,
// and once for the top-level conflict report. It mirrors deppy's own
// Tracer/DefaultTracer/LoggingTracer shape: the solver never reaches for
// a third-party logging library itself.
type Tracer = model.Tracer

// DefaultTracer discards every trace event.
type DefaultTracer = model.DefaultTracer

// LoggingTracer writes a human-readable report of each traced position to
// Writer.
type LoggingTracer = model.LoggingTracer
