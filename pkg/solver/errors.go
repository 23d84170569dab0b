package solver

import "github.com/pkgkit/pkgsolve/internal/model"

// ErrIncomplete is returned when a solving backend stops without deciding
// the problem either way (internal/extsolver returns it when gini reports
// neither SAT nor UNSAT). The internal DPLL search never returns it: an
// emptied decision stack yields a NotSatisfiable.
var ErrIncomplete = model.ErrIncomplete

// ErrAllocation marks a fatal allocation failure: construction of the
// problem could not complete.
var ErrAllocation = model.ErrAllocation

// ErrInternal marks an internal inconsistency, e.g. model projection
// finding two REMOTE candidates of one chain both selected for install.
type ErrInternal = model.ErrInternal

// ConflictParticipant names one Candidate in a top-level conflict report,
// together with whether the clause wanted it installed or not. Renders as
// "local name(want keep|remove)" or "remote name(want install|ignore)".
type ConflictParticipant = model.ConflictParticipant

// NotSatisfiable is returned when propagation (at top level, before any
// guess, or after exhausting the search) finds the problem has no model.
// It names every Candidate participating in the conflicting clause.
type NotSatisfiable = model.NotSatisfiable
