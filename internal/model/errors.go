package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is returned when a solving backend stops without deciding
// the problem either way (internal/extsolver returns it when gini reports
// neither SAT nor UNSAT). The internal DPLL search never returns it: an
// emptied decision stack yields a NotSatisfiable.
var ErrIncomplete = errors.New("solver: search ended without a verdict")

// ErrAllocation marks a fatal allocation failure: construction of the
// problem could not complete.
var ErrAllocation = errors.New("solver: failed to allocate problem state")

// ErrInternal marks an internal inconsistency, e.g. model projection
// finding two REMOTE candidates of one chain both selected for install.
type ErrInternal struct {
	UID UID
	Msg string
}

func (e *ErrInternal) Error() string {
	return fmt.Sprintf("solver: internal inconsistency for %s: %s", e.UID, e.Msg)
}

// ConflictParticipant names one Candidate in a top-level conflict report,
// together with whether the clause wanted it installed or not. Renders as
// "local name(want keep|remove)" or "remote name(want install|ignore)".
type ConflictParticipant struct {
	Candidate *Candidate
	Wanted    bool
}

func (p ConflictParticipant) String() string {
	verbs := map[bool]string{true: "install", false: "ignore"}
	if p.Candidate.Origin == Installed {
		verbs = map[bool]string{true: "keep", false: "remove"}
	}
	return fmt.Sprintf("%s %s(want %s)", p.Candidate.Origin, p.Candidate.UID, verbs[p.Wanted])
}

// NotSatisfiable is returned when propagation (at top level, before any
// guess, or after exhausting the search) finds the problem has no model.
// It names every Candidate participating in the conflicting clause.
type NotSatisfiable struct {
	Participants []ConflictParticipant
	// Decisions is the number of decisions taken before giving up, set
	// only when the conflict was discovered during search rather than at
	// top-level propagation.
	Decisions int
}

func (e *NotSatisfiable) Error() string {
	if len(e.Participants) == 0 {
		return "solver: constraints not satisfiable"
	}
	parts := make([]string, len(e.Participants))
	for i, p := range e.Participants {
		parts[i] = p.String()
	}
	msg := fmt.Sprintf("solver: constraints not satisfiable:\n%s", strings.Join(parts, "\n"))
	if e.Decisions > 0 {
		msg = fmt.Sprintf("%s\n(after %d decisions)", msg, e.Decisions)
	}
	return msg
}
