package solver

import "github.com/pkgkit/pkgsolve/internal/model"

// ActionKind names the effect an Action has on the system.
type ActionKind = model.ActionKind

const (
	ActionInstall = model.ActionInstall
	ActionUpgrade = model.ActionUpgrade
	ActionDelete  = model.ActionDelete
	ActionFetch   = model.ActionFetch
)

// Action is one entry of the downstream contract handed to the job
// executor: a single instruction. UPGRADE carries both Candidate (the
// one to add) and From (the one it replaces); all others carry only
// Candidate.
type Action = model.Action
