// Package solver exposes the package-management decision core: given a
// universe of candidate package versions and a set of user requests, it
// decides a coherent subset of packages that should be present once the
// transaction completes.
//
// The vocabulary types below are aliases of internal/model, so that
// internal/sat (the engine) and this package (the public API) can each
// depend on the vocabulary without depending on one another. See
// internal/model's doc comment.
package solver

import "github.com/pkgkit/pkgsolve/internal/model"

// Origin distinguishes a Candidate already present on the system from one
// only available in a repository.
type Origin = model.Origin

const (
	// Installed marks a Candidate currently present on the system.
	Installed = model.Installed
	// Remote marks a Candidate available from a repository but not yet
	// installed.
	Remote = model.Remote
)

// ConflictKind selects which members of a conflicting UID chain produce a
// clause against a given Candidate.
type ConflictKind = model.ConflictKind

const (
	// ConflictRemoteLocal fires between a local candidate and any remote
	// candidate in the conflicting chain (and vice versa).
	ConflictRemoteLocal = model.ConflictRemoteLocal
	// ConflictRemoteRemote fires only when both sides of the conflict are
	// remote candidates.
	ConflictRemoteRemote = model.ConflictRemoteRemote
)

// JobType is the kind of transaction the caller asked the solver to plan.
type JobType = model.JobType

const (
	JobInstall = model.JobInstall
	JobUpgrade = model.JobUpgrade
	JobDelete  = model.JobDelete
	JobFetch   = model.JobFetch
)

// UID names a package identity, independent of version. Every Candidate
// sharing a UID belongs to the same chain.
type UID = model.UID

// ConflictRef names one entry of a Candidate's conflict list: the UID of
// the chain it conflicts with, and under what polarity rule.
type ConflictRef = model.ConflictRef

// Candidate is one concrete package in the universe: a specific version of
// a package, either already installed or available remotely.
//
// UID and Digest are borrowed strings: the Candidate does not own their
// backing memory, and the universe that produced it must outlive any
// solver operating over it.
type Candidate = model.Candidate
