// Package model holds the vocabulary shared by the solver's public API
// (pkg/solver) and its engine (internal/sat): Candidate, Universe, Action,
// and the diagnostic types built from them. It exists as a dependency-free
// leaf so the engine can be built against the same types the public API
// exposes, without the public API needing to import the engine. pkg/solver
// imports both this package and internal/sat and wires them together, the
// way pkg/deppy stays the vocabulary import root for deppy's own
// internal/solver engine.
package model

import "fmt"

// Origin distinguishes a Candidate already present on the system from one
// only available in a repository.
type Origin int

const (
	// Installed marks a Candidate currently present on the system.
	Installed Origin = iota
	// Remote marks a Candidate available from a repository but not yet
	// installed.
	Remote
)

func (o Origin) String() string {
	switch o {
	case Installed:
		return "local"
	case Remote:
		return "remote"
	default:
		return "unknown"
	}
}

// ConflictKind selects which members of a conflicting UID chain produce a
// clause against a given Candidate.
type ConflictKind int

const (
	// ConflictRemoteLocal fires between a local candidate and any remote
	// candidate in the conflicting chain (and vice versa).
	ConflictRemoteLocal ConflictKind = iota
	// ConflictRemoteRemote fires only when both sides of the conflict are
	// remote candidates.
	ConflictRemoteRemote
)

// JobType is the kind of transaction the caller asked the solver to plan.
type JobType int

const (
	JobInstall JobType = iota
	JobUpgrade
	JobDelete
	JobFetch
)

func (j JobType) String() string {
	switch j {
	case JobInstall:
		return "install"
	case JobUpgrade:
		return "upgrade"
	case JobDelete:
		return "delete"
	case JobFetch:
		return "fetch"
	default:
		return "unknown"
	}
}

// UID names a package identity, independent of version. Every Candidate
// sharing a UID belongs to the same chain.
type UID string

// ConflictRef names one entry of a Candidate's conflict list: the UID of
// the chain it conflicts with, and under what polarity rule.
type ConflictRef struct {
	UID  UID
	Kind ConflictKind
}

// Candidate is one concrete package in the universe: a specific version of
// a package, either already installed or available remotely.
//
// UID and Digest are borrowed strings: the Candidate does not own their
// backing memory, and the universe that produced it must outlive any
// solver operating over it.
type Candidate struct {
	UID    UID
	Digest string
	Origin Origin

	// Deps lists the UIDs this candidate depends on.
	Deps []UID
	// Conflicts lists the chains this candidate may not coexist with.
	Conflicts []ConflictRef
	// Requires lists shared-library names this candidate needs. Only
	// meaningful when Origin == Remote; local candidates are assumed to
	// already have their shared libraries satisfied.
	Requires []string

	// Priority biases which chain member is preferred when more than one
	// could satisfy a dependency, or a tie must be broken during search.
	Priority int
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s(%s, digest=%s)", c.UID, c.Origin, c.Digest)
}
