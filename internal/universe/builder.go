// Package universe builds a *solver.Universe from a flat candidate list,
// the way pkg/deppy/input.CacheEntitySource turns a flat entity map into
// something queryable: group by identity first, index provides second,
// and hand the result to the caller rather than mutating in place.
package universe

import "github.com/pkgkit/pkgsolve/pkg/solver"

// Builder accumulates candidates and explicit requests before producing a
// solver.Universe. Candidates sharing a UID are grouped into one chain in
// the order they were added. Build keeps that order; internal/sat sorts
// each chain by priority at encode time, so callers may add in any order.
type Builder struct {
	job      solver.JobType
	byUID    map[solver.UID][]*solver.Candidate
	order    []solver.UID
	installs []*solver.Candidate
	removals []*solver.Candidate
	provides map[string][]*solver.Candidate
}

// NewBuilder starts a Universe builder for the given job kind.
func NewBuilder(job solver.JobType) *Builder {
	return &Builder{
		job:      job,
		byUID:    make(map[solver.UID][]*solver.Candidate),
		provides: make(map[string][]*solver.Candidate),
	}
}

// Add registers a candidate under its UID, creating a new chain the first
// time a UID is seen.
func (b *Builder) Add(c *solver.Candidate) *Builder {
	if _, ok := b.byUID[c.UID]; !ok {
		b.order = append(b.order, c.UID)
	}
	b.byUID[c.UID] = append(b.byUID[c.UID], c)
	return b
}

// Install marks c as an explicit install/upgrade request, in addition to
// registering it via Add.
func (b *Builder) Install(c *solver.Candidate) *Builder {
	b.Add(c)
	b.installs = append(b.installs, c)
	return b
}

// Remove marks c as an explicit delete request, in addition to
// registering it via Add.
func (b *Builder) Remove(c *solver.Candidate) *Builder {
	b.Add(c)
	b.removals = append(b.removals, c)
	return b
}

// Provide records that c exposes the shared library named shlib, for the
// provides index consulted by Candidates' Requires lists. It does not
// implicitly Add c; call Add or Install first.
func (b *Builder) Provide(shlib string, c *solver.Candidate) *Builder {
	b.provides[shlib] = append(b.provides[shlib], c)
	return b
}

// Build assembles the accumulated candidates into a Universe: one chain
// per UID in first-seen order.
func (b *Builder) Build() *solver.Universe {
	u := solver.NewUniverse(b.job)
	for _, uid := range b.order {
		u.AddChain(b.byUID[uid])
	}
	for shlib, providers := range b.provides {
		for _, c := range providers {
			u.AddProvider(shlib, c)
		}
	}
	for _, c := range b.installs {
		u.RequestInstall(c)
	}
	for _, c := range b.removals {
		u.RequestRemove(c)
	}
	return u
}
