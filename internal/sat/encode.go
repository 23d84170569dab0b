package sat

import (
	"fmt"

	"github.com/pkgkit/pkgsolve/internal/model"
)

// Encode turns a Universe and its embedded requests into a Problem: one
// Variable per Candidate and the clauses implementing dependencies,
// conflicts, shared-library requirements, explicit requests, and chain
// exclusion. Unresolvable dependency/conflict/provider UIDs are soft
// failures: they are recorded in Problem.Warnings and the single affected
// clause is dropped, never treated as fatal.
func Encode(u *model.Universe) (*Problem, error) {
	n := 0
	for _, chain := range u.Chains {
		n += len(chain)
	}

	vars := newStore(n)
	for _, chain := range u.Chains {
		vars.addChain(chain)
	}

	p := &Problem{vars: vars, clauses: &clauses{}, job: u.Job}

	for _, chain := range u.Chains {
		for _, c := range chain {
			aIdx, ok := vars.candIndex[c]
			if !ok {
				continue
			}
			p.encodeDependencies(vars, aIdx, c)
			p.encodeConflicts(vars, aIdx, c)
			p.encodeRequires(vars, aIdx, c, u)
		}
		p.encodeChainExclusion(vars, chain)
	}

	p.encodeRequests(vars, u)

	return p, nil
}

func (p *Problem) warnf(format string, args ...interface{}) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

// encodeDependencies emits the dependency rule: ¬A ∨ B1 ∨ ... ∨ Bk.
func (p *Problem) encodeDependencies(vars *store, aIdx int, c *model.Candidate) {
	for _, dep := range c.Deps {
		head, ok := vars.findChain(dep)
		if !ok {
			p.warnf("dependency %s of %s not found in universe; dropping clause", dep, c.UID)
			continue
		}
		members := vars.chainMembers(head)
		lits := make([]literal, 0, len(members)+1)
		lits = append(lits, literal{varIdx: aIdx, inverse: true})
		for _, m := range members {
			lits = append(lits, literal{varIdx: m})
		}
		p.clauses.add(vars, lits...)
	}
}

// encodeConflicts emits the conflict rule, applying the polarity filter
// by ConflictKind.
func (p *Problem) encodeConflicts(vars *store, aIdx int, c *model.Candidate) {
	for _, ref := range c.Conflicts {
		head, ok := vars.findChain(ref.UID)
		if !ok {
			p.warnf("conflict target %s of %s not found in universe; dropping clause", ref.UID, c.UID)
			continue
		}
		for _, mIdx := range vars.chainMembers(head) {
			member := vars.vars[mIdx].candidate
			if !conflictApplies(ref.Kind, c, member) {
				continue
			}
			p.clauses.add(vars,
				literal{varIdx: aIdx, inverse: true},
				literal{varIdx: mIdx, inverse: true},
			)
		}
	}
}

func conflictApplies(kind model.ConflictKind, subject, member *model.Candidate) bool {
	switch kind {
	case model.ConflictRemoteLocal:
		if subject.Origin == model.Installed {
			return member.Origin == model.Remote
		}
		return member.Origin == model.Installed
	case model.ConflictRemoteRemote:
		return subject.Origin == model.Remote && member.Origin == model.Remote
	default:
		return false
	}
}

// encodeRequires emits the shared-library requirement rule: ¬A ∨ P1 ∨
// ... ∨ Pm, only for remote candidates, deduplicated to one chain's
// members per provider chain.
func (p *Problem) encodeRequires(vars *store, aIdx int, c *model.Candidate, u *model.Universe) {
	if c.Origin != model.Remote {
		return
	}
	for _, shlib := range c.Requires {
		providers := u.Provides[shlib]
		seenChain := make(map[int]struct{})
		var members []int
		for _, prov := range providers {
			pIdx, ok := vars.candIndex[prov]
			if !ok {
				continue
			}
			head := vars.vars[pIdx].chainHead
			if _, dup := seenChain[head]; dup {
				continue
			}
			seenChain[head] = struct{}{}
			// Every variable in the provider's chain contributes, not just
			// the head: any chain member being installed satisfies the
			// requirement.
			members = append(members, vars.chainMembers(head)...)
		}
		if len(members) == 0 {
			p.warnf("shared library %q required by %s has no provider; dropping clause", shlib, c.UID)
			continue
		}
		lits := make([]literal, 0, len(members)+1)
		lits = append(lits, literal{varIdx: aIdx, inverse: true})
		for _, m := range members {
			lits = append(lits, literal{varIdx: m})
		}
		p.clauses.add(vars, lits...)
	}
}

// encodeRequests emits unary clauses for explicit install/delete
// requests.
func (p *Problem) encodeRequests(vars *store, u *model.Universe) {
	for _, c := range u.RequestAdd {
		if idx, ok := vars.candIndex[c]; ok {
			p.clauses.add(vars, literal{varIdx: idx})
		}
	}
	for _, c := range u.RequestDelete {
		if idx, ok := vars.candIndex[c]; ok {
			p.clauses.add(vars, literal{varIdx: idx, inverse: true})
		}
	}
}

// encodeChainExclusion emits the mutual-exclusion rule: from the chain
// head, once per UID, ¬A ∨ ¬Ai for every sibling Ai.
func (p *Problem) encodeChainExclusion(vars *store, chain []*model.Candidate) {
	if len(chain) < 2 {
		return
	}
	headIdx, ok := vars.candIndex[chain[0]]
	if !ok {
		return
	}
	for _, c := range chain[1:] {
		idx, ok := vars.candIndex[c]
		if !ok {
			continue
		}
		p.clauses.add(vars,
			literal{varIdx: headIdx, inverse: true},
			literal{varIdx: idx, inverse: true},
		)
	}
}
