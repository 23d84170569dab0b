// Package sat implements the solver core: translating a package universe
// into CNF, deciding it with unit propagation and DPLL search, and
// projecting the model back into install/upgrade/delete actions. It is
// the in-house replacement for a gini-delegated engine. See
// internal/extsolver for an alternate backend that still uses gini.
package sat

import (
	"sort"

	"github.com/pkgkit/pkgsolve/internal/model"
)

// noChain is the sentinel used for the absence of a chain neighbor.
const noChain = -1

// variable is bound to exactly one Candidate, carrying the tentative
// installation value and the back-pointer list of clauses that mention
// it.
type variable struct {
	candidate *model.Candidate
	toInstall bool
	resolved  bool
	priority  int

	// rules holds indices into the owning Problem's clause table; every
	// listed clause contains at least one literal naming this variable.
	rules []int

	// chain links this variable to the other members sharing its UID, as
	// a doubly linked list rooted at the chain head.
	chainPrev, chainNext int
	// chainHead is the index of this UID's head variable (may be the
	// variable itself).
	chainHead int
}

func (v *variable) nrules() int { return len(v.rules) }

// store is the dense Variable array plus the UID→head index. Addresses
// are stable for the problem's lifetime: callers hold indices, never
// pointers, into vars.
type store struct {
	vars      []variable
	uidIndex  map[model.UID]int
	candIndex map[*model.Candidate]int
}

func newStore(capacity int) *store {
	return &store{
		vars:      make([]variable, 0, capacity),
		uidIndex:  make(map[model.UID]int, capacity),
		candIndex: make(map[*model.Candidate]int, capacity),
	}
}

// addChain appends one UID chain's candidates as consecutive slots,
// registers the head in the UID index, and links the chain as a doubly
// linked list rooted at the head.
func (s *store) addChain(chain []*model.Candidate) []int {
	// Higher-priority candidates fill earlier slots, so the search's
	// left-to-right scan naturally tries them first.
	ordered := make([]*model.Candidate, len(chain))
	copy(ordered, chain)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	chain = ordered

	indices := make([]int, len(chain))
	headIdx := len(s.vars)
	for i, c := range chain {
		idx := len(s.vars)
		s.vars = append(s.vars, variable{
			candidate: c,
			priority:  c.Priority,
			chainPrev: noChain,
			chainNext: noChain,
			chainHead: headIdx,
		})
		indices[i] = idx
		s.candIndex[c] = idx
	}
	for i := 0; i < len(indices); i++ {
		if i > 0 {
			s.vars[indices[i]].chainPrev = indices[i-1]
		}
		if i+1 < len(indices) {
			s.vars[indices[i]].chainNext = indices[i+1]
		}
	}
	if len(chain) > 0 {
		s.uidIndex[chain[0].UID] = headIdx
	}
	return indices
}

// findChain returns the head variable index for uid, or ok=false if the
// UID is unknown to this universe. A soft failure the encoder must not
// treat as fatal.
func (s *store) findChain(uid model.UID) (int, bool) {
	idx, ok := s.uidIndex[uid]
	return idx, ok
}

// chainMembers returns every variable index sharing idx's UID chain, head
// first, in chain order.
func (s *store) chainMembers(idx int) []int {
	head := s.vars[idx].chainHead
	members := []int{head}
	for n := s.vars[head].chainNext; n != noChain; n = s.vars[n].chainNext {
		members = append(members, n)
	}
	return members
}

func (s *store) addRule(varIdx, clauseIdx int) {
	s.vars[varIdx].rules = append(s.vars[varIdx].rules, clauseIdx)
}
