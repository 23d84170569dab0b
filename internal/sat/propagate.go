package sat

import "github.com/pkgkit/pkgsolve/internal/model"

// propagate repeats full passes over the variable array, forcing every
// unit clause's literal, until a pass forces nothing or a conflicting
// clause is found. When log is non-nil, every forced variable is
// appended to it in forcing order, letting the caller undo exactly this
// propagation's effects later.
func (p *Problem) propagate(log *[]int) (ok bool, conflict *clause) {
	for {
		forced := false
		for i := range p.vars.vars {
			v := &p.vars.vars[i]
			for _, cidx := range v.rules {
				if cl := p.clauses.get(cidx); cl.conflicting(p.vars) {
					return false, cl
				}
			}
			for _, cidx := range v.rules {
				cl := p.clauses.get(cidx)
				if l, isUnit := cl.unit(p.vars); isUnit {
					p.resolve(l.varIdx, !l.inverse, log)
					forced = true
				}
			}
		}
		if !forced {
			return true, nil
		}
	}
}

// propagatePure is the once-only boundary pre-pass: any variable
// mentioned in no clause resolves to its current origin, and every
// already-unary clause forces its sole literal. Neither step is
// recorded in an implication log; this sets the search's starting
// state, not a decision's consequence.
func (p *Problem) propagatePure() {
	for i := range p.vars.vars {
		v := &p.vars.vars[i]
		if v.resolved || v.nrules() != 0 {
			continue
		}
		v.toInstall = v.candidate.Origin == model.Installed
		v.resolved = true
	}
	for _, cl := range p.clauses.all {
		if len(cl.lits) != 1 {
			continue
		}
		l := cl.lits[0]
		if !p.vars.vars[l.varIdx].resolved {
			p.resolve(l.varIdx, !l.inverse, nil)
		}
	}
}
