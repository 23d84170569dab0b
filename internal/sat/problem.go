package sat

import "github.com/pkgkit/pkgsolve/internal/model"

// Problem owns every Variable and Clause created during encoding; they
// live and die together with one solve call.
type Problem struct {
	vars    *store
	clauses *clauses
	job     model.JobType

	// Warnings collects soft encoding failures: a dependency, conflict,
	// or provider UID that could not be resolved. Solving proceeds
	// without the affected clause.
	Warnings []string
}

// resolve fixes varIdx to value, updating nresolved on every clause that
// mentions it. If log is non-nil the variable is appended to it so the
// assignment can later be undone.
func (p *Problem) resolve(varIdx int, value bool, log *[]int) {
	v := &p.vars.vars[varIdx]
	v.toInstall = value
	v.resolved = true
	for _, cidx := range v.rules {
		p.clauses.get(cidx).nresolved++
	}
	if log != nil {
		*log = append(*log, varIdx)
	}
}

// unresolve reverts a prior resolve, in the order required to keep
// nresolved consistent: callers must undo a log tail-first.
func (p *Problem) unresolve(varIdx int) {
	v := &p.vars.vars[varIdx]
	v.resolved = false
	for _, cidx := range v.rules {
		p.clauses.get(cidx).nresolved--
	}
}

// undoLog unresolves every variable named in log, in reverse order, and
// truncates it to empty.
func (p *Problem) undoLog(log *[]int) {
	for i := len(*log) - 1; i >= 0; i-- {
		p.unresolve((*log)[i])
	}
	*log = (*log)[:0]
}

// NumVars reports the number of variables in p, numbered 1..NumVars() in
// DIMACS order. Backends outside this package (internal/extsolver) use it
// to size their model-extraction loop.
func (p *Problem) NumVars() int {
	return len(p.vars.vars)
}

// DimacsClauses returns every clause as signed 1-based variable orders,
// the same numbering ExportDIMACS writes to a file, for backends that
// build an in-process solver instead of shelling out to one.
func (p *Problem) DimacsClauses() [][]int {
	out := make([][]int, 0, p.clauses.len())
	for _, cl := range p.clauses.all {
		lits := make([]int, 0, len(cl.lits))
		for _, l := range cl.lits {
			order := l.varIdx + 1
			if l.inverse {
				order = -order
			}
			lits = append(lits, order)
		}
		out = append(out, lits)
	}
	return out
}

// ApplyExternal resolves the variable at the given 1-based DIMACS order to
// value, without touching the implication log. For applying a model
// produced by an external solver rather than this package's own search.
// A variable already resolved is left untouched: competition-style output
// may legally repeat a variable's order across the model line, and
// resolving it twice would double-count nresolved on every clause it
// appears in.
func (p *Problem) ApplyExternal(order int, value bool) {
	idx := order - 1
	if idx < 0 || idx >= len(p.vars.vars) {
		return
	}
	if p.vars.vars[idx].resolved {
		return
	}
	p.resolve(idx, value, nil)
}
