// Package extsolver offers an alternate solving backend for the problems
// internal/sat encodes, delegating the satisfiability search itself to
// go-air/gini instead of this repository's own DPLL search. An external
// solver may stand in for the internal one as long as it can consume the
// same CNF and hand back a complete model.
//
// The two backends share everything except the search: encoding,
// projection, and the Problem type come from internal/sat, and the Action
// type from internal/model.
package extsolver

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/pkgkit/pkgsolve/internal/sat"
	"github.com/pkgkit/pkgsolve/pkg/solver"
)

// Solve encodes u and decides it with gini rather than internal/sat's own
// search, projecting the resulting model into the same action list
// pkg/solver.Solve would produce. It returns a *solver.NotSatisfiable
// error if gini reports UNSAT, and a plain error if gini cancels without
// deciding either way.
func Solve(u *solver.Universe) (sat.Result, error) {
	p, err := sat.Encode(u)
	if err != nil {
		return sat.Result{}, err
	}

	g := gini.New()
	for _, lits := range p.DimacsClauses() {
		for _, order := range lits {
			g.Add(z.Dimacs2Lit(order))
		}
		g.Add(0)
	}

	switch g.Solve() {
	case 1:
		for order := 1; order <= p.NumVars(); order++ {
			p.ApplyExternal(order, g.Value(z.Dimacs2Lit(order)))
		}
	case -1:
		return sat.Result{Warnings: p.Warnings}, &solver.NotSatisfiable{}
	default:
		return sat.Result{Warnings: p.Warnings}, solver.ErrIncomplete
	}

	actions, err := sat.Project(p)
	if err != nil {
		return sat.Result{Actions: actions, Warnings: p.Warnings}, err
	}
	return sat.Result{Actions: actions, Warnings: p.Warnings}, nil
}
