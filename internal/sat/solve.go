package sat

import "github.com/pkgkit/pkgsolve/internal/model"

// Result is the full outcome of one solve call: the projected action
// list plus any soft encoding warnings collected along the way.
type Result struct {
	Actions  []model.Action
	Warnings []string
}

// Solve encodes u, searches for a satisfying assignment, and projects it
// into actions: encode, search, and on success project the model into an
// install/upgrade/delete/fetch action list.
func Solve(u *model.Universe, tracer model.Tracer) (Result, error) {
	p, err := Encode(u)
	if err != nil {
		return Result{}, err
	}

	s := newSearch(p, tracer)
	ok, notSat := s.run()
	if !ok {
		return Result{Warnings: p.Warnings}, notSat
	}

	actions, err := Project(p)
	if err != nil {
		return Result{Actions: actions, Warnings: p.Warnings}, err
	}
	return Result{Actions: actions, Warnings: p.Warnings}, nil
}
