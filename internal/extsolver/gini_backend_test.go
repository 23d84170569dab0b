package extsolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgkit/pkgsolve/pkg/solver"
)

func TestSolvePureInstall(t *testing.T) {
	u := solver.NewUniverse(solver.JobInstall)
	a := &solver.Candidate{UID: "a", Origin: solver.Remote}
	u.AddChain([]*solver.Candidate{a})
	u.RequestInstall(a)

	result, err := Solve(u)
	assert.NoError(t, err)
	assert.Len(t, result.Actions, 1)
	assert.Equal(t, solver.ActionInstall, result.Actions[0].Kind)
}

func TestSolveConflictIsUnsatisfiable(t *testing.T) {
	u := solver.NewUniverse(solver.JobInstall)
	a := &solver.Candidate{
		UID:    "a",
		Origin: solver.Remote,
		Conflicts: []solver.ConflictRef{
			{UID: "b", Kind: solver.ConflictRemoteRemote},
		},
	}
	b := &solver.Candidate{UID: "b", Origin: solver.Remote}
	u.AddChain([]*solver.Candidate{a})
	u.AddChain([]*solver.Candidate{b})
	u.RequestInstall(a)
	u.RequestInstall(b)

	_, err := Solve(u)
	var notSat *solver.NotSatisfiable
	assert.ErrorAs(t, err, &notSat)
}
