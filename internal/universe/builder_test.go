package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgkit/pkgsolve/pkg/solver"
)

func TestBuilderGroupsChainsByUID(t *testing.T) {
	old := &solver.Candidate{UID: "app", Digest: "1.0", Origin: solver.Installed}
	next := &solver.Candidate{UID: "app", Digest: "2.0", Origin: solver.Remote}

	u := NewBuilder(solver.JobUpgrade).Add(old).Install(next).Build()

	assert.Len(t, u.Chains, 1)
	assert.Len(t, u.Chains[0], 2)
	assert.Equal(t, []*solver.Candidate{next}, u.RequestAdd)
}

func TestBuilderProvide(t *testing.T) {
	glibc := &solver.Candidate{UID: "glibc", Origin: solver.Installed}
	u := NewBuilder(solver.JobInstall).Add(glibc).Provide("libc.so.6", glibc).Build()

	assert.Equal(t, []*solver.Candidate{glibc}, u.Provides["libc.so.6"])
}

func TestDemoUniverseIsSatisfiable(t *testing.T) {
	u := Demo(solver.JobUpgrade)
	assert.NotEmpty(t, u.Chains)
	assert.NotEmpty(t, u.RequestAdd)

	_, err := solver.Solve(u)
	assert.NoError(t, err)
}
