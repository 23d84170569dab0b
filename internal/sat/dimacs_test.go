package sat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkgkit/pkgsolve/internal/model"
)

func buildProblem(t *testing.T) *Problem {
	u := model.NewUniverse(model.JobInstall)
	a := &model.Candidate{UID: "a", Origin: model.Remote, Deps: []model.UID{"b"}}
	b := &model.Candidate{UID: "b", Origin: model.Remote}
	u.AddChain([]*model.Candidate{a})
	u.AddChain([]*model.Candidate{b})
	u.RequestInstall(a)

	p, err := Encode(u)
	assert.NoError(t, err)
	return p
}

func TestExportDIMACSHeader(t *testing.T) {
	p := buildProblem(t)
	var buf bytes.Buffer
	assert.NoError(t, ExportDIMACS(p, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "p cnf 2 "))
}

func TestParseDIMACSModelRoundTrip(t *testing.T) {
	p := buildProblem(t)
	var buf bytes.Buffer
	assert.NoError(t, ExportDIMACS(p, &buf))

	model := "SAT\n1 2 0\n"
	assert.NoError(t, ParseDIMACSModel(strings.NewReader(model), p))

	for i := range p.vars.vars {
		assert.True(t, p.vars.vars[i].resolved)
		assert.True(t, p.vars.vars[i].toInstall)
	}
}

func TestParseDIMACSModelRejectsUNSAT(t *testing.T) {
	p := buildProblem(t)
	err := ParseDIMACSModel(strings.NewReader("UNSAT\n"), p)
	assert.Error(t, err)
}

func TestParseDIMACSModelIncompleteIsFatal(t *testing.T) {
	p := buildProblem(t)
	err := ParseDIMACSModel(strings.NewReader("SAT\n1 0\n"), p)
	assert.Error(t, err, "variable b was never assigned")
}

func TestParseDIMACSModelVPrefixed(t *testing.T) {
	p := buildProblem(t)
	err := ParseDIMACSModel(strings.NewReader("v 1 -2 0\n"), p)
	assert.NoError(t, err)
	assert.True(t, p.vars.vars[0].toInstall)
	assert.False(t, p.vars.vars[1].toInstall)
}
