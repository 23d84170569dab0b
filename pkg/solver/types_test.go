package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginString(t *testing.T) {
	type tc struct {
		Name     string
		Origin   Origin
		Expected string
	}

	for _, tt := range []tc{
		{Name: "installed", Origin: Installed, Expected: "local"},
		{Name: "remote", Origin: Remote, Expected: "remote"},
		{Name: "unknown", Origin: Origin(99), Expected: "unknown"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Origin.String())
		})
	}
}

func TestJobTypeString(t *testing.T) {
	type tc struct {
		Name     string
		Job      JobType
		Expected string
	}

	for _, tt := range []tc{
		{Name: "install", Job: JobInstall, Expected: "install"},
		{Name: "upgrade", Job: JobUpgrade, Expected: "upgrade"},
		{Name: "delete", Job: JobDelete, Expected: "delete"},
		{Name: "fetch", Job: JobFetch, Expected: "fetch"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Job.String())
		})
	}
}

func TestActionString(t *testing.T) {
	a := Action{Kind: ActionInstall, Candidate: &Candidate{UID: "a"}}
	assert.Equal(t, "INSTALL(a)", a.String())

	up := Action{Kind: ActionUpgrade, Candidate: &Candidate{UID: "app"}, From: &Candidate{UID: "app", Digest: "1.0"}}
	assert.Equal(t, "UPGRADE(app <- 1.0)", up.String())
}
