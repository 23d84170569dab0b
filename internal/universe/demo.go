package universe

import "github.com/pkgkit/pkgsolve/pkg/solver"

// Demo builds a small, self-contained universe touching every rule the
// encoder implements: a dependency, a remote/remote conflict, a
// shared-library require, and a two-candidate UID chain. It exists so the
// pkgsolve CLI has something to show without a real package repository on
// disk.
func Demo(job solver.JobType) *solver.Universe {
	b := NewBuilder(job)

	appOld := &solver.Candidate{UID: "app", Digest: "app-1.0", Origin: solver.Installed, Deps: []solver.UID{"libfoo"}}
	appNew := &solver.Candidate{UID: "app", Digest: "app-2.0", Origin: solver.Remote, Deps: []solver.UID{"libfoo"}}
	b.Add(appOld)
	b.Install(appNew)

	libFoo := &solver.Candidate{UID: "libfoo", Digest: "libfoo-1.0", Origin: solver.Remote, Requires: []string{"libc.so.6"}}
	b.Add(libFoo)

	libBar := &solver.Candidate{
		UID:    "libbar",
		Digest: "libbar-1.0",
		Origin: solver.Remote,
		Conflicts: []solver.ConflictRef{
			{UID: "libfoo", Kind: solver.ConflictRemoteRemote},
		},
	}
	b.Add(libBar)

	glibc := &solver.Candidate{UID: "glibc", Digest: "glibc-2.38", Origin: solver.Installed}
	b.Add(glibc)
	b.Provide("libc.so.6", glibc)

	return b.Build()
}
