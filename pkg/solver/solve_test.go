package solver_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pkgkit/pkgsolve/pkg/solver"
)

func TestSolver(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Solver Suite")
}

var _ = Describe("Solve", func() {
	It("makes no change when the installed candidate is already requested", func() {
		u := solver.NewUniverse(solver.JobInstall)
		a := &solver.Candidate{UID: "a", Origin: solver.Installed}
		u.AddChain([]*solver.Candidate{a})
		u.RequestInstall(a)

		result, err := solver.Solve(u)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Actions).To(BeEmpty())
	})

	It("installs a single requested remote candidate", func() {
		u := solver.NewUniverse(solver.JobInstall)
		a := &solver.Candidate{UID: "a", Origin: solver.Remote}
		u.AddChain([]*solver.Candidate{a})
		u.RequestInstall(a)

		result, err := solver.Solve(u)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Actions).To(HaveLen(1))
		Expect(result.Actions[0].Kind).To(Equal(solver.ActionInstall))
		Expect(result.Actions[0].Candidate).To(Equal(a))
	})

	It("upgrades an installed candidate to a requested remote one in the same chain", func() {
		u := solver.NewUniverse(solver.JobUpgrade)
		old := &solver.Candidate{UID: "app", Digest: "1.0", Origin: solver.Installed}
		next := &solver.Candidate{UID: "app", Digest: "2.0", Origin: solver.Remote}
		u.AddChain([]*solver.Candidate{old, next})
		u.RequestInstall(next)

		result, err := solver.Solve(u)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Actions).To(HaveLen(1))
		Expect(result.Actions[0].Kind).To(Equal(solver.ActionUpgrade))
		Expect(result.Actions[0].Candidate).To(Equal(next))
		Expect(result.Actions[0].From).To(Equal(old))
	})

	It("reports NotSatisfiable when two requested candidates conflict", func() {
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

		_, err := solver.Solve(u)
		Expect(err).To(HaveOccurred())
		var notSat *solver.NotSatisfiable
		Expect(err).To(BeAssignableToTypeOf(notSat))
	})

	It("satisfies a remote candidate's shared-library require from an installed provider", func() {
		u := solver.NewUniverse(solver.JobInstall)
		app := &solver.Candidate{UID: "app", Origin: solver.Remote, Requires: []string{"libc.so.6"}}
		glibc := &solver.Candidate{UID: "glibc", Origin: solver.Installed}
		u.AddChain([]*solver.Candidate{app})
		u.AddChain([]*solver.Candidate{glibc})
		u.AddProvider("libc.so.6", glibc)
		u.RequestInstall(app)

		result, err := solver.Solve(u)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Warnings).To(BeEmpty())
		Expect(result.Actions).To(HaveLen(1))
		Expect(result.Actions[0].Candidate).To(Equal(app))
	})

	It("excludes every other chain member once one is selected", func() {
		u := solver.NewUniverse(solver.JobInstall)
		v1 := &solver.Candidate{UID: "app", Digest: "1.0", Origin: solver.Remote}
		v2 := &solver.Candidate{UID: "app", Digest: "2.0", Origin: solver.Remote}
		v3 := &solver.Candidate{UID: "app", Digest: "3.0", Origin: solver.Remote}
		u.AddChain([]*solver.Candidate{v1, v2, v3})
		u.RequestInstall(v1)

		result, err := solver.Solve(u)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Actions).To(HaveLen(1))
		Expect(result.Actions[0].Candidate).To(Equal(v1))
	})

	It("accepts a custom Tracer without altering the decision", func() {
		u := solver.NewUniverse(solver.JobInstall)
		a := &solver.Candidate{UID: "a", Origin: solver.Remote}
		u.AddChain([]*solver.Candidate{a})
		u.RequestInstall(a)

		traced := 0
		tracer := traceFunc(func(solver.SearchPosition) { traced++ })
		result, err := solver.Solve(u, solver.WithTracer(tracer))
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Actions).To(HaveLen(1))
		Expect(traced).To(Equal(0), "a solve with no conflicting decision never traces")
	})
})

type traceFunc func(solver.SearchPosition)

func (f traceFunc) Trace(p solver.SearchPosition) { f(p) }
