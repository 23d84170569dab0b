package solver

import "github.com/pkgkit/pkgsolve/internal/sat"

// Result is the outcome of a successful Solve call.
type Result struct {
	// Actions is the ordered list of install/upgrade/delete/fetch
	// instructions for the job executor.
	Actions []Action
	// Warnings lists soft encoding failures: a dependency, conflict, or
	// provider UID that could not be resolved and whose single clause was
	// dropped rather than failing the solve.
	Warnings []string
}

// Option configures a Solve call.
type Option func(*config)

type config struct {
	tracer Tracer
}

// WithTracer installs a Tracer notified of failed decision frames during
// search.
func WithTracer(t Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// Solve decides a coherent subset of u's candidates honoring every
// dependency, conflict, and explicit request, then projects the result
// into an action list. It returns a *NotSatisfiable error if no such
// subset exists.
func Solve(u *Universe, opts ...Option) (Result, error) {
	c := &config{tracer: DefaultTracer{}}
	for _, opt := range opts {
		opt(c)
	}

	result, err := sat.Solve(u, c.tracer)
	return Result{Actions: result.Actions, Warnings: result.Warnings}, err
}
