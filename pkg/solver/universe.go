package solver

import "github.com/pkgkit/pkgsolve/internal/model"

// Universe is the upstream contract handed to the encoder: an iterable
// collection of UID chains, a shared-library provides index, two request
// sets, and a job type. Constructing a Universe (discovering candidates,
// computing digests, indexing provides) is left to the caller; Universe
// only describes the shape the encoder consumes.
type Universe = model.Universe

// NewUniverse returns an empty Universe for job type j.
func NewUniverse(j JobType) *Universe {
	return model.NewUniverse(j)
}
