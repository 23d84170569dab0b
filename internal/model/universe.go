package model

// Universe is the upstream contract handed to the encoder: an iterable
// collection of UID chains, a shared-library provides index, two request
// sets, and a job type. Constructing a Universe (discovering candidates,
// computing digests, indexing provides) is left to the caller; Universe
// only describes the shape the encoder consumes.
type Universe struct {
	// Chains holds one entry per UID, each a non-empty ordered list of
	// Candidates sharing that UID.
	Chains [][]*Candidate

	// Provides maps a shared-library name to every Candidate that exposes
	// it, across all chains.
	Provides map[string][]*Candidate

	// RequestAdd and RequestDelete name Candidates the caller explicitly
	// asked to install or remove.
	RequestAdd    []*Candidate
	RequestDelete []*Candidate

	Job JobType
}

// NewUniverse returns an empty Universe for job type j.
func NewUniverse(j JobType) *Universe {
	return &Universe{
		Provides: make(map[string][]*Candidate),
		Job:      j,
	}
}

// AddChain appends a UID chain. Candidates within a chain must share the
// same UID; order matters only as a tie-breaker hint alongside Priority.
func (u *Universe) AddChain(chain []*Candidate) {
	u.Chains = append(u.Chains, chain)
}

// AddProvider records that c exposes the shared library named shlib.
func (u *Universe) AddProvider(shlib string, c *Candidate) {
	u.Provides[shlib] = append(u.Provides[shlib], c)
}

// RequestInstall adds c to the install request set.
func (u *Universe) RequestInstall(c *Candidate) {
	u.RequestAdd = append(u.RequestAdd, c)
}

// RequestRemove adds c to the delete request set.
func (u *Universe) RequestRemove(c *Candidate) {
	u.RequestDelete = append(u.RequestDelete, c)
}
