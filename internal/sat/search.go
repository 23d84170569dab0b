package sat

import "github.com/pkgkit/pkgsolve/internal/model"

// decisionFrame is one element of the decision stack: the chosen
// variable, its current guess, whether it has already been inverted
// once, and the implication log of variables forced as a consequence of
// this decision.
type decisionFrame struct {
	varIdx     int
	guess      bool
	inversions int
	log        []int

	lastConflict *clause
	prev, next   *decisionFrame
}

// search drives DPLL over a Problem: decision stack plus backtracking,
// doubly linked, grounded on the choice/guess deque of
// operator-lifecycle-manager's resolver/solver/search.go.
type search struct {
	problem *Problem
	tracer  model.Tracer

	head, tail   *decisionFrame
	decisions    int
	lastConflict *clause
}

func newSearch(p *Problem, tracer model.Tracer) *search {
	if tracer == nil {
		tracer = model.DefaultTracer{}
	}
	return &search{problem: p, tracer: tracer}
}

func (s *search) push(f *decisionFrame) {
	if s.tail == nil {
		s.head, s.tail = f, f
		return
	}
	f.prev = s.tail
	s.tail.next = f
	s.tail = f
}

func (s *search) pop() *decisionFrame {
	f := s.tail
	if f == nil {
		return nil
	}
	if f.prev != nil {
		f.prev.next = nil
	} else {
		s.head = nil
	}
	s.tail = f.prev
	return f
}

func (s *search) nextUnresolved(from int) (int, bool) {
	vars := s.problem.vars.vars
	for i := from; i < len(vars); i++ {
		if !vars[i].resolved {
			return i, true
		}
	}
	return 0, false
}

// run executes the DPLL loop to completion, reporting true once every
// variable of the Problem is resolved, or false with a NotSatisfiable
// describing the conflict.
func (s *search) run() (bool, *model.NotSatisfiable) {
	p := s.problem
	p.propagatePure()
	if ok, conflict := p.propagate(nil); !ok {
		s.tracer.Trace(&searchPosition{problem: p, conflict: conflict})
		return false, conflictReport(p, conflict, 0)
	}

	scanFrom := 0
	for {
		next, found := s.nextUnresolved(scanFrom)
		if !found {
			return true, nil
		}
		if s.decide(next) {
			scanFrom = s.tail.varIdx + 1
			continue
		}
		if !s.backtrack() {
			return false, conflictReport(p, s.lastConflict, s.decisions)
		}
		scanFrom = s.tail.varIdx + 1
	}
}

// decide pushes a new frame for varIdx and tries the initial guess, then
// its inversion if the frame has not yet been inverted. Returns true
// leaving a resolved frame on top of the stack, or false having popped
// the frame after both polarities conflicted.
func (s *search) decide(varIdx int) bool {
	v := &s.problem.vars.vars[varIdx]
	chainLen := len(s.problem.vars.chainMembers(varIdx))
	f := &decisionFrame{varIdx: varIdx, guess: initialGuess(s.problem.job, v, chainLen)}
	s.push(f)
	s.decisions++

	if s.tryGuess(f) {
		return true
	}
	if f.inversions == 0 {
		f.inversions = 1
		f.guess = !f.guess
		if s.tryGuess(f) {
			return true
		}
	}
	s.lastConflict = f.lastConflict
	s.tracer.Trace(s.position(f))
	s.pop()
	return false
}

// backtrack pops frames until one can be inverted and re-propagated
// successfully, or the stack empties. Each frame on the stack holds a
// currently-resolved variable and its implication log from the guess that
// succeeded; that log must be undone before the frame is either retried
// with the opposite guess or abandoned.
func (s *search) backtrack() bool {
	for s.tail != nil {
		f := s.tail
		s.problem.undoLog(&f.log)
		if f.inversions == 0 {
			f.inversions = 1
			f.guess = !f.guess
			if s.tryGuess(f) {
				return true
			}
		}
		s.lastConflict = f.lastConflict
		s.tracer.Trace(s.position(f))
		s.pop()
	}
	return false
}

// tryGuess resolves f's variable to f.guess and propagates. On failure it
// undoes the log it just built, leaving f's variable unresolved again.
func (s *search) tryGuess(f *decisionFrame) bool {
	s.problem.resolve(f.varIdx, f.guess, &f.log)
	ok, conflict := s.problem.propagate(&f.log)
	if ok {
		return true
	}
	f.lastConflict = conflict
	s.problem.undoLog(&f.log)
	return false
}

func (s *search) position(top *decisionFrame) model.SearchPosition {
	var decisions []*model.Candidate
	for f := s.head; f != nil; f = f.next {
		decisions = append(decisions, s.problem.vars.vars[f.varIdx].candidate)
	}
	return &searchPosition{problem: s.problem, decisions: decisions, conflict: top.lastConflict}
}

type searchPosition struct {
	problem   *Problem
	decisions []*model.Candidate
	conflict  *clause
}

func (sp *searchPosition) Decisions() []*model.Candidate { return sp.decisions }

func (sp *searchPosition) Conflict() []model.ConflictParticipant {
	if sp.conflict == nil {
		return nil
	}
	return conflictParticipants(sp.problem, sp.conflict)
}

func conflictParticipants(p *Problem, c *clause) []model.ConflictParticipant {
	parts := make([]model.ConflictParticipant, 0, len(c.lits))
	for _, l := range c.lits {
		v := p.vars.vars[l.varIdx]
		parts = append(parts, model.ConflictParticipant{Candidate: v.candidate, Wanted: !l.inverse})
	}
	return parts
}

func conflictReport(p *Problem, c *clause, decisions int) *model.NotSatisfiable {
	if c == nil {
		return &model.NotSatisfiable{Decisions: decisions}
	}
	return &model.NotSatisfiable{Participants: conflictParticipants(p, c), Decisions: decisions}
}

// initialGuess picks the decision that minimises churn in the common
// case.
func initialGuess(job model.JobType, v *variable, chainLen int) bool {
	singleton := chainLen <= 1
	if job == model.JobUpgrade {
		switch v.candidate.Origin {
		case model.Installed:
			return singleton
		case model.Remote:
			return !singleton
		}
	}
	return v.candidate.Origin == model.Installed
}
