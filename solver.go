package fill

import (
	"maps"
	"slices"

	"github.com/rs/zerolog/log"

	"crosswarped.com/fill/pkg/primitives"
)

// Assignment maps a subset of the puzzle's variables to chosen words. A
// complete assignment covers every variable.
type Assignment map[Variable]string

// Solver fills a crossword by treating it as a constraint satisfaction
// problem: every slot must receive a word of its length, intersecting slots
// must agree on the shared letter, and no word may be used twice.
type Solver struct {
	cw *Crossword

	// domains holds each variable's remaining candidate words, kept sorted.
	// It only ever shrinks: node consistency and arc consistency prune it
	// in place before search, and search reads it without mutating.
	domains map[Variable][]string
}

// NewSolver creates a solver with every variable's domain initialized to the
// full word list.
func NewSolver(cw *Crossword) *Solver {
	domains := make(map[Variable][]string, len(cw.Variables))
	for _, v := range cw.Variables {
		domains[v] = slices.Clone(cw.Words)
	}
	return &Solver{cw: cw, domains: domains}
}

// Domain returns v's remaining candidate words.
func (s *Solver) Domain(v Variable) []string {
	return s.domains[v]
}

// Solve enforces node and arc consistency, then runs backtracking search.
// The second return is false when the puzzle has no solution, which is a
// defined outcome rather than an error.
func (s *Solver) Solve() (Assignment, bool) {
	log.Debug().
		Int("variables", len(s.cw.Variables)).
		Int("words", len(s.cw.Words)).
		Msg("starting solve")

	s.enforceNodeConsistency()
	if !s.ac3(nil) {
		log.Debug().Msg("arc consistency emptied a domain, puzzle is unsatisfiable")
		return nil, false
	}

	assignment, ok := s.backtrack(Assignment{})
	if !ok {
		log.Debug().Msg("search exhausted all branches, puzzle is unsatisfiable")
		return nil, false
	}
	return assignment, true
}

// enforceNodeConsistency removes from each variable's domain every word whose
// length differs from the variable's length. Idempotent.
func (s *Solver) enforceNodeConsistency() {
	for _, v := range s.cw.Variables {
		s.domains[v] = slices.DeleteFunc(s.domains[v], func(w string) bool {
			return len(w) != v.Length
		})
	}
}

// revise makes x arc-consistent with y: it removes from x's domain every word
// with no compatible word left in y's domain at the overlap indices. It
// returns whether anything was removed. A pair with no overlap is a no-op.
func (s *Solver) revise(x, y Variable) bool {
	ov, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}

	avail := lettersAt(s.domains[y], ov[1])
	if avail.IsFull() {
		// Every letter has support; nothing can be pruned.
		return false
	}

	before := len(s.domains[x])
	s.domains[x] = slices.DeleteFunc(s.domains[x], func(w string) bool {
		return !avail.Contains(rune(w[ov[0]]))
	})
	return len(s.domains[x]) != before
}

// arc is an ordered pair of intersecting variables: revising it prunes the
// first variable's domain against the second's.
type arc struct {
	x, y Variable
}

// ac3 propagates the overlap constraint until a fixpoint. arcs seeds the
// worklist; nil means all (variable, neighbor) pairs. It returns false as
// soon as some domain empties, meaning the puzzle is unsatisfiable under the
// current domains.
func (s *Solver) ac3(arcs []arc) bool {
	queue := arcs
	if queue == nil {
		for _, x := range s.cw.Variables {
			for _, y := range s.cw.Neighbors(x) {
				queue = append(queue, arc{x, y})
			}
		}
	} else {
		queue = slices.Clone(queue)
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		if !s.revise(a.x, a.y) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			return false
		}
		// Narrowing x may invalidate the consistency of x's other
		// neighbors with x, so they get re-queued.
		for _, z := range s.cw.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{z, a.x})
			}
		}
	}
	return true
}

// consistent reports whether a (possibly partial) assignment satisfies all
// constraints: assigned words are pairwise distinct, each matches its
// variable's length, and assigned intersecting pairs agree on the shared
// letter. Unassigned neighbors impose no constraint yet.
func (s *Solver) consistent(assignment Assignment) bool {
	seen := make(map[string]bool, len(assignment))
	for v, w := range assignment {
		if seen[w] {
			return false
		}
		seen[w] = true

		if len(w) != v.Length {
			return false
		}

		for _, n := range s.cw.Neighbors(v) {
			nw, ok := assignment[n]
			if !ok {
				continue
			}
			ov, ok := s.cw.Overlap(v, n)
			if !ok {
				continue
			}
			if w[ov[0]] != nw[ov[1]] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedVariable picks the next variable to assign using the
// minimum-remaining-values heuristic, breaking ties by degree (most
// neighbors), then by the canonical variable order.
func (s *Solver) selectUnassignedVariable(assignment Assignment) Variable {
	var best Variable
	found := false
	for _, v := range s.cw.Variables {
		if _, ok := assignment[v]; ok {
			continue
		}
		if !found {
			best = v
			found = true
			continue
		}
		if len(s.domains[v]) < len(s.domains[best]) {
			best = v
		} else if len(s.domains[v]) == len(s.domains[best]) &&
			len(s.cw.Neighbors(v)) > len(s.cw.Neighbors(best)) {
			best = v
		}
	}
	return best
}

// orderDomainValues returns v's candidate words ordered by the
// least-constraining-value heuristic: ascending by how many words the
// candidate would eliminate across unassigned neighbors' domains. The sort
// is stable over the sorted domain, so the order is deterministic.
func (s *Solver) orderDomainValues(v Variable, assignment Assignment) []string {
	type neighborCounts struct {
		overlap [2]int
		size    int
		counts  letterCounts
	}

	var ncs []neighborCounts
	for _, n := range s.cw.Neighbors(v) {
		if _, ok := assignment[n]; ok {
			continue
		}
		ov, ok := s.cw.Overlap(v, n)
		if !ok {
			continue
		}
		ncs = append(ncs, neighborCounts{
			overlap: ov,
			size:    len(s.domains[n]),
			counts:  countsAt(s.domains[n], ov[1]),
		})
	}

	ordered := slices.Clone(s.domains[v])
	if len(ncs) == 0 {
		return ordered
	}

	conflicts := func(w string) int {
		total := 0
		for _, nc := range ncs {
			total += nc.size - nc.counts.at(rune(w[nc.overlap[0]]))
		}
		return total
	}

	slices.SortStableFunc(ordered, func(a, b string) int {
		return conflicts(a) - conflicts(b)
	})
	return ordered
}

// backtrack performs depth-first search for a complete consistent assignment.
// Each branch extends its own copy of the assignment, so a failed branch is
// simply discarded with nothing to undo.
func (s *Solver) backtrack(assignment Assignment) (Assignment, bool) {
	if len(assignment) == len(s.cw.Variables) {
		return assignment, true
	}

	v := s.selectUnassignedVariable(assignment)
	for _, w := range s.orderDomainValues(v, assignment) {
		next := maps.Clone(assignment)
		next[v] = w
		if !s.consistent(next) {
			continue
		}
		if result, ok := s.backtrack(next); ok {
			return result, true
		}
	}
	return nil, false
}

// lettersAt collects the set of letters that appear at position idx across
// all words in a domain.
func lettersAt(domain []string, idx int) *primitives.CharSet {
	cs := primitives.NewCharSet()
	for _, w := range domain {
		// Words are validated a-z when the crossword is built, so Add
		// cannot fail here.
		_ = cs.Add(rune(w[idx]))
	}
	return cs
}

// letterCounts tallies, per letter, how many words in a domain carry that
// letter at a given position.
type letterCounts ['z' - 'a' + 1]int

func (c *letterCounts) at(r rune) int {
	return c[r-'a']
}

func countsAt(domain []string, idx int) letterCounts {
	var counts letterCounts
	for _, w := range domain {
		counts[w[idx]-'a']++
	}
	return counts
}
