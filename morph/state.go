package morph

import "fmt"

// unmapped marks a free slot in core1/core2.
const unmapped = -1

// pair is a mapped (g1 vertex, g2 vertex) index pair.
type pair struct{ v1, v2 int }

// rule decides whether (v1, v2) may extend the current mapping. The state
// has already checked that both vertices are free.
type rule interface {
	feasible(s *state, v1, v2 int) bool
}

// state is the partial mapping shared by both searches: an injective
// correspondence core1/core2 plus VF2 terminal-set bookkeeping.
//
// in1/out1/in2/out2 hold the depth at which a vertex entered the in/out
// terminal region (0 = never). A vertex is in the terminal set proper when
// its stamp is non-zero and it is still unmapped. For undirected graphs the
// index aliases in to out, so in and out stamps always agree.
type state struct {
	g1, g2 *index
	rule   rule
	stats  *Stats

	core1, core2         []int
	in1, out1, in2, out2 []int
	stack                []pair
}

func newState(g1, g2 *index, r rule, stats *Stats) *state {
	n1, n2 := g1.n(), g2.n()
	s := &state{
		g1:    g1,
		g2:    g2,
		rule:  r,
		stats: stats,
		core1: make([]int, n1),
		core2: make([]int, n2),
		in1:   make([]int, n1),
		out1:  make([]int, n1),
		in2:   make([]int, n2),
		out2:  make([]int, n2),
		stack: make([]pair, 0, min(n1, n2)),
	}
	for i := range s.core1 {
		s.core1[i] = unmapped
	}
	for i := range s.core2 {
		s.core2[i] = unmapped
	}

	return s
}

func (s *state) size() int { return len(s.stack) }

func (s *state) isMapped(v1 int) bool { return s.core1[v1] != unmapped }

func (s *state) get(v1 int) int { return s.core1[v1] }

func (s *state) getInverse(v2 int) int { return s.core2[v2] }

// tryPush extends the mapping with (v1, v2) if the rule accepts it.
// On failure the state is unchanged.
func (s *state) tryPush(v1, v2 int) bool {
	if s.core1[v1] != unmapped || s.core2[v2] != unmapped || !s.rule.feasible(s, v1, v2) {
		s.stats.Rejected++
		return false
	}
	s.push(v1, v2)

	return true
}

// forcePush commits (v1, v2) without consulting the rule. Injectivity is
// structural, so a taken vertex still panics.
func (s *state) forcePush(v1, v2 int) {
	if s.core1[v1] != unmapped || s.core2[v2] != unmapped {
		panic(fmt.Errorf("morph: forcePush(%d,%d) on a mapped vertex: %w", v1, v2, ErrPreLayer))
	}
	s.push(v1, v2)
}

func (s *state) push(v1, v2 int) {
	s.core1[v1] = v2
	s.core2[v2] = v1
	s.stack = append(s.stack, pair{v1, v2})
	s.stats.Pushes++

	d := len(s.stack)
	stamp(s.in1, s.out1, s.g1, v1, d)
	stamp(s.in2, s.out2, s.g2, v2, d)
}

// pop undoes the most recent push. Popping an empty state panics.
func (s *state) pop() {
	d := len(s.stack)
	if d == 0 {
		panic(fmt.Errorf("morph: pop on empty mapping: %w", ErrPreLayer))
	}
	p := s.stack[d-1]
	unstamp(s.in1, s.out1, s.g1, p.v1, d)
	unstamp(s.in2, s.out2, s.g2, p.v2, d)

	s.core1[p.v1] = unmapped
	s.core2[p.v2] = unmapped
	s.stack = s.stack[:d-1]
}

// stamp records depth d for v and every neighbour not yet stamped.
func stamp(in, out []int, x *index, v, d int) {
	if in[v] == 0 {
		in[v] = d
	}
	if out[v] == 0 {
		out[v] = d
	}
	for _, w := range x.out[v] {
		if out[w] == 0 {
			out[w] = d
		}
	}
	for _, w := range x.in[v] {
		if in[w] == 0 {
			in[w] = d
		}
	}
}

// unstamp clears every stamp written at depth d by stamp(v).
func unstamp(in, out []int, x *index, v, d int) {
	if in[v] == d {
		in[v] = 0
	}
	if out[v] == d {
		out[v] = 0
	}
	for _, w := range x.out[v] {
		if out[w] == d {
			out[w] = 0
		}
	}
	for _, w := range x.in[v] {
		if in[w] == d {
			in[w] = 0
		}
	}
}

// candidates appends to buf the g2 vertices worth trying for v1, in index
// order. A v1 adjacent to the mapped region draws from the matching g2
// terminal set; otherwise every free g2 vertex qualifies, and with strict
// set (exact edge mirroring) vertices touching the mapped region are skipped.
func (s *state) candidates(v1 int, strict bool, buf []int) []int {
	buf = buf[:0]
	n2 := s.g2.n()
	switch {
	case s.out1[v1] != 0:
		for c := 0; c < n2; c++ {
			if s.core2[c] == unmapped && s.out2[c] != 0 {
				buf = append(buf, c)
			}
		}
	case s.in1[v1] != 0:
		for c := 0; c < n2; c++ {
			if s.core2[c] == unmapped && s.in2[c] != 0 {
				buf = append(buf, c)
			}
		}
	default:
		for c := 0; c < n2; c++ {
			if s.core2[c] != unmapped {
				continue
			}
			if strict && (s.in2[c] != 0 || s.out2[c] != 0) {
				continue
			}
			buf = append(buf, c)
		}
	}

	return buf
}
