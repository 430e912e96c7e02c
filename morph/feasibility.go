package morph

import "github.com/katalvlaran/lvmorph/core"

// vf2Rule is the single-sided consistency rule of the VF2 Matcher: g1 is
// the domain, g2 the codomain.
type vf2Rule struct {
	mode Mode
	opts *Options
}

// lookahead counts the free neighbours of a vertex by terminal class.
type lookahead struct {
	termIn, termOut, fresh, free int
}

func (la *lookahead) add(in, out int) {
	la.free++
	if in != 0 {
		la.termIn++
	}
	if out != 0 {
		la.termOut++
	}
	if in == 0 && out == 0 {
		la.fresh++
	}
}

// fits compares domain counts a against codomain counts b.
func (m Mode) fits(a, b lookahead) bool {
	switch m {
	case Isomorphism:
		return a.termIn == b.termIn && a.termOut == b.termOut && a.fresh == b.fresh
	case InducedSubgraph:
		return a.termIn <= b.termIn && a.termOut <= b.termOut && a.fresh <= b.fresh
	default:
		return a.termIn <= b.termIn && a.termOut <= b.termOut && a.free <= b.free
	}
}

func (r vf2Rule) feasible(s *state, d, c int) bool {
	g1, g2 := s.g1, s.g2
	if !r.opts.vertexOK(g1.verts[d], g2.verts[c]) {
		return false
	}
	exact := r.mode != Monomorphism

	// Self-loops behave like any other edge between mapped vertices.
	if l1, l2 := g1.edge(d, d), g2.edge(c, c); l1 != nil {
		if l2 == nil || !r.opts.edgeOK(l1, l2) {
			return false
		}
	} else if l2 != nil && exact {
		return false
	}

	var succ1, succ2, pred1, pred2 lookahead

	// Domain edges d→w / w→d towards mapped w must exist in the codomain.
	for _, w := range g1.out[d] {
		if m := s.core1[w]; m != unmapped {
			e2 := g2.edge(c, m)
			if e2 == nil || !r.opts.edgeOK(g1.edge(d, w), e2) {
				return false
			}
			continue
		}
		succ1.add(s.in1[w], s.out1[w])
	}
	if g1.directed {
		for _, w := range g1.in[d] {
			if m := s.core1[w]; m != unmapped {
				e2 := g2.edge(m, c)
				if e2 == nil || !r.opts.edgeOK(g1.edge(w, d), e2) {
					return false
				}
				continue
			}
			pred1.add(s.in1[w], s.out1[w])
		}
	}

	// Codomain edges towards mapped vertices must exist in the domain,
	// unless extra codomain edges are tolerated.
	for _, w := range g2.out[c] {
		if m := s.core2[w]; m != unmapped {
			if exact && g1.edge(d, m) == nil {
				return false
			}
			continue
		}
		succ2.add(s.in2[w], s.out2[w])
	}
	if g2.directed {
		for _, w := range g2.in[c] {
			if m := s.core2[w]; m != unmapped {
				if exact && g1.edge(m, d) == nil {
					return false
				}
				continue
			}
			pred2.add(s.in2[w], s.out2[w])
		}
	}

	return r.mode.fits(succ1, succ2) && r.mode.fits(pred1, pred2)
}

// commonRule is the double-sided consistency rule of the common-subgraph
// Enumerator: both graphs constrain each other symmetrically.
type commonRule struct {
	opts *Options
}

// edgesOK compares two optional edges. Both absent is fine, both present
// must satisfy the edge predicate, one-sided presence is only tolerated
// without full induction.
func (r commonRule) edgesOK(e1, e2 *core.Edge) bool {
	switch {
	case e1 == nil && e2 == nil:
		return true
	case e1 != nil && e2 != nil:
		return r.opts.edgeOK(e1, e2)
	}

	return !r.opts.FullInduction
}

// vertexOK checks the predicate and the self-loops of (l, rr).
func (r commonRule) vertexOK(g1, g2 *index, l, rr int) bool {
	return r.opts.vertexOK(g1.verts[l], g2.verts[rr]) &&
		r.edgesOK(g1.edge(l, l), g2.edge(rr, rr))
}

// pairOK checks the edges between (l, a) in g1 and (rr, b) in g2, where
// a↔b is already mapped.
func (r commonRule) pairOK(g1, g2 *index, l, a, rr, b int) bool {
	if !r.edgesOK(g1.edge(l, a), g2.edge(rr, b)) {
		return false
	}
	if g1.directed {
		return r.edgesOK(g1.edge(a, l), g2.edge(b, rr))
	}

	return true
}

func (r commonRule) feasible(s *state, l, rr int) bool {
	g1, g2 := s.g1, s.g2
	if !r.vertexOK(g1, g2, l, rr) {
		return false
	}

	// Mapped neighbours of l cover every edge present in g1; with full
	// induction the mapped neighbours of rr catch edges present only in g2.
	for _, a := range g1.adj[l] {
		if b := s.core1[a]; b != unmapped && !r.pairOK(g1, g2, l, a, rr, b) {
			return false
		}
	}
	if r.opts.FullInduction {
		for _, b := range g2.adj[rr] {
			if a := s.core2[b]; a != unmapped && !r.pairOK(g1, g2, l, a, rr, b) {
				return false
			}
		}
	}

	return true
}

// consistentWith validates (l, rr) against an explicit pair list, the way
// PreTryPush checks a candidate against the whole pre-fix layer.
func (r commonRule) consistentWith(g1, g2 *index, l, rr int, pinned []pinnedPair) bool {
	if !r.vertexOK(g1, g2, l, rr) {
		return false
	}
	for _, p := range pinned {
		if p.l == l || p.r == rr {
			return false
		}
		if !r.pairOK(g1, g2, l, p.l, rr, p.r) {
			return false
		}
	}

	return true
}
