package morph

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// Verify re-checks a complete VF2 mapping against the public graph API,
// without any of the search machinery. It returns nil when m is a valid
// mapping of the given mode, or an error wrapping ErrInvalidMapping that
// names the first violation.
//
// Complexity: O(n²) edge lookups for n = |domain|.
func Verify(mode Mode, domain, codomain *core.Graph, m Mapping, opts ...Option) error {
	if !mode.valid() {
		return fmt.Errorf("morph: Verify(%d): %w", mode, ErrUnknownMode)
	}
	if domain == nil || codomain == nil {
		return fmt.Errorf("morph: Verify: %w", ErrGraphNil)
	}
	if domain.Directed() != codomain.Directed() {
		return fmt.Errorf("morph: Verify: %w", ErrDirectedMismatch)
	}
	o := resolveOptions(opts)

	dom := domain.Vertices()
	if m.Len() != len(dom) {
		return invalid("mapping has %d pairs, domain has %d vertices", m.Len(), len(dom))
	}
	if mode == Isomorphism && codomain.VertexCount() != len(dom) {
		return invalid("isomorphism between %d and %d vertices", len(dom), codomain.VertexCount())
	}

	img, err := checkPairs(domain, codomain, dom, m, &o)
	if err != nil {
		return err
	}

	exact := mode != Monomorphism
	for _, u := range dom {
		for _, v := range dom {
			if !domain.Directed() && v < u {
				continue
			}
			e1 := firstEdge(domain, u, v)
			e2 := firstEdge(codomain, img[u], img[v])
			switch {
			case e1 != nil && e2 == nil:
				return invalid("edge %s-%s has no image", u, v)
			case e1 == nil && e2 != nil && exact:
				return invalid("edge %s-%s has no preimage", img[u], img[v])
			case e1 != nil && !o.edgeOK(e1, e2):
				return invalid("edge %s-%s rejected by predicate", u, v)
			}
		}
	}

	return nil
}

// VerifyCommon re-checks a common-subgraph result: injective, vertex
// predicate on every pair, and edges agreeing under the configured
// induction mode.
func VerifyCommon(left, right *core.Graph, m Mapping, opts ...Option) error {
	if left == nil || right == nil {
		return fmt.Errorf("morph: VerifyCommon: %w", ErrGraphNil)
	}
	if left.Directed() != right.Directed() {
		return fmt.Errorf("morph: VerifyCommon: %w", ErrDirectedMismatch)
	}
	o := resolveOptions(opts)

	pairs := m.Pairs()
	ls := make([]string, len(pairs))
	for i, p := range pairs {
		ls[i] = p.Left
	}
	img, err := checkPairs(left, right, ls, m, &o)
	if err != nil {
		return err
	}

	for _, u := range ls {
		for _, v := range ls {
			if !left.Directed() && v < u {
				continue
			}
			e1 := firstEdge(left, u, v)
			e2 := firstEdge(right, img[u], img[v])
			switch {
			case e1 != nil && e2 != nil:
				if !o.edgeOK(e1, e2) {
					return invalid("edges %s-%s / %s-%s rejected by predicate", u, v, img[u], img[v])
				}
			case e1 != nil || e2 != nil:
				if o.FullInduction {
					return invalid("edge between %s-%s / %s-%s on one side only", u, v, img[u], img[v])
				}
			}
		}
	}

	return nil
}

// checkPairs resolves the image of every left vertex and checks existence,
// injectivity and the vertex predicate.
func checkPairs(a, b *core.Graph, ls []string, m Mapping, o *Options) (map[string]string, error) {
	img := make(map[string]string, len(ls))
	used := make(map[string]string, len(ls))
	for _, u := range ls {
		r, ok := m.Get(u)
		if !ok {
			return nil, invalid("vertex %s is unmapped", u)
		}
		if prev, dup := used[r]; dup {
			return nil, fmt.Errorf("morph: %s and %s both map to %s: %w", prev, u, r, ErrNotInjective)
		}
		va, err := a.Vertex(u)
		if err != nil {
			return nil, invalid("left vertex %s: %v", u, err)
		}
		vb, err := b.Vertex(r)
		if err != nil {
			return nil, invalid("right vertex %s: %v", r, err)
		}
		if !o.vertexOK(va, vb) {
			return nil, invalid("pair %s,%s rejected by predicate", u, r)
		}
		used[r] = u
		img[u] = r
	}

	return img, nil
}

func firstEdge(g *core.Graph, from, to string) *core.Edge {
	if es := g.EdgesBetween(from, to); len(es) > 0 {
		return es[0]
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("morph: %s: %w", fmt.Sprintf(format, args...), ErrInvalidMapping)
}
