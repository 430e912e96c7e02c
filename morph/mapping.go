package morph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvmorph/core"
)

// Pair is one correspondence Left ↔ Right (domain ↔ codomain for VF2).
type Pair struct {
	Left  string
	Right string
}

// Mapping is a read-only injective correspondence between two graphs.
//
// Mappings handed to a Callback or yielded by an iterator are views over the
// live search state: they are valid only until the callback returns or the
// iterator advances. Clone materialises a stable copy.
type Mapping interface {
	// Len returns the number of mapped pairs.
	Len() int

	// Get returns the image of a left vertex.
	Get(left string) (string, bool)

	// GetInverse returns the preimage of a right vertex.
	GetInverse(right string) (string, bool)

	// Pairs returns all pairs sorted by Left.
	Pairs() []Pair

	// String renders "l,r l,r ..." sorted by Left.
	String() string
}

// formatPairs renders pairs as "l,r l,r".
func formatPairs(ps []Pair) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.Left)
		b.WriteByte(',')
		b.WriteString(p.Right)
	}

	return b.String()
}

// stateView exposes a live search state as a Mapping.
type stateView struct {
	st *state
}

func (v *stateView) Len() int { return v.st.size() }

func (v *stateView) Get(left string) (string, bool) {
	i, ok := v.st.g1.lookup(left)
	if !ok || !v.st.isMapped(i) {
		return "", false
	}
	return v.st.g2.ids[v.st.get(i)], true
}

func (v *stateView) GetInverse(right string) (string, bool) {
	j, ok := v.st.g2.lookup(right)
	if !ok || v.st.getInverse(j) == unmapped {
		return "", false
	}
	return v.st.g1.ids[v.st.getInverse(j)], true
}

// Pairs walks core1 in index order, which is lexicographic Left order.
func (v *stateView) Pairs() []Pair {
	out := make([]Pair, 0, v.st.size())
	for i, j := range v.st.core1 {
		if j != unmapped {
			out = append(out, Pair{Left: v.st.g1.ids[i], Right: v.st.g2.ids[j]})
		}
	}

	return out
}

func (v *stateView) String() string { return formatPairs(v.Pairs()) }

// key is an unambiguous identity of the current pair set, independent of
// the characters used in vertex IDs.
func (v *stateView) key() string {
	var b strings.Builder
	for i, j := range v.st.core1 {
		if j != unmapped {
			fmt.Fprintf(&b, "%d:%d;", i, j)
		}
	}

	return b.String()
}

// Map is a materialised Mapping with forward and inverse lookup. It is
// safe to keep after the search that produced it has moved on.
type Map struct {
	fwd   map[string]string
	bwd   map[string]string
	pairs []Pair
}

// NewMap builds a Map from explicit pairs.
// Errors: ErrNotInjective if a Left or Right vertex appears twice.
func NewMap(pairs ...Pair) (*Map, error) {
	m := &Map{
		fwd:   make(map[string]string, len(pairs)),
		bwd:   make(map[string]string, len(pairs)),
		pairs: make([]Pair, 0, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := m.fwd[p.Left]; dup {
			return nil, fmt.Errorf("morph: NewMap: left %q twice: %w", p.Left, ErrNotInjective)
		}
		if _, dup := m.bwd[p.Right]; dup {
			return nil, fmt.Errorf("morph: NewMap: right %q twice: %w", p.Right, ErrNotInjective)
		}
		m.fwd[p.Left] = p.Right
		m.bwd[p.Right] = p.Left
		m.pairs = append(m.pairs, p)
	}
	sort.Slice(m.pairs, func(i, j int) bool { return m.pairs[i].Left < m.pairs[j].Left })

	return m, nil
}

// Clone materialises any Mapping into a Map. A *Map is immutable, so it is
// returned as is rather than copied.
func Clone(m Mapping) *Map {
	if mm, ok := m.(*Map); ok {
		return mm
	}
	ps := m.Pairs()
	out := &Map{
		fwd:   make(map[string]string, len(ps)),
		bwd:   make(map[string]string, len(ps)),
		pairs: ps,
	}
	for _, p := range ps {
		out.fwd[p.Left] = p.Right
		out.bwd[p.Right] = p.Left
	}
	sort.Slice(out.pairs, func(i, j int) bool { return out.pairs[i].Left < out.pairs[j].Left })

	return out
}

func (m *Map) Len() int { return len(m.pairs) }

func (m *Map) Get(left string) (string, bool) {
	r, ok := m.fwd[left]
	return r, ok
}

func (m *Map) GetInverse(right string) (string, bool) {
	l, ok := m.bwd[right]
	return l, ok
}

// Pairs returns a copy of the pairs sorted by Left.
func (m *Map) Pairs() []Pair {
	out := make([]Pair, len(m.pairs))
	copy(out, m.pairs)

	return out
}

func (m *Map) String() string { return formatPairs(m.pairs) }

// Forward exposes the mapping as a property-map style lookup function.
func (m *Map) Forward() func(left string) (string, bool) { return m.Get }

// Backward exposes the inverse direction as a lookup function.
func (m *Map) Backward() func(right string) (string, bool) { return m.GetInverse }

// Image returns the subgraph of g induced by the mapped Right vertices.
func (m *Map) Image(g *core.Graph) *core.Graph {
	keep := make(map[string]bool, len(m.bwd))
	for r := range m.bwd {
		keep[r] = true
	}

	return core.InducedSubgraph(g, keep)
}

// Preimage returns the subgraph of g induced by the mapped Left vertices.
func (m *Map) Preimage(g *core.Graph) *core.Graph {
	keep := make(map[string]bool, len(m.fwd))
	for l := range m.fwd {
		keep[l] = true
	}

	return core.InducedSubgraph(g, keep)
}

// inverse presents a Mapping with Left and Right swapped, without copying.
type inverse struct {
	m Mapping
}

// Inverse returns the swapped view of m. Inverting twice returns m itself.
func Inverse(m Mapping) Mapping {
	if iv, ok := m.(inverse); ok {
		return iv.m
	}
	return inverse{m: m}
}

func (iv inverse) Len() int { return iv.m.Len() }

func (iv inverse) Get(left string) (string, bool) { return iv.m.GetInverse(left) }

func (iv inverse) GetInverse(right string) (string, bool) { return iv.m.Get(right) }

func (iv inverse) Pairs() []Pair {
	ps := iv.m.Pairs()
	for i, p := range ps {
		ps[i] = Pair{Left: p.Right, Right: p.Left}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].Left < ps[j].Left })

	return ps
}

func (iv inverse) String() string { return formatPairs(iv.Pairs()) }
