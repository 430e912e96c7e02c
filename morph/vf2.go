package morph

import (
	"fmt"
	"iter"
	"time"

	"github.com/katalvlaran/lvmorph/core"
)

// Matcher enumerates complete VF2 mappings from a domain graph into a
// codomain graph under one Mode. Both graphs are snapshotted at
// construction; later mutation of the graphs does not affect the Matcher.
//
// A Matcher may run many searches, one at a time.
type Matcher struct {
	mode     Mode
	dom, cod *index
	opts     Options
	rule     vf2Rule
	order    []int

	running bool
	stats   Stats
	err     error
}

// NewMatcher validates the inputs and prepares a Matcher.
//
// Errors:
//   - ErrUnknownMode       if mode is not one of the defined constants.
//   - ErrGraphNil          if either graph is nil.
//   - ErrDirectedMismatch  if exactly one graph is directed.
//   - ErrMultigraph        if either graph holds parallel edges.
func NewMatcher(mode Mode, domain, codomain *core.Graph, opts ...Option) (*Matcher, error) {
	if !mode.valid() {
		return nil, fmt.Errorf("morph: NewMatcher(%d): %w", mode, ErrUnknownMode)
	}
	dom, err := newIndex(domain)
	if err != nil {
		return nil, fmt.Errorf("morph: NewMatcher: domain: %w", err)
	}
	cod, err := newIndex(codomain)
	if err != nil {
		return nil, fmt.Errorf("morph: NewMatcher: codomain: %w", err)
	}
	if dom.directed != cod.directed {
		return nil, fmt.Errorf("morph: NewMatcher: %w", ErrDirectedMismatch)
	}

	m := &Matcher{
		mode:  mode,
		dom:   dom,
		cod:   cod,
		opts:  resolveOptions(opts),
		order: vertexOrder(dom, nil),
	}
	m.rule = vf2Rule{mode: mode, opts: &m.opts}

	return m, nil
}

// Mode returns the search mode.
func (m *Matcher) Mode() Mode { return m.mode }

// Stats returns the counters of the most recent search.
func (m *Matcher) Stats() Stats { return m.stats }

// Err returns the error that ended the most recent search (context
// cancellation), or nil.
func (m *Matcher) Err() error { return m.err }

// Enumerate runs one full search, handing every complete mapping to cb until
// the search is exhausted or cb returns Stop. "No match" is not an error.
// The only error is a cancelled context.
func (m *Matcher) Enumerate(cb Callback) error {
	for mp := range m.All() {
		if cb(mp, m.dom.g, m.cod.g) == Stop {
			break
		}
	}

	return m.err
}

// All returns the search as a lazy, finite, non-restartable sequence of
// mappings. Each yielded Mapping is a live view, valid until the next
// iteration step. Check Err after the loop for cancellation.
func (m *Matcher) All() iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		m.begin()
		defer m.end()

		s := m.newSearch()
		view := &stateView{st: s.st}
		for s.next() {
			m.stats.Reported++
			if !yield(view) {
				break
			}
		}
		m.err = s.err
	}
}

func (m *Matcher) begin() {
	if m.running {
		panic(fmt.Errorf("morph: Matcher reentered: %w", ErrBusy))
	}
	m.running = true
	m.stats = Stats{}
	m.err = nil
}

func (m *Matcher) end() {
	m.running = false
	if m.opts.Logger != nil {
		m.opts.Logger.Debug("vf2 search finished",
			"mode", m.mode,
			"domain", m.dom.n(),
			"codomain", m.cod.n(),
			"pushes", m.stats.Pushes,
			"rejected", m.stats.Rejected,
			"reported", m.stats.Reported,
			"err", m.err,
		)
	}
}

// admissible rejects size combinations that cannot produce any mapping.
func (m *Matcher) admissible() bool {
	n1, n2 := m.dom.n(), m.cod.n()
	e1, e2 := m.dom.edgeCount, m.cod.edgeCount
	switch m.mode {
	case Isomorphism:
		return n1 == n2 && e1 == e2
	default:
		return n1 <= n2 && e1 <= e2
	}
}

// vf2Frame is one recursion level: the domain vertex placed at this depth
// and the cursor over its codomain candidates.
type vf2Frame struct {
	v1     int
	cands  []int
	next   int
	pushed bool
}

// vf2Search drives one enumeration with an explicit frame stack. The
// frames slice is an arena indexed by depth; its backing array and the
// per-frame candidate buffers are reused across backtracking.
type vf2Search struct {
	m       *Matcher
	st      *state
	frames  []vf2Frame
	started bool
	done    bool
	start   time.Time
	err     error
}

func (m *Matcher) newSearch() *vf2Search {
	s := &vf2Search{
		m:      m,
		st:     newState(m.dom, m.cod, m.rule, &m.stats),
		frames: make([]vf2Frame, 0, m.dom.n()),
		start:  time.Now(),
	}
	if !m.admissible() {
		s.done = true
	}

	return s
}

// next advances to the following complete mapping. It returns false once
// the search is exhausted or cancelled.
func (s *vf2Search) next() bool {
	defer func() { s.m.stats.Elapsed = time.Since(s.start) }()

	if s.done {
		return false
	}
	n1 := s.m.dom.n()
	if !s.started {
		s.started = true
		if n1 == 0 {
			// The empty mapping is the single result for an empty domain.
			s.done = true
			return true
		}
		s.descend()
	}

	for len(s.frames) > 0 {
		if err := s.m.opts.ctxErr(); err != nil {
			s.err = err
			s.done = true
			return false
		}

		f := &s.frames[len(s.frames)-1]
		if f.pushed {
			s.st.pop()
			f.pushed = false
		}
		if f.next >= len(f.cands) {
			s.frames = s.frames[:len(s.frames)-1]
			continue
		}
		c := f.cands[f.next]
		f.next++
		if !s.st.tryPush(f.v1, c) {
			continue
		}
		f.pushed = true
		if s.st.size() == n1 {
			return true
		}
		s.descend()
	}
	s.done = true

	return false
}

// descend opens the frame for the next domain vertex in the vertex order.
func (s *vf2Search) descend() {
	depth := len(s.frames)
	s.frames = s.frames[:depth+1]
	f := &s.frames[depth]
	f.v1 = s.m.order[depth]
	f.next = 0
	f.pushed = false
	f.cands = s.st.candidates(f.v1, s.m.mode != Monomorphism, f.cands)
}

// Isomorphisms enumerates every isomorphism a → b.
func Isomorphisms(a, b *core.Graph, cb Callback, opts ...Option) error {
	return enumerate(Isomorphism, a, b, cb, opts)
}

// SubgraphIsomorphisms enumerates every induced-subgraph isomorphism
// pattern → host.
func SubgraphIsomorphisms(pattern, host *core.Graph, cb Callback, opts ...Option) error {
	return enumerate(InducedSubgraph, pattern, host, cb, opts)
}

// Monomorphisms enumerates every monomorphism pattern → host.
func Monomorphisms(pattern, host *core.Graph, cb Callback, opts ...Option) error {
	return enumerate(Monomorphism, pattern, host, cb, opts)
}

func enumerate(mode Mode, a, b *core.Graph, cb Callback, opts []Option) error {
	m, err := NewMatcher(mode, a, b, opts...)
	if err != nil {
		return err
	}

	return m.Enumerate(cb)
}

// Isomorphic reports whether a and b are isomorphic.
func Isomorphic(a, b *core.Graph, opts ...Option) (bool, error) {
	mp, err := FindFirst(Isomorphism, a, b, opts...)
	if err != nil {
		return false, err
	}

	return mp != nil, nil
}

// FindFirst returns the first mapping found, or nil if there is none.
func FindFirst(mode Mode, a, b *core.Graph, opts ...Option) (*Map, error) {
	var found *Map
	err := enumerate(mode, a, b, func(m Mapping, _, _ *core.Graph) Control {
		found = Clone(m)
		return Stop
	}, opts)
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Count returns the number of mappings of the given mode.
func Count(mode Mode, a, b *core.Graph, opts ...Option) (int, error) {
	lim := Limit(int(^uint(0)>>1), nil)
	if err := enumerate(mode, a, b, lim.Visit, opts); err != nil {
		return lim.Hits(), err
	}

	return lim.Hits(), nil
}
