package morph

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/katalvlaran/lvmorph/core"
)

// Policy selects the post-filters applied to common-subgraph results.
// Flags compose with |.
type Policy uint8

const (
	// PolicyUnique suppresses a result whose exact pair set was already
	// reported in the same call.
	PolicyUnique Policy = 1 << iota

	// PolicyMaximum buffers results and emits only those of the largest
	// size observed, once the search is exhausted.
	PolicyMaximum
)

// Named presets.
const (
	CommonSubgraphs              Policy = 0
	CommonSubgraphsUnique               = PolicyUnique
	CommonSubgraphsMaximum              = PolicyMaximum
	CommonSubgraphsMaximumUnique        = PolicyMaximum | PolicyUnique
)

// String renders the policy as its preset name.
func (p Policy) String() string {
	var b strings.Builder
	b.WriteString("common")
	if p&PolicyMaximum != 0 {
		b.WriteString("-maximum")
	}
	if p&PolicyUnique != 0 {
		b.WriteString("-unique")
	}

	return b.String()
}

// pinnedPair is one entry of the pre-fix layer.
type pinnedPair struct {
	l, r   int
	forced bool
}

// Enumerator searches correspondences between two graphs whose induced
// subgraphs agree under the configured predicates, at every size from
// MinSize up. Graphs, predicates and the induction flag are fixed at
// construction; the pre-fix layer is mutable between searches.
//
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	left, right *index
	opts        Options
	rule        commonRule
	layer       []pinnedPair

	running bool
	stats   Stats
	err     error
}

// NewEnumerator validates the graphs and prepares an Enumerator.
//
// Errors: ErrGraphNil, ErrDirectedMismatch, ErrMultigraph.
func NewEnumerator(left, right *core.Graph, opts ...Option) (*Enumerator, error) {
	l, err := newIndex(left)
	if err != nil {
		return nil, fmt.Errorf("morph: NewEnumerator: left: %w", err)
	}
	r, err := newIndex(right)
	if err != nil {
		return nil, fmt.Errorf("morph: NewEnumerator: right: %w", err)
	}
	if l.directed != r.directed {
		return nil, fmt.Errorf("morph: NewEnumerator: %w", ErrDirectedMismatch)
	}

	e := &Enumerator{left: l, right: r, opts: resolveOptions(opts)}
	e.rule = commonRule{opts: &e.opts}

	return e, nil
}

// Stats returns the counters of the most recent search.
func (e *Enumerator) Stats() Stats { return e.stats }

// Err returns the error that ended the most recent search, or nil.
func (e *Enumerator) Err() error { return e.err }

// PreLen returns the depth of the pre-fix layer.
func (e *Enumerator) PreLen() int { return len(e.layer) }

// Pinned returns the pre-fix layer bottom to top.
func (e *Enumerator) Pinned() []Pair {
	out := make([]Pair, len(e.layer))
	for i, p := range e.layer {
		out[i] = Pair{Left: e.left.ids[p.l], Right: e.right.ids[p.r]}
	}

	return out
}

// PreTryPush pins (l, r) if the pair is consistent with every pair already
// pinned, under the same rule the search uses. On false the layer is
// unchanged; a vertex that is already pinned also yields false.
//
// Panics on unknown vertex IDs or when called during a search.
func (e *Enumerator) PreTryPush(l, r string) bool {
	li, ri := e.resolve("PreTryPush", l, r)
	if !e.rule.consistentWith(e.left, e.right, li, ri, e.layer) {
		return false
	}
	e.layer = append(e.layer, pinnedPair{l: li, r: ri})

	return true
}

// PreForcePush pins (l, r) without any consistency check. Every later
// result contains the pair.
//
// Panics on unknown vertex IDs, on a vertex that is already pinned, or
// when called during a search.
func (e *Enumerator) PreForcePush(l, r string) {
	li, ri := e.resolve("PreForcePush", l, r)
	for _, p := range e.layer {
		if p.l == li || p.r == ri {
			panic(fmt.Errorf("%w: PreForcePush(%q,%q): vertex already pinned", ErrPreLayer, l, r))
		}
	}
	e.layer = append(e.layer, pinnedPair{l: li, r: ri, forced: true})
}

// PrePop removes the top pair, which must come from PreTryPush.
func (e *Enumerator) PrePop() { e.popLayer("PrePop", false) }

// PreForcePop removes the top pair, which must come from PreForcePush.
func (e *Enumerator) PreForcePop() { e.popLayer("PreForcePop", true) }

func (e *Enumerator) popLayer(op string, forced bool) {
	e.mutable(op)
	n := len(e.layer)
	if n == 0 {
		panic(fmt.Errorf("%w: %s on empty layer", ErrPreLayer, op))
	}
	if e.layer[n-1].forced != forced {
		panic(fmt.Errorf("%w: %s does not match the kind of the top push", ErrPreLayer, op))
	}
	e.layer = e.layer[:n-1]
}

func (e *Enumerator) mutable(op string) {
	if e.running {
		panic(fmt.Errorf("morph: %s during enumeration: %w", op, ErrBusy))
	}
}

func (e *Enumerator) resolve(op, l, r string) (int, int) {
	e.mutable(op)
	li, ok := e.left.lookup(l)
	if !ok {
		panic(fmt.Errorf("%w: %s: left %q: %w", ErrPreLayer, op, l, core.ErrVertexNotFound))
	}
	ri, ok := e.right.lookup(r)
	if !ok {
		panic(fmt.Errorf("%w: %s: right %q: %w", ErrPreLayer, op, r, core.ErrVertexNotFound))
	}

	return li, ri
}

// Enumerate runs one search under the current pre-fix layer and hands
// each result passing policy p to cb. Every result contains the whole
// layer, and the layer itself is reported first when it reaches MinSize.
// Returns the context error if the search was cancelled; with
// PolicyMaximum nothing is emitted in that case.
func (e *Enumerator) Enumerate(p Policy, cb Callback) error {
	for mp := range e.All(p) {
		if cb(mp, e.left.g, e.right.g) == Stop {
			break
		}
	}

	return e.err
}

// All returns the search as a lazy sequence. Without PolicyMaximum the
// yielded Mapping is a live view valid until the next step; with it every
// yielded value is a materialised *Map delivered after the search ends.
func (e *Enumerator) All(p Policy) iter.Seq[Mapping] {
	return func(yield func(Mapping) bool) {
		e.begin()
		defer e.end(p)

		s := e.newSearch()
		view := &stateView{st: s.st}

		var seen map[string]struct{}
		if p&PolicyUnique != 0 {
			seen = make(map[string]struct{})
		}
		var best []*Map
		bestSize := 0

		for s.next() {
			if seen != nil {
				k := view.key()
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
			}
			if p&PolicyMaximum != 0 {
				n := view.Len()
				if n > bestSize {
					best, bestSize = best[:0], n
				}
				if n == bestSize {
					best = append(best, Clone(view))
				}
				continue
			}
			e.stats.Reported++
			if !yield(view) {
				e.err = s.err
				return
			}
		}
		e.err = s.err
		if e.err != nil {
			return
		}

		for _, m := range best {
			e.stats.Reported++
			if !yield(m) {
				return
			}
		}
	}
}

func (e *Enumerator) begin() {
	if e.running {
		panic(fmt.Errorf("morph: Enumerator reentered: %w", ErrBusy))
	}
	e.running = true
	e.stats = Stats{}
	e.err = nil
}

func (e *Enumerator) end(p Policy) {
	e.running = false
	if e.opts.Logger != nil {
		e.opts.Logger.Debug("common-subgraph search finished",
			"policy", p,
			"left", e.left.n(),
			"right", e.right.n(),
			"pinned", len(e.layer),
			"pushes", e.stats.Pushes,
			"rejected", e.stats.Rejected,
			"reported", e.stats.Reported,
			"err", e.err,
		)
	}
}

// commonFrame picks one more Left vertex at an order position past the
// parent's, paired with the Right vertex under the cursor.
type commonFrame struct {
	pos    int
	r      int
	pushed bool
}

// commonSearch is the explicit-stack combination search. Left vertices are
// taken in increasing order position, so each pair set is built exactly once.
type commonSearch struct {
	e       *Enumerator
	st      *state
	order   []int
	frames  []commonFrame
	started bool
	descend bool
	done    bool
	start   time.Time
	err     error
}

func (e *Enumerator) newSearch() *commonSearch {
	st := newState(e.left, e.right, e.rule, &e.stats)
	seeds := make([]int, len(e.layer))
	for i, p := range e.layer {
		st.forcePush(p.l, p.r)
		seeds[i] = p.l
	}
	order := vertexOrder(e.left, seeds)

	s := &commonSearch{
		e:      e,
		st:     st,
		order:  order,
		frames: make([]commonFrame, 0, len(order)+1),
		start:  time.Now(),
	}
	s.frames = append(s.frames, commonFrame{})

	return s
}

// next advances to the following reportable mapping.
func (s *commonSearch) next() bool {
	defer func() { s.e.stats.Elapsed = time.Since(s.start) }()

	if s.done {
		return false
	}
	if !s.started {
		s.started = true
		// A pinned layer that is already large enough is itself a result.
		if s.st.size() >= s.e.opts.MinSize {
			return true
		}
	}
	if s.descend {
		s.descend = false
		s.open()
	}

	n2 := s.e.right.n()
	for len(s.frames) > 0 {
		if err := s.e.opts.ctxErr(); err != nil {
			s.err = err
			s.done = true
			return false
		}

		f := &s.frames[len(s.frames)-1]
		if f.pushed {
			s.st.pop()
			f.pushed = false
			f.r++
		}
		if f.pos >= len(s.order) {
			s.frames = s.frames[:len(s.frames)-1]
			continue
		}
		if f.r >= n2 {
			f.pos++
			f.r = 0
			continue
		}
		l := s.order[f.pos]
		if s.st.getInverse(f.r) != unmapped || !s.st.tryPush(l, f.r) {
			f.r++
			continue
		}
		f.pushed = true
		if s.st.size() >= s.e.opts.MinSize {
			s.descend = true
			return true
		}
		s.open()
	}
	s.done = true

	return false
}

// open pushes a child frame starting after the top frame's position.
func (s *commonSearch) open() {
	top := s.frames[len(s.frames)-1]
	s.frames = append(s.frames, commonFrame{pos: top.pos + 1})
}
