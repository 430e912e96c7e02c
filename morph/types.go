package morph

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvmorph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to a constructor.
	ErrGraphNil = errors.New("morph: graph is nil")

	// ErrDirectedMismatch indicates one graph is directed and the other is not.
	ErrDirectedMismatch = errors.New("morph: directed and undirected graphs cannot be matched")

	// ErrMultigraph indicates a graph holds parallel edges; the engine needs simple graphs.
	ErrMultigraph = errors.New("morph: parallel edges are not supported")

	// ErrUnknownMode indicates a Mode value outside the defined constants.
	ErrUnknownMode = errors.New("morph: unknown mode")

	// ErrInvalidMapping is returned by Verify and VerifyCommon when a mapping
	// does not preserve structure or labels.
	ErrInvalidMapping = errors.New("morph: invalid mapping")

	// ErrNotInjective indicates a pair list maps two vertices onto one.
	ErrNotInjective = errors.New("morph: mapping is not injective")

	// ErrPreLayer marks misuse of the pre-seed stack. It is only ever
	// carried by a panic value.
	ErrPreLayer = errors.New("morph: pre-seed stack misuse")

	// ErrBusy marks a reentrant search or a pre-seed mutation during a
	// search. It is only ever carried by a panic value.
	ErrBusy = errors.New("morph: search already in progress")
)

// Mode selects the structure-preservation contract of a VF2 search.
type Mode uint8

const (
	// Isomorphism requires equal sizes and edges mirrored exactly both ways.
	Isomorphism Mode = iota

	// InducedSubgraph maps the domain onto an induced subgraph of the
	// codomain: edges are mirrored exactly on the image.
	InducedSubgraph

	// Monomorphism only requires domain edges to exist in the codomain;
	// extra codomain edges are tolerated.
	Monomorphism
)

// SubgraphIsomorphism is the classical name of InducedSubgraph.
const SubgraphIsomorphism = InducedSubgraph

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Isomorphism:
		return "isomorphism"
	case InducedSubgraph:
		return "induced-subgraph"
	case Monomorphism:
		return "monomorphism"
	}

	return "unknown"
}

func (m Mode) valid() bool { return m <= Monomorphism }

// Control tells a search whether to keep going after a reported result.
type Control uint8

const (
	// Continue asks the search for the next result.
	Continue Control = iota

	// Stop unwinds the whole search immediately.
	Stop
)

// String returns "continue" or "stop".
func (c Control) String() string {
	if c == Stop {
		return "stop"
	}
	return "continue"
}

// Callback receives each reported mapping together with the two graphs it
// relates (domain/codomain or left/right). The Mapping is only valid for the
// duration of the call; use Clone to keep it.
type Callback func(m Mapping, a, b *core.Graph) Control

// VertexPredicate decides whether two vertices may correspond.
type VertexPredicate func(a, b *core.Vertex) bool

// EdgePredicate decides whether two edges may correspond.
type EdgePredicate func(a, b *core.Edge) bool

// Stats counts the work done by the most recent search.
type Stats struct {
	// Pushes is the number of accepted extensions of the partial mapping.
	Pushes int

	// Rejected is the number of candidate pairs refused by the consistency rule.
	Rejected int

	// Reported is the number of results handed to the caller.
	Reported int

	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Option configures a Matcher or an Enumerator.
type Option func(*Options)

// Options holds configurable parameters shared by both search engines.
type Options struct {
	// Ctx allows cancellation; it is polled once per search step.
	Ctx context.Context

	// VertexEq, if non-nil, must accept every mapped vertex pair.
	VertexEq VertexPredicate

	// EdgeEq, if non-nil, must accept every mapped edge pair.
	EdgeEq EdgePredicate

	// FullInduction (Enumerator only): an edge present on exactly one side
	// rejects the pair when true, and is ignored when false.
	FullInduction bool

	// MinSize (Enumerator only) is the smallest mapping size reported.
	MinSize int

	// Logger receives a debug summary per search; nil disables logging.
	Logger *log.Logger
}

// Defaults for Options.
const (
	DefaultMinSize       = 2
	DefaultFullInduction = true
)

// DefaultOptions returns Options with a background context, no predicates
// (pure structural match), full induction, MinSize 2 and no logger.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		FullInduction: DefaultFullInduction,
		MinSize:       DefaultMinSize,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithVertexPredicate adds a vertex predicate; repeated use ANDs them.
func WithVertexPredicate(p VertexPredicate) Option {
	return func(o *Options) { o.VertexEq = AndVertex(o.VertexEq, p) }
}

// WithEdgePredicate adds an edge predicate; repeated use ANDs them.
func WithEdgePredicate(p EdgePredicate) Option {
	return func(o *Options) { o.EdgeEq = AndEdge(o.EdgeEq, p) }
}

// WithLabels is shorthand for vertex and edge label equality.
func WithLabels() Option {
	return func(o *Options) {
		WithVertexPredicate(VertexLabelEq)(o)
		WithEdgePredicate(EdgeLabelEq)(o)
	}
}

// WithFullInduction toggles full induction for common-subgraph search.
func WithFullInduction(on bool) Option {
	return func(o *Options) { o.FullInduction = on }
}

// WithMinSize sets the smallest reported common-subgraph size.
// Panics if n < 1.
func WithMinSize(n int) Option {
	if n < 1 {
		panic("morph: WithMinSize(n<1)")
	}
	return func(o *Options) { o.MinSize = n }
}

// WithLogger installs a charmbracelet logger for debug summaries.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// ctxErr polls the context without blocking.
func (o *Options) ctxErr() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

// vertexOK applies the vertex predicate.
func (o *Options) vertexOK(a, b *core.Vertex) bool {
	return o.VertexEq == nil || o.VertexEq(a, b)
}

// edgeOK applies the edge predicate.
func (o *Options) edgeOK(a, b *core.Edge) bool {
	return o.EdgeEq == nil || o.EdgeEq(a, b)
}
