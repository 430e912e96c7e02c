// Package graphfile reads and writes the TOML graph files consumed by the
// lvmorph command.
//
// A file holds named graphs under the "graph" table:
//
//	[graph.domain]
//	directed = false
//
//	[[graph.domain.vertex]]
//	id = "a"
//	label = "C"
//
//	[[graph.domain.edge]]
//	from = "a"
//	to = "b"
//	label = "single"
//
// Vertices referenced only by edges are created implicitly. Unknown keys are
// rejected so that a typo never silently changes a search.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmorph/core"
)

var (
	// ErrMissingGraph is returned when a requested graph name is absent.
	ErrMissingGraph = errors.New("graphfile: graph not found")

	// ErrUnknownKey is returned when the document has keys this format does
	// not define.
	ErrUnknownKey = errors.New("graphfile: unknown key")

	// ErrBadEdge is returned for an edge with an empty endpoint.
	ErrBadEdge = errors.New("graphfile: edge endpoint missing")
)

// Vertex is one [[graph.<name>.vertex]] entry.
type Vertex struct {
	ID    string `toml:"id"`
	Label string `toml:"label,omitempty"`
}

// Edge is one [[graph.<name>.edge]] entry. Weight requires weighted = true.
type Edge struct {
	From   string `toml:"from"`
	To     string `toml:"to"`
	Label  string `toml:"label,omitempty"`
	Weight int64  `toml:"weight,omitempty"`
}

// Graph is the serialised form of a core.Graph.
type Graph struct {
	Directed bool     `toml:"directed"`
	Weighted bool     `toml:"weighted,omitempty"`
	Loops    bool     `toml:"loops,omitempty"`
	Vertices []Vertex `toml:"vertex,omitempty"`
	Edges    []Edge   `toml:"edge,omitempty"`
}

// File is a whole document.
type File struct {
	Graphs map[string]Graph `toml:"graph"`
}

// Decode parses a document from r.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Load decodes the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Encode writes f to w.
func Encode(w io.Writer, f *File) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return nil
}

// Names returns the graph names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Graphs))
	for name := range f.Graphs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Graph builds the named graph.
func (f *File) Graph(name string) (*core.Graph, error) {
	desc, ok := f.Graphs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrMissingGraph, name, f.Names())
	}
	g, err := desc.Build()
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", name, err)
	}

	return g, nil
}

// Build materialises the graph. Vertices are added in file order before
// any edge, so a vertex entry may label an endpoint that an edge also names.
func (s Graph) Build() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(s.Directed)}
	if s.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	if s.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, v := range s.Vertices {
		if err := g.AddVertex(v.ID, core.WithVertexLabel(v.Label)); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", v.ID, err)
		}
	}
	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edge #%d: %w", i, ErrBadEdge)
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, core.WithEdgeLabel(e.Label)); err != nil {
			return nil, fmt.Errorf("edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// FromCore captures g in serialisable form: vertices in sorted ID order,
// edges in creation order.
func FromCore(g *core.Graph) Graph {
	out := Graph{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Loops:    g.Looped(),
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		out.Vertices = append(out.Vertices, Vertex{ID: id, Label: v.Label})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{From: e.From, To: e.To, Label: e.Label, Weight: e.Weight})
	}

	return out
}
