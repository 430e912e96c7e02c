package morph

import "github.com/katalvlaran/lvmorph/core"

// AndVertex composes vertex predicates by logical AND. Nil entries are
// skipped; with no non-nil entries the result is nil (always true).
func AndVertex(preds ...VertexPredicate) VertexPredicate {
	var live []VertexPredicate
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	return func(a, b *core.Vertex) bool {
		for _, p := range live {
			if !p(a, b) {
				return false
			}
		}
		return true
	}
}

// AndEdge composes edge predicates by logical AND, like AndVertex.
func AndEdge(preds ...EdgePredicate) EdgePredicate {
	var live []EdgePredicate
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}

	return func(a, b *core.Edge) bool {
		for _, p := range live {
			if !p(a, b) {
				return false
			}
		}
		return true
	}
}

// VertexLabelEq accepts vertices with equal labels.
func VertexLabelEq(a, b *core.Vertex) bool { return a.Label == b.Label }

// VertexIDEq accepts vertices with equal IDs (name equality).
func VertexIDEq(a, b *core.Vertex) bool { return a.ID == b.ID }

// EdgeLabelEq accepts edges with equal labels.
func EdgeLabelEq(a, b *core.Edge) bool { return a.Label == b.Label }

// EdgeWeightEq accepts edges with equal weights.
func EdgeWeightEq(a, b *core.Edge) bool { return a.Weight == b.Weight }
