// Package morph finds structure-preserving correspondences between two
// core.Graph values: VF2 isomorphism, induced subgraph isomorphism and
// monomorphism, plus enumeration of the subgraphs two graphs share.
//
// What:
//
//   - Matcher: VF2 backtracking with terminal-set pruning and look-ahead.
//     Reports complete mappings domain → codomain under one Mode:
//   - Isomorphism: equal sizes, edges mirrored exactly both ways
//   - InducedSubgraph: the image induces a copy of the domain
//   - Monomorphism: domain edges must exist, extra codomain edges allowed
//   - Enumerator: common-subgraph search between Left and Right. Reports
//     every valid correspondence of size >= MinSize, filtered by a Policy
//     (unique pair sets, maximum size only). A LIFO pre-fix layer
//     (PreTryPush/PreForcePush/PrePop/PreForcePop) pins pairs that every
//     later result must contain.
//   - Mapping / Map / Inverse: read-only results, live views during the
//     callback, materialised on Clone.
//   - Limit, Collect, Strings: callback decorators.
//   - Verify, VerifyCommon: independent oracles over the public graph API.
//
// Both searches run on an explicit frame stack, so the callback form
// (Enumerate) and the lazy iterator form (All) share one engine.
//
// Predicates:
//
//   - VertexPredicate / EdgePredicate; nil means always true.
//   - AndVertex / AndEdge compose at runtime.
//   - Stock: VertexLabelEq, VertexIDEq, EdgeLabelEq, EdgeWeightEq.
//
// Determinism:
//
//   - Vertices are indexed in lexicographic ID order; candidates are tried
//     in that order and the vertex order depends only on structure, so
//     every search reports the same sequence on every run.
//
// Complexity:
//
//   - Vertex order: O((V+E) log V) with a red-black tree.
//   - Search: exponential in the worst case; push/pop are O(degree).
//
// Errors:
//
//   - ErrGraphNil, ErrDirectedMismatch, ErrMultigraph, ErrUnknownMode
//     from constructors.
//   - context errors from Enumerate when WithContext is cancelled.
//   - ErrInvalidMapping, ErrNotInjective from Verify / NewMap.
//   - ErrPreLayer, ErrBusy carried by panics on API misuse.
//
// Concurrency:
//
//   - A Matcher or Enumerator runs one search at a time and is not safe
//     for concurrent use. Graphs are snapshotted at construction.
package morph
