// Package builder provides deterministic graph fixtures for the matchers in
// package morph: canonical topologies, seeded random graphs, label schemes
// and isomorphic copies under a random renaming.
//
// What:
//
//   - Constructors: Cycle, Path, Star, Wheel, Complete, Grid, RandomSparse.
//     Each is a Constructor closure run by BuildGraph or Apply; ByName
//     resolves the short names listed in Kinds.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...), PrefixIDFn
//     ("v0","v1",...), ExcelColumnIDFn ("A",...,"Z","AA",...).
//   - Labels: WithVertexLabels(CyclicLabels(...)) and
//     WithEdgeLabels(ParityLabels) attach labels that morph.VertexLabelEq and
//     morph.EdgeLabelEq compare.
//   - Weights (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//     Core observes them on weighted graphs only.
//   - Permute: an isomorphic copy together with its witness renaming.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order give identical graphs.
//   - Option constructors panic on meaningless values (nil functions, empty
//     alphabets). Constructors never panic; they return sentinel errors
//     wrapped with the constructor name, so errors.Is works end to end.
//   - Directed graphs: Cycle and Path emit oriented arcs; Star, Wheel
//     spokes, Complete and Grid emit both arcs per edge.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithPrefixIDs("h")},
//		builder.RandomSparse(12, 0.3))
//	if err != nil {
//		return err
//	}
//	copy, witness, err := builder.Permute(g, rand.New(rand.NewSource(1)))
package builder
