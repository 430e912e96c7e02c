// Package lvmorph is a graph morphism search engine: it finds structure and
// label preserving correspondences between two graphs and enumerates the
// substructures they share.
//
// What is inside?
//
//	core/     - Graph, Vertex, Edge: thread-safe labelled (multi)graphs
//	morph/    - VF2 isomorphism, induced subgraph isomorphism and
//	            monomorphism; common-subgraph enumeration with a pre-seed
//	            stack; Limit, Inverse, Verify and property views
//	builder/  - deterministic fixtures: cycles, paths, stars, wheels,
//	            complete graphs, grids, G(n,p), label schemes, Permute
//	cmd/lvmorph - command line front end (iso, subiso, mono, common, gen)
//
// Quick ASCII example:
//
//	pattern   a-b-c          host    l1
//	                                 |
//	                              l2-h-l3
//
//	morph.SubgraphIsomorphisms(pattern, host, cb) reports the six induced
//	placements of the path, each as "a,l1 b,h c,l2"-style pairs.
//
//	go get github.com/katalvlaran/lvmorph
package lvmorph
