// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// label_fn.go - vertex and edge label schemes.
//
// Labels are what morph.VertexLabelEq and morph.EdgeLabelEq compare, so a
// labelled fixture lets tests and the CLI exercise semantic matching without
// hand-written graphs.

package builder

// VertexLabelFn labels the vertex with zero-based index i.
type VertexLabelFn func(i int) string

// EdgeLabelFn labels the edge emitted between vertex indices i and j.
type EdgeLabelFn func(i, j int) string

// CyclicLabels cycles through alphabet by vertex index: 0→alphabet[0],
// 1→alphabet[1], ... Panics on an empty alphabet.
func CyclicLabels(alphabet ...string) VertexLabelFn {
	if len(alphabet) == 0 {
		panic("CyclicLabels: empty alphabet")
	}
	labels := append([]string(nil), alphabet...)
	return func(i int) string {
		return labels[i%len(labels)]
	}
}

// ParityLabels labels an edge "even" or "odd" by its smaller endpoint
// index. On an even cycle or a path the labels alternate.
func ParityLabels(i, j int) string {
	if min(i, j)%2 == 0 {
		return "even"
	}
	return "odd"
}
