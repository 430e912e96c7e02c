package morph

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// orderKey ranks a not-yet-ordered vertex. The tree keeps the best
// candidate leftmost: most already-ordered neighbours, then highest degree,
// then lowest index.
type orderKey struct {
	conn int
	deg  int
	idx  int
}

func compareOrderKeys(a, b interface{}) int {
	x, y := a.(orderKey), b.(orderKey)
	switch {
	case x.conn != y.conn:
		if x.conn > y.conn {
			return -1
		}
		return 1
	case x.deg != y.deg:
		if x.deg > y.deg {
			return -1
		}
		return 1
	}

	return x.idx - y.idx
}

// vertexOrder returns the traversal order over every vertex of x that is
// not in seeds. Seeds count as already placed, so their neighbours are
// pulled to the front. The result depends only on graph structure.
//
// Complexity: O((V+E) log V) time, O(V) space.
func vertexOrder(x *index, seeds []int) []int {
	n := x.n()
	placed := make([]bool, n)
	conn := make([]int, n)
	for _, s := range seeds {
		placed[s] = true
	}
	for _, s := range seeds {
		for _, w := range x.adj[s] {
			if !placed[w] {
				conn[w]++
			}
		}
	}

	tree := rbt.NewWith(compareOrderKeys)
	for v := 0; v < n; v++ {
		if !placed[v] {
			tree.Put(orderKey{conn: conn[v], deg: x.degree(v), idx: v}, v)
		}
	}

	out := make([]int, 0, tree.Size())
	for !tree.Empty() {
		k := tree.Left().Key.(orderKey)
		tree.Remove(k)
		placed[k.idx] = true
		out = append(out, k.idx)

		for _, w := range x.adj[k.idx] {
			if placed[w] {
				continue
			}
			tree.Remove(orderKey{conn: conn[w], deg: x.degree(w), idx: w})
			conn[w]++
			tree.Put(orderKey{conn: conn[w], deg: x.degree(w), idx: w}, w)
		}
	}

	return out
}
