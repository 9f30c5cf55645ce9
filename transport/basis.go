package transport

// IsSpanningTree reports whether the basic cells of pl form a spanning tree
// of the bipartite origin/destination graph on m+n nodes: exactly m+n-1
// cells and no cycle. Only such plans admit a unique set of potentials.
//
// Nodes 0..m-1 are origins, m..m+n-1 destinations; cycles are detected with
// a disjoint-set forest (path halving, union by rank).
//
// Errors: ErrOutOfRange, ErrDuplicateCell.
//
// Complexity: O((m+n) + len(pl)·α(m+n)).
func (pl Plan) IsSpanningTree(m, n int) (bool, error) {
	if _, err := pl.covered(m, n); err != nil {
		return false, err
	}
	if len(pl) != m+n-1 {
		return false, nil
	}

	parent := make([]int, m+n)
	rank := make([]int, m+n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	for _, v := range pl {
		ru, rv := find(v.Origin), find(m+v.Destination)
		if ru == rv {
			return false, nil // cycle
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	return true, nil
}
