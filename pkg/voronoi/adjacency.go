package voronoi

import (
	"math"
	"sort"
)

type endpoint struct {
	at   Vertex
	edge int
}

// linkNeighbours fills Neighbours of every edge with the other edges sharing
// one of its endpoints, where endpoints closer than eps on both axes count as
// the same vertex. Edge IDs must be their indices in edges. It returns the
// number of distinct vertices found.
func linkNeighbours(edges []*Edge, eps float64) int {
	ends := make([]endpoint, 0, 2*len(edges))
	for i, e := range edges {
		ends = append(ends, endpoint{at: e.Start, edge: i}, endpoint{at: e.End, edge: i})
	}
	sort.Slice(ends, func(i, j int) bool {
		if ends[i].at.X != ends[j].at.X {
			return ends[i].at.X < ends[j].at.X
		}
		return ends[i].at.Y < ends[j].at.Y
	})

	groups := newUnionFind(len(ends))
	for i := range ends {
		for j := i + 1; j < len(ends) && ends[j].at.X-ends[i].at.X <= eps; j++ {
			if math.Abs(ends[j].at.Y-ends[i].at.Y) <= eps {
				groups.union(i, j)
			}
		}
	}

	incident := make(map[int][]int)
	for i, end := range ends {
		root := groups.find(i)
		incident[root] = append(incident[root], end.edge)
	}

	neighbours := make([]map[int]struct{}, len(edges))
	for i := range neighbours {
		neighbours[i] = make(map[int]struct{})
	}
	for _, ids := range incident {
		for _, a := range ids {
			for _, b := range ids {
				if a != b {
					neighbours[a][b] = struct{}{}
				}
			}
		}
	}

	for i, e := range edges {
		ids := make([]int, 0, len(neighbours[i]))
		for id := range neighbours[i] {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		e.Neighbours = make([]*Edge, len(ids))
		for k, id := range ids {
			e.Neighbours[k] = edges[id]
		}
	}
	return len(incident)
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
