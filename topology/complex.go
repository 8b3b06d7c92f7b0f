// Package topology provides a small simplicial machinery over graphs
// (1-dimensional complexes): Betti numbers and a connection test phrased as
// a cycle-rank increase. It exists as an independent cross-check on the
// union-find win detector, not as the production path.
package topology

// edge is an unordered vertex pair, normalized to lo < hi.
type edge struct {
	lo, hi int
}

// Complex is a finite 1-dimensional simplicial complex.
type Complex struct {
	verts map[int]struct{}
	edges map[edge]struct{}
}

func New() *Complex {
	return &Complex{
		verts: make(map[int]struct{}),
		edges: make(map[edge]struct{}),
	}
}

// AddVertex adds a 0-cell.
func (c *Complex) AddVertex(v int) {
	c.verts[v] = struct{}{}
}

// AddEdge adds a 1-cell together with its endpoints, keeping the complex
// closed. Self-loops are ignored.
func (c *Complex) AddEdge(u, v int) {
	if u == v {
		return
	}
	if u > v {
		u, v = v, u
	}
	c.verts[u] = struct{}{}
	c.verts[v] = struct{}{}
	c.edges[edge{u, v}] = struct{}{}
}

func (c *Complex) Clone() *Complex {
	out := New()
	for v := range c.verts {
		out.verts[v] = struct{}{}
	}
	for e := range c.edges {
		out.edges[e] = struct{}{}
	}
	return out
}

// Betti returns the rank of the dim-th homology group. For a graph, b0 is
// the number of connected components and b1 the cycle rank E - V + b0;
// everything above dimension 1 vanishes.
func (c *Complex) Betti(dim int) int {
	switch dim {
	case 0:
		return c.components()
	case 1:
		return len(c.edges) - len(c.verts) + c.components()
	default:
		return 0
	}
}

func (c *Complex) components() int {
	adjacency := make(map[int][]int, len(c.verts))
	for e := range c.edges {
		adjacency[e.lo] = append(adjacency[e.lo], e.hi)
		adjacency[e.hi] = append(adjacency[e.hi], e.lo)
	}

	visited := make(map[int]bool, len(c.verts))
	count := 0
	for v := range c.verts {
		if visited[v] {
			continue
		}
		count++
		stack := []int{v}
		visited[v] = true
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nb := range adjacency[current] {
				if !visited[nb] {
					visited[nb] = true
					stack = append(stack, nb)
				}
			}
		}
	}
	return count
}

// Connected reports whether u and v are joined through the complex: adding
// an edge directly between them raises the first Betti number exactly when
// a path already exists (otherwise it just merges two components).
func (c *Complex) Connected(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	if _, ok := c.edges[edge{u, v}]; ok {
		return true
	}
	before := c.Betti(1)
	bridged := c.Clone()
	bridged.AddVertex(u)
	bridged.AddVertex(v)
	bridged.AddEdge(u, v)
	return bridged.Betti(1) > before
}
