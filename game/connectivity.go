package game

// connectivity tracks one player's side-to-side reachability with a
// union-find over territory ids plus two virtual side elements. Ownership
// is one-way, so merges never have to be undone.
type connectivity struct {
	player Player
	parent []int
	rank   []uint8
	home   int // virtual element for the player's first side
	away   int // virtual element for the player's second side
}

func newConnectivity(b *Board, p Player) *connectivity {
	n := len(b.Territories)
	c := &connectivity{
		player: p,
		parent: make([]int, n+2),
		rank:   make([]uint8, n+2),
		home:   n,
		away:   n + 1,
	}
	for i := range c.parent {
		c.parent[i] = i
	}
	return c
}

func (c *connectivity) find(x int) int {
	for c.parent[x] != x {
		c.parent[x] = c.parent[c.parent[x]] // path halving
		x = c.parent[x]
	}
	return x
}

func (c *connectivity) union(x, y int) {
	rx, ry := c.find(x), c.find(y)
	if rx == ry {
		return
	}
	if c.rank[rx] < c.rank[ry] {
		rx, ry = ry, rx
	}
	c.parent[ry] = rx
	if c.rank[rx] == c.rank[ry] {
		c.rank[rx]++
	}
}

// add merges a freshly claimed territory with its already-owned neighbors
// and, if it carries one of the player's side tags, with the matching
// virtual side element.
func (c *connectivity) add(b *Board, t *Territory) {
	for _, nb := range t.Neighbors {
		if b.Territories[nb].Owner == c.player {
			c.union(t.ID, nb)
		}
	}
	if t.Side.Owner() != c.player {
		return
	}
	switch t.Side {
	case SideTop, SideLeft:
		c.union(t.ID, c.home)
	case SideBottom, SideRight:
		c.union(t.ID, c.away)
	}
}

// connected reports whether the player's two sides are linked through
// owned territories.
func (c *connectivity) connected() bool {
	return c.find(c.home) == c.find(c.away)
}

// CheckWin decides from scratch whether the player has connected their two
// sides, by BFS over the owned subgraph. The incremental union-find answers
// the same question during play; this recomputing form is the pure query
// used for snapshots and cross-validation.
func CheckWin(b *Board, p Player) bool {
	var from, to Side
	switch p {
	case Blue:
		from, to = SideTop, SideBottom
	case Red:
		from, to = SideLeft, SideRight
	default:
		return false
	}

	target := make(map[int]bool)
	for _, id := range b.SideTerritories(to) {
		if b.Territories[id].Owner == p {
			target[id] = true
		}
	}
	if len(target) == 0 {
		return false
	}

	visited := make([]bool, len(b.Territories))
	var queue []int
	for _, id := range b.SideTerritories(from) {
		if b.Territories[id].Owner == p {
			visited[id] = true
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if target[current] {
			return true
		}
		for _, nb := range b.Territories[current].Neighbors {
			if !visited[nb] && b.Territories[nb].Owner == p {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return false
}
