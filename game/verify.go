package game

import "github.com/nasosev/voronoi-hex/topology"

// CheckWinTopological answers the same question as CheckWin via the
// homological route the project historically used: build the complex of the
// player's owned subgraph augmented with two virtual side vertices, then
// test whether bridging the virtual vertices would raise the cycle rank.
// Much slower than the union-find path; kept as an offline cross-check.
func CheckWinTopological(b *Board, p Player) bool {
	var from, to Side
	switch p {
	case Blue:
		from, to = SideTop, SideBottom
	case Red:
		from, to = SideLeft, SideRight
	default:
		return false
	}

	home := len(b.Territories)
	away := home + 1

	c := topology.New()
	c.AddVertex(home)
	c.AddVertex(away)
	for _, t := range b.Territories {
		if t.Owner != p {
			continue
		}
		c.AddVertex(t.ID)
		for _, nb := range t.Neighbors {
			if b.Territories[nb].Owner == p {
				c.AddEdge(t.ID, nb)
			}
		}
		switch t.Side {
		case from:
			c.AddEdge(t.ID, home)
		case to:
			c.AddEdge(t.ID, away)
		}
	}
	return c.Connected(home, away)
}
