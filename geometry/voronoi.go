package geometry

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// Wall identifies one of the four boundary segments of the region. For the
// disc the walls are the four quadrant arcs, split on the diagonals.
type Wall int

const (
	WallTop Wall = iota
	WallBottom
	WallLeft
	WallRight
)

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "top"
	case WallBottom:
		return "bottom"
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is one clipped Voronoi cell of the tessellation.
type Cell struct {
	Site      Point
	Polygon   Polygon
	Neighbors []int  // indices of cells sharing a positive-length edge
	Walls     []Wall // boundary walls this cell has an edge on
}

// Tessellation is the raw geometric board: one bounded polygonal cell per
// generator point plus the Delaunay-dual adjacency between them.
type Tessellation struct {
	Shape Shape
	Cells []Cell
}

// Tessellate computes the Voronoi diagram of the given points clipped to the
// region. Instead of clipping infinite cells directly, every point is
// mirrored across each wall; the mirror images force a Voronoi edge exactly
// on the boundary, so the cells of the original points come out bounded and
// clipped for free.
func Tessellate(points []Point, shape Shape) (*Tessellation, error) {
	n := len(points)
	if n < 4 {
		return nil, fmt.Errorf("%w: need at least 4 points, got %d", ErrGeneration, n)
	}

	ext := extend(points, shape)
	dpts := make([]delaunay.Point, len(ext))
	for i, p := range ext {
		dpts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("%w: triangulation: %v", ErrGeneration, err)
	}

	// Voronoi vertices are the circumcenters of the Delaunay triangles.
	centers := make([]Point, len(tri.Triangles)/3)
	for t := range centers {
		centers[t] = circumcenter(
			ext[tri.Triangles[3*t]],
			ext[tri.Triangles[3*t+1]],
			ext[tri.Triangles[3*t+2]],
		)
	}

	// One incoming halfedge per site, to start the walk around its cell.
	inedge := make([]int, len(ext))
	for i := range inedge {
		inedge[i] = -1
	}
	for e := range tri.Triangles {
		dst := tri.Triangles[nextHalfedge(e)]
		if inedge[dst] == -1 {
			inedge[dst] = e
		}
	}

	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		cell, err := buildCell(i, n, ext, tri, centers, inedge[i], shape)
		if err != nil {
			return nil, err
		}
		cells[i] = cell
	}
	return &Tessellation{Shape: shape, Cells: cells}, nil
}

// buildCell walks the triangles around site i and collects the cell polygon,
// the real neighbors and the wall contacts. Sites of the original point set
// are always interior to the extended triangulation (the mirrors surround
// them), so the walk must close; hitting the hull means degenerate input.
func buildCell(i, n int, ext []Point, tri *delaunay.Triangulation, centers []Point, start int, shape Shape) (Cell, error) {
	if start == -1 {
		return Cell{}, fmt.Errorf("%w: site %d has no cell", ErrGeneration, i)
	}

	var poly Polygon
	var neighbors []int
	var walls []Wall
	haveWall := [4]bool{}

	e := start
	for {
		t := e / 3
		poly = append(poly, centers[t])

		twin := tri.Halfedges[e]
		if twin == -1 {
			return Cell{}, fmt.Errorf("%w: unbounded cell for site %d", ErrGeneration, i)
		}
		// A zero-length dual edge means the two cells only touch at a
		// point; that is not adjacency and not a wall contact.
		if centers[t].Dist(centers[twin/3]) > Epsilon {
			j := tri.Triangles[e]
			if j < n {
				neighbors = append(neighbors, j)
			} else {
				w := wallOf(ext[i], j, n, shape)
				if !haveWall[w] {
					haveWall[w] = true
					walls = append(walls, w)
				}
			}
		}

		e = tri.Halfedges[nextHalfedge(e)]
		if e == -1 {
			return Cell{}, fmt.Errorf("%w: unbounded cell for site %d", ErrGeneration, i)
		}
		if e == start {
			break
		}
	}

	return Cell{
		Site:      ext[i],
		Polygon:   dedupe(poly),
		Neighbors: neighbors,
		Walls:     walls,
	}, nil
}

// extend appends the mirror images of the points. For the square each point
// is reflected across all four walls; for the disc it is reflected across
// the rim along its own radius.
func extend(points []Point, shape Shape) []Point {
	n := len(points)
	if shape == Disc {
		ext := make([]Point, n, 2*n)
		copy(ext, points)
		for _, p := range points {
			r := p.Norm()
			if r < 1e-9 {
				// mirror direction is arbitrary for the exact center
				ext = append(ext, Point{2 * Radius, 0})
				continue
			}
			scale := (2*Radius - r) / r
			ext = append(ext, Point{p.X * scale, p.Y * scale})
		}
		return ext
	}

	ext := make([]Point, n, 5*n)
	copy(ext, points)
	for _, p := range points {
		ext = append(ext, Point{p.X, 2*Radius - p.Y}) // top
	}
	for _, p := range points {
		ext = append(ext, Point{p.X, -2*Radius - p.Y}) // bottom
	}
	for _, p := range points {
		ext = append(ext, Point{-2*Radius - p.X, p.Y}) // left
	}
	for _, p := range points {
		ext = append(ext, Point{2*Radius - p.X, p.Y}) // right
	}
	return ext
}

// wallOf maps a mirror index to the wall it sits behind. Any mirror point
// cell lives entirely outside the region, so a shared Voronoi edge with one
// necessarily lies on the boundary.
func wallOf(site Point, j, n int, shape Shape) Wall {
	if shape == Disc {
		return arcOf(site)
	}
	switch (j - n) / n {
	case 0:
		return WallTop
	case 1:
		return WallBottom
	case 2:
		return WallLeft
	default:
		return WallRight
	}
}

// arcOf picks the quadrant arc for a rim-touching disc cell by the angle of
// its site.
func arcOf(site Point) Wall {
	theta := math.Atan2(site.Y, site.X)
	switch {
	case theta > math.Pi/4 && theta <= 3*math.Pi/4:
		return WallTop
	case theta > 3*math.Pi/4 || theta <= -3*math.Pi/4:
		return WallLeft
	case theta <= -math.Pi/4:
		return WallBottom
	default:
		return WallRight
	}
}

// dedupe drops consecutive near-coincident polygon vertices. Cocircular
// mirror configurations produce coinciding circumcenters along the walls.
func dedupe(pg Polygon) Polygon {
	out := make(Polygon, 0, len(pg))
	for _, p := range pg {
		if len(out) == 0 || p.Dist(out[len(out)-1]) > Epsilon {
			out = append(out, p)
		}
	}
	for len(out) > 1 && out[0].Dist(out[len(out)-1]) <= Epsilon {
		out = out[:len(out)-1]
	}
	return out
}

func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}
