package geometry

import "math"

// Epsilon is the tolerance for coincident coordinates. Voronoi vertices from
// mirrored point sets land exactly on the region boundary only up to float
// noise, so every "touches the wall" style comparison goes through this.
const Epsilon = 1e-7

// Point is a 2D coordinate. Immutable once generated.
type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Norm is the distance from the origin (the region center).
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Polygon is an ordered cell boundary. Only the rendering collaborator cares
// about the actual coordinates; win logic never reads them.
type Polygon []Point

// Area returns the unsigned polygon area (shoelace).
func (pg Polygon) Area() float64 {
	var sum float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the vertex average, good enough for placing labels.
func (pg Polygon) Centroid() Point {
	var c Point
	for _, p := range pg {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pg))
	c.Y /= float64(len(pg))
	return c
}

// Contains reports whether p lies inside the polygon, by ray casting. Used
// for pixel-to-territory hit testing.
func (pg Polygon) Contains(p Point) bool {
	inside := false
	for i, a := range pg {
		b := pg[(i+1)%len(pg)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// circumcenter of the triangle abc. The triangulation never hands us a
// collinear triple, so the determinant is nonzero.
func circumcenter(a, b, c Point) Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ex := c.X - a.X
	ey := c.Y - a.Y
	bl := dx*dx + dy*dy
	cl := ex*ex + ey*ey
	d := 0.5 / (dx*ey - dy*ex)
	return Point{
		X: a.X + (ey*bl-dy*cl)*d,
		Y: a.Y + (dx*cl-ex*bl)*d,
	}
}
