package geometry

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Shape selects the bounded region territories are generated in. The square
// spans [-0.5,0.5]^2, the disc has radius 0.5 around the origin.
type Shape int

const (
	Square Shape = iota
	Disc
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Disc:
		return "disc"
	default:
		return "unknown"
	}
}

// ParseShape maps a config string to a Shape.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "square", "rectangle", "":
		return Square, nil
	case "disc", "circle":
		return Disc, nil
	default:
		return Square, fmt.Errorf("unknown region shape %q", name)
	}
}

// Radius of the generating region (half the square side, or the disc radius).
const Radius = 0.5

// ErrGeneration is returned when the geometry stage cannot produce a usable
// point set. The caller may retry with fewer points or accept defeat.
var ErrGeneration = errors.New("geometry: point generation failed")

// attemptsPerPoint bounds the rejection sampling so a too-dense request
// fails instead of spinning forever.
const attemptsPerPoint = 64

// Sample draws n points uniformly inside shape, keeping every pair at least
// 0.5/sqrt(n) apart. Near-coincident generators would produce zero-area or
// numerically shaky cells, hence the rejection pass.
func Sample(n int, shape Shape, rng *rand.Rand) ([]Point, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: need at least 4 points for four sides, got %d", ErrGeneration, n)
	}
	sep := 0.5 / math.Sqrt(float64(n))
	return sampleSeparated(n, sep, shape, rng, n*attemptsPerPoint)
}

func sampleSeparated(n int, sep float64, shape Shape, rng *rand.Rand, budget int) ([]Point, error) {
	points := make([]Point, 0, n)
	for len(points) < n {
		if budget <= 0 {
			return nil, fmt.Errorf("%w: separation %.4f unsatisfied after %d attempts (%d/%d points placed)",
				ErrGeneration, sep, n*attemptsPerPoint, len(points), n)
		}
		budget--

		p := Point{rng.Float64() - 0.5, rng.Float64() - 0.5}
		if !inRegion(p, shape, sep/2) {
			continue
		}
		clear := true
		for _, q := range points {
			if p.Dist(q) < sep {
				clear = false
				break
			}
		}
		if clear {
			points = append(points, p)
		}
	}
	return points, nil
}

// inRegion also keeps points a half-separation away from the boundary, so
// the mirrored copies used for clipping stay separated as well.
func inRegion(p Point, shape Shape, margin float64) bool {
	switch shape {
	case Disc:
		return p.Norm() <= Radius-margin
	default:
		return math.Abs(p.X) <= Radius-margin && math.Abs(p.Y) <= Radius-margin
	}
}
