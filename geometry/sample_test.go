package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestSampleSeparationAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := 32
	points, err := Sample(n, Square, rng)
	require.NoError(t, err)
	require.Len(t, points, n)

	sep := 0.5 / math.Sqrt(float64(n))
	for i, p := range points {
		require.LessOrEqual(t, math.Abs(p.X), Radius, "point %d outside region", i)
		require.LessOrEqual(t, math.Abs(p.Y), Radius, "point %d outside region", i)
		for j := i + 1; j < n; j++ {
			require.GreaterOrEqual(t, p.Dist(points[j]), sep,
				"points %d and %d violate minimum separation", i, j)
		}
	}
}

func TestSampleDiscStaysInDisc(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	points, err := Sample(24, Disc, rng)
	require.NoError(t, err)
	for i, p := range points {
		require.LessOrEqual(t, p.Norm(), Radius, "point %d outside disc", i)
	}
}

func TestSampleRejectsTinyCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	_, err := Sample(3, Square, rng)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrGeneration))
}

func TestSampleFailsWhenSeparationUnsatisfiable(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	// The unit square cannot hold 16 points pairwise a full unit apart.
	_, err := sampleSeparated(16, 1.0, Square, rng, 16*attemptsPerPoint)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrGeneration))
}

func TestSampleDeterministicForSeed(t *testing.T) {
	a, err := Sample(16, Square, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Sample(16, Square, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
