package learning

import (
	"fmt"
	"math"
	"sort"

	"github.com/bugra/kmeans"
)

// Distance measures how far apart two points are.
type Distance func(a, b []float64) (float64, error)

var distances = map[string]Distance{
	"euclidean":        kmeans.EuclideanDistance,
	"squaredeuclidean": kmeans.SquaredEuclideanDistance,
	"manhattan":        kmeans.ManhattanDistance,
	"chebyshev":        kmeans.ChebyshevDistance,
}

var squaredDistances = map[string]bool{
	"squaredeuclidean": true,
}

// EuclideanDistance is the default distance of the clustering estimators.
var EuclideanDistance Distance = kmeans.EuclideanDistance

// SquaredEuclideanDistance is the square of EuclideanDistance.
var SquaredEuclideanDistance Distance = kmeans.SquaredEuclideanDistance

// DistanceByName looks up a distance measure.
func DistanceByName(name string) (Distance, error) {
	if name == "" {
		return EuclideanDistance, nil
	}
	d, ok := distances[name]
	if !ok {
		return nil, fmt.Errorf("unknown distance %q, expected one of %v", name, DistanceNames())
	}
	return d, nil
}

// IsSquaredDistance reports whether the named distance is already a square.
func IsSquaredDistance(name string) bool {
	return squaredDistances[name]
}

// DistanceNames lists the known distance measures.
func DistanceNames() []string {
	n := make([]string, 0, len(distances))
	for k := range distances {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// nearest is the index of the candidate closest to p. Ties go to the lower index.
func nearest(distance Distance, p []float64, candidates [][]float64) (int, float64, error) {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		d, err := distance(p, c)
		if err != nil {
			return -1, 0, err
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist, nil
}
