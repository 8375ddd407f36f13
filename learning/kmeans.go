package learning

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// KMeans clusters observations with k-means++ seeding followed by Lloyd
// iterations. A vector is scored with the dominant label of the cluster whose
// centroid is nearest.
type KMeans struct {
	k             int
	maxIterations int
	seed          int64
	distance      Distance
	squared       bool

	obs       observations
	dim       int
	centroids [][]float64
	clustering
}

func KMeansClusters(k int) func(c *KMeans) {
	return func(c *KMeans) {
		c.k = k
	}
}

func KMeansIterations(n int) func(c *KMeans) {
	return func(c *KMeans) {
		c.maxIterations = n
	}
}

func KMeansSeed(seed int64) func(c *KMeans) {
	return func(c *KMeans) {
		c.seed = seed
	}
}

// KMeansDistance sets the distance measure. Seeding weights points by the
// square of this distance.
func KMeansDistance(d Distance) func(c *KMeans) {
	return func(c *KMeans) {
		c.distance = d
		c.squared = false
	}
}

// KMeansSquaredDistance sets a distance measure that is already a square,
// such as SquaredEuclideanDistance, so seeding weights points by it directly.
func KMeansSquaredDistance(d Distance) func(c *KMeans) {
	return func(c *KMeans) {
		c.distance = d
		c.squared = true
	}
}

// NewKMeans creates an untrained k-means estimator with four clusters.
func NewKMeans(options ...func(c *KMeans)) *KMeans {
	c := &KMeans{
		k:             4,
		maxIterations: 100,
		seed:          1,
		distance:      EuclideanDistance,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *KMeans) Name() string {
	return "kmeans"
}

func (c *KMeans) FeedData(vector []float64, label float64) {
	c.obs.feed(vector, label)
}

// Build clusters every observation fed so far. When there are fewer
// observations than clusters, there are as many clusters as observations.
// Clusters left empty by the iterations are dropped.
func (c *KMeans) Build() error {
	dim, err := c.obs.dim()
	if err != nil {
		return err
	}
	k := c.k
	if k > len(c.obs) {
		k = len(c.obs)
	}
	points := make([][]float64, len(c.obs))
	for i, o := range c.obs {
		points[i] = o.point
	}

	rng := rand.New(rand.NewSource(c.seed))
	centroids, err := seedCentroids(rng, c.distance, c.squared, points, k)
	if err != nil {
		return err
	}

	assignment := make([]int, len(points))
	for i := range assignment {
		assignment[i] = -1
	}
	for iter := 0; iter < c.maxIterations; iter++ {
		changed := false
		for i, p := range points {
			j, _, err := nearest(c.distance, p, centroids)
			if err != nil {
				return err
			}
			if j != assignment[i] {
				assignment[i] = j
				changed = true
			}
		}
		if !changed {
			break
		}
		for j := range centroids {
			var members [][]float64
			for i, a := range assignment {
				if a == j {
					members = append(members, points[i])
				}
			}
			if len(members) > 0 {
				centroids[j] = centroid(members)
			}
		}
	}

	var (
		members [][]int
		kept    [][]float64
	)
	for j := range centroids {
		var m []int
		for i, a := range assignment {
			if a == j {
				m = append(m, i)
			}
		}
		if len(m) == 0 {
			continue
		}
		members = append(members, m)
		kept = append(kept, centroids[j])
	}

	c.dim = dim
	c.centroids = kept
	c.set(c.obs, members, c.distance)
	return nil
}

// seedCentroids picks k distinct initial centroids with probability
// proportional to the squared distance to the closest centroid already chosen.
func seedCentroids(rng *rand.Rand, distance Distance, squared bool, points [][]float64, k int) ([][]float64, error) {
	chosen := make([]bool, len(points))
	first := rng.Intn(len(points))
	chosen[first] = true
	centroids := [][]float64{copyPoint(points[first])}

	weights := make([]float64, len(points))
	for len(centroids) < k {
		for i, p := range points {
			if chosen[i] {
				weights[i] = 0
				continue
			}
			_, d, err := nearest(distance, p, centroids)
			if err != nil {
				return nil, err
			}
			if squared {
				weights[i] = d
			} else {
				weights[i] = d * d
			}
		}

		next := -1
		total := floats.Sum(weights)
		if total > 0 {
			r := rng.Float64() * total
			for i, w := range weights {
				if w == 0 {
					continue
				}
				next = i
				if r < w {
					break
				}
				r -= w
			}
		} else {
			// Every remaining point coincides with a centroid.
			var remaining []int
			for i := range points {
				if !chosen[i] {
					remaining = append(remaining, i)
				}
			}
			next = remaining[rng.Intn(len(remaining))]
		}
		chosen[next] = true
		centroids = append(centroids, copyPoint(points[next]))
	}
	return centroids, nil
}

func copyPoint(p []float64) []float64 {
	c := make([]float64, len(p))
	copy(c, p)
	return c
}

// Centroids are the centres of the clusters found by Build.
func (c *KMeans) Centroids() [][]float64 {
	cc := make([][]float64, len(c.centroids))
	for i, p := range c.centroids {
		cc[i] = copyPoint(p)
	}
	return cc
}

// Estimate is the dominant training label of the nearest cluster.
func (c *KMeans) Estimate(vector []float64) (float64, error) {
	if c.centroids == nil {
		return 0, ErrUntrained
	}
	if err := checkDim(c.dim, vector); err != nil {
		return 0, err
	}
	j, _, err := nearest(c.distance, vector, c.centroids)
	if err != nil {
		return 0, err
	}
	return c.infos[j].DominantLabel, nil
}
