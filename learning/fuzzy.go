package learning

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/pit2015/paraphrase/pair"
)

// FuzzyKMeans is a fuzzy c-means estimator. Every observation belongs to
// every cluster with some membership, and each observation is counted in the
// cluster of its greatest membership.
//
// A vector is scored from the memberships of the closest training
// observation: clusters are split into those whose dominant label is at
// or above the threshold and those below, and the score is the
// membership-weighted dominant label of the heavier group.
type FuzzyKMeans struct {
	k             int
	fuzziness     float64
	epsilon       float64
	maxIterations int
	seed          int64
	threshold     float64
	distance      Distance

	obs        observations
	dim        int
	membership *mat.Dense
	training   [][]float64
	centroids  [][]float64
	hard       []int
	clustering
}

func FuzzyClusters(k int) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.k = k
	}
}

// FuzzyFuzziness sets the fuzziness exponent, which must be greater than 1.
func FuzzyFuzziness(m float64) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.fuzziness = m
	}
}

func FuzzyEpsilon(epsilon float64) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.epsilon = epsilon
	}
}

func FuzzyIterations(n int) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.maxIterations = n
	}
}

func FuzzySeed(seed int64) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.seed = seed
	}
}

func FuzzyThreshold(threshold float64) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.threshold = threshold
	}
}

func FuzzyDistance(d Distance) func(c *FuzzyKMeans) {
	return func(c *FuzzyKMeans) {
		c.distance = d
	}
}

// NewFuzzyKMeans creates an untrained fuzzy k-means estimator.
func NewFuzzyKMeans(options ...func(c *FuzzyKMeans)) *FuzzyKMeans {
	c := &FuzzyKMeans{
		k:             4,
		fuzziness:     2,
		epsilon:       1e-3,
		maxIterations: 100,
		seed:          1,
		threshold:     pair.DefaultThreshold,
		distance:      EuclideanDistance,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *FuzzyKMeans) Name() string {
	return "fuzzykmeans"
}

func (c *FuzzyKMeans) FeedData(vector []float64, label float64) {
	c.obs.feed(vector, label)
}

// Build fits the memberships and centroids to every observation fed so far.
// Iteration stops once no membership moves by more than epsilon.
func (c *FuzzyKMeans) Build() error {
	dim, err := c.obs.dim()
	if err != nil {
		return err
	}
	n := len(c.obs)
	k := c.k
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(c.seed))
	u := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for j := range row {
			row[j] = rng.Float64() + 1e-9
		}
		floats.Scale(1/floats.Sum(row), row)
		u.SetRow(i, row)
	}

	centroids := make([][]float64, k)
	exp := 2 / (c.fuzziness - 1)
	d := make([]float64, k)
	for iter := 0; iter < c.maxIterations; iter++ {
		for j := 0; j < k; j++ {
			centre := make([]float64, dim)
			var total float64
			for i, o := range c.obs {
				w := math.Pow(u.At(i, j), c.fuzziness)
				floats.AddScaled(centre, w, o.point)
				total += w
			}
			if total > 0 {
				floats.Scale(1/total, centre)
			}
			centroids[j] = centre
		}

		var delta float64
		for i, o := range c.obs {
			zeros := 0
			for j := 0; j < k; j++ {
				if d[j], err = c.distance(o.point, centroids[j]); err != nil {
					return err
				}
				if d[j] == 0 {
					zeros++
				}
			}
			for j := 0; j < k; j++ {
				var m float64
				switch {
				case zeros > 0 && d[j] == 0:
					m = 1 / float64(zeros)
				case zeros > 0:
					m = 0
				default:
					var sum float64
					for l := 0; l < k; l++ {
						sum += math.Pow(d[j]/d[l], exp)
					}
					m = 1 / sum
				}
				delta = math.Max(delta, math.Abs(m-u.At(i, j)))
				u.Set(i, j, m)
			}
		}
		if delta <= c.epsilon {
			break
		}
	}

	hard := make([]int, n)
	members := make([][]int, k)
	training := make([][]float64, n)
	for i := 0; i < n; i++ {
		training[i] = c.obs[i].point
		hard[i] = floats.MaxIdx(u.RawRowView(i))
		members[hard[i]] = append(members[hard[i]], i)
	}

	c.dim = dim
	c.membership = u
	c.training = training
	c.centroids = centroids
	c.hard = hard
	c.set(c.obs, members, c.distance)
	return nil
}

// Membership is the n by k membership matrix of the training observations.
func (c *FuzzyKMeans) Membership() mat.Matrix {
	if c.membership == nil {
		return nil
	}
	return mat.DenseCopyOf(c.membership)
}

// Assignments is the cluster of greatest membership of each training observation.
func (c *FuzzyKMeans) Assignments() []int {
	a := make([]int, len(c.hard))
	copy(a, c.hard)
	return a
}

// Estimate scores a vector from the memberships of the nearest observation
// the model was built from. Clusters without members carry no label and are ignored.
// When neither group has any weight the score is the debatable label.
func (c *FuzzyKMeans) Estimate(vector []float64) (float64, error) {
	if c.membership == nil {
		return 0, ErrUntrained
	}
	if err := checkDim(c.dim, vector); err != nil {
		return 0, err
	}
	i, _, err := nearest(c.distance, vector, c.training)
	if err != nil {
		return 0, err
	}

	var posWeight, posSum, negWeight, negSum float64
	for j, info := range c.infos {
		if info.Size == 0 {
			continue
		}
		w := c.membership.At(i, j)
		if info.DominantLabel >= c.threshold {
			posWeight += w
			posSum += w * info.DominantLabel
		} else {
			negWeight += w
			negSum += w * info.DominantLabel
		}
	}
	switch {
	case posWeight > 0 && posWeight >= negWeight:
		return posSum / posWeight, nil
	case negWeight > 0:
		return negSum / negWeight, nil
	}
	return pair.LabelDebatable, nil
}
