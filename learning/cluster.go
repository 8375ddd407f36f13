package learning

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ClusterInfo summarises the labels of the members of a cluster.
type ClusterInfo struct {
	// DominantLabel is the most frequent label. Ties go to the smaller label.
	DominantLabel float64
	// MeanLabel is the average label.
	MeanLabel float64
	// Purity is the fraction of members that carry the dominant label.
	Purity float64
	// Entropy is the entropy, in bits, of the label distribution.
	Entropy float64
	Size    int
}

func newClusterInfo(labels []float64) ClusterInfo {
	if len(labels) == 0 {
		return ClusterInfo{}
	}
	counts := make(map[float64]int)
	for _, l := range labels {
		counts[l]++
	}
	distinct := make([]float64, 0, len(counts))
	for l := range counts {
		distinct = append(distinct, l)
	}
	sort.Float64s(distinct)

	n := float64(len(labels))
	var (
		dominant float64
		max      int
		p        = make([]float64, len(distinct))
	)
	for i, l := range distinct {
		if counts[l] > max {
			dominant, max = l, counts[l]
		}
		p[i] = float64(counts[l]) / n
	}
	return ClusterInfo{
		DominantLabel: dominant,
		MeanLabel:     stat.Mean(labels, nil),
		Purity:        float64(max) / n,
		Entropy:       stat.Entropy(p) / math.Ln2,
		Size:          len(labels),
	}
}

// clustering holds the partition found by a cluster estimator. Members are
// indices into the observations.
type clustering struct {
	members  [][]int
	infos    []ClusterInfo
	total    int
	distance Distance
	points   func(idx []int) [][]float64
}

func (c *clustering) set(obs observations, members [][]int, distance Distance) {
	c.members = members
	c.total = len(obs)
	c.distance = distance
	c.infos = make([]ClusterInfo, len(members))
	for i, m := range members {
		c.infos[i] = newClusterInfo(obs.labels(m))
	}
	c.points = func(idx []int) [][]float64 {
		p := make([][]float64, len(idx))
		for i, j := range idx {
			p[i] = obs[j].point
		}
		return p
	}
}

func (c *clustering) Clusters() []ClusterInfo {
	infos := make([]ClusterInfo, len(c.infos))
	copy(infos, c.infos)
	return infos
}

// Purity weights the purity of each cluster by its share of all observations.
// Observations outside any cluster count against the purity.
func (c *clustering) Purity() float64 {
	if c.total == 0 {
		return 0
	}
	var p float64
	for _, info := range c.infos {
		p += info.Purity * float64(info.Size) / float64(c.total)
	}
	return p
}

// Entropy weights the entropy of each cluster by its share of all observations.
func (c *clustering) Entropy() float64 {
	if c.total == 0 {
		return 0
	}
	var e float64
	for _, info := range c.infos {
		e += info.Entropy * float64(info.Size) / float64(c.total)
	}
	return e
}

func (c *clustering) SumOfClusterVariances() (float64, error) {
	var sum float64
	for _, m := range c.members {
		if len(m) < 2 {
			continue
		}
		points := c.points(m)
		center := centroid(points)
		d := make([]float64, len(points))
		for i, p := range points {
			var err error
			d[i], err = c.distance(p, center)
			if err != nil {
				return 0, err
			}
		}
		sum += stat.Variance(d, nil)
	}
	return sum, nil
}

func centroid(points [][]float64) []float64 {
	c := make([]float64, len(points[0]))
	for _, p := range points {
		floats.Add(c, p)
	}
	floats.Scale(1/float64(len(points)), c)
	return c
}
