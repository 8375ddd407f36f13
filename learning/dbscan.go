package learning

import (
	"github.com/pit2015/paraphrase/pair"
)

// DBSCAN is a density based estimator. A core observation has at least
// minPts other observations within eps of it, clusters grow from core
// observations, and observations reachable from no core are noise.
//
// A vector is scored with the mean label of the first cluster that has a
// member closer than eps to it, and with the debatable label when there is none.
type DBSCAN struct {
	eps      float64
	minPts   int
	distance Distance

	obs   observations
	dim   int
	built bool
	noise []int
	clustering
}

func DBSCANEps(eps float64) func(c *DBSCAN) {
	return func(c *DBSCAN) {
		c.eps = eps
	}
}

func DBSCANMinPts(minPts int) func(c *DBSCAN) {
	return func(c *DBSCAN) {
		c.minPts = minPts
	}
}

func DBSCANDistance(d Distance) func(c *DBSCAN) {
	return func(c *DBSCAN) {
		c.distance = d
	}
}

// NewDBSCAN creates an untrained DBSCAN estimator.
func NewDBSCAN(options ...func(c *DBSCAN)) *DBSCAN {
	c := &DBSCAN{
		eps:      1.1,
		minPts:   4,
		distance: EuclideanDistance,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *DBSCAN) Name() string {
	return "dbscan"
}

func (c *DBSCAN) FeedData(vector []float64, label float64) {
	c.obs.feed(vector, label)
}

const (
	pointUnvisited = iota
	pointNoise
	pointClustered
)

// Build clusters every observation fed so far. Observations are visited in
// the order they were fed, so clusters are numbered in order of discovery.
func (c *DBSCAN) Build() error {
	dim, err := c.obs.dim()
	if err != nil {
		return err
	}
	status := make([]int, len(c.obs))
	var members [][]int
	for i := range c.obs {
		if status[i] != pointUnvisited {
			continue
		}
		neighbours, err := c.neighbours(i)
		if err != nil {
			return err
		}
		if len(neighbours) < c.minPts {
			status[i] = pointNoise
			continue
		}
		cluster, err := c.expand(i, neighbours, status)
		if err != nil {
			return err
		}
		members = append(members, cluster)
	}

	c.noise = c.noise[:0]
	for i, s := range status {
		if s == pointNoise {
			c.noise = append(c.noise, i)
		}
	}
	c.dim = dim
	c.built = true
	c.set(c.obs, members, c.distance)
	return nil
}

func (c *DBSCAN) expand(core int, seeds []int, status []int) ([]int, error) {
	cluster := []int{core}
	status[core] = pointClustered
	queue := append([]int(nil), seeds...)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		if status[i] == pointUnvisited {
			neighbours, err := c.neighbours(i)
			if err != nil {
				return nil, err
			}
			if len(neighbours) >= c.minPts {
				queue = append(queue, neighbours...)
			}
		}
		if status[i] != pointClustered {
			status[i] = pointClustered
			cluster = append(cluster, i)
		}
	}
	return cluster, nil
}

// neighbours are the other observations within eps of observation i.
func (c *DBSCAN) neighbours(i int) ([]int, error) {
	var n []int
	for j, o := range c.obs {
		if j == i {
			continue
		}
		d, err := c.distance(c.obs[i].point, o.point)
		if err != nil {
			return nil, err
		}
		if d <= c.eps {
			n = append(n, j)
		}
	}
	return n, nil
}

// Noise lists the training observations that belong to no cluster.
func (c *DBSCAN) Noise() []int {
	n := make([]int, len(c.noise))
	copy(n, c.noise)
	return n
}

func (c *DBSCAN) Estimate(vector []float64) (float64, error) {
	if !c.built {
		return 0, ErrUntrained
	}
	if err := checkDim(c.dim, vector); err != nil {
		return 0, err
	}
	for j, m := range c.members {
		for _, i := range m {
			d, err := c.distance(vector, c.obs[i].point)
			if err != nil {
				return 0, err
			}
			if d < c.eps {
				return c.infos[j].MeanLabel, nil
			}
		}
	}
	return pair.LabelDebatable, nil
}
