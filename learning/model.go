// Package learning contains the estimators that learn to score sentence pairs
// from their feature vectors.
package learning

import (
	"fmt"

	"github.com/pkg/errors"
)

// Estimator is an abstract representation of a model that learns a score from
// labelled feature vectors. Observations are fed one at a time, the model is
// fitted with Build, and Estimate scores new vectors.
type Estimator interface {
	// Name identifies the estimator.
	Name() string
	// FeedData adds a labelled observation. The vector is copied.
	FeedData(vector []float64, label float64)
	// Build fits the model to every observation fed so far.
	Build() error
	// Estimate scores a vector with the fitted model.
	Estimate(vector []float64) (float64, error)
}

// ClusterEstimator is an estimator that partitions its observations into
// clusters.
type ClusterEstimator interface {
	Estimator
	// Clusters describes the clusters found by Build.
	Clusters() []ClusterInfo
	// Purity is the purity of the clustering weighted by cluster size.
	Purity() float64
	// Entropy is the label entropy of the clustering weighted by cluster size.
	Entropy() float64
	// SumOfClusterVariances is the sum of the variances of the distances
	// of cluster members to their centroid.
	SumOfClusterVariances() (float64, error)
}

var (
	// ErrUntrained is returned when estimating with a model that was never built.
	ErrUntrained = errors.New("estimator has not been built")
	// ErrEmptyTrainingSet is returned when building without any observations.
	ErrEmptyTrainingSet = errors.New("no observations to build from")
	// ErrNoFeatures is returned when building from zero-length vectors.
	ErrNoFeatures = errors.New("observations have no features")
	// ErrSingularDesign is returned when the observations do not determine a
	// unique regression.
	ErrSingularDesign = errors.New("regression design matrix is singular")
)

// DimensionMismatchError is returned when a vector does not have the
// dimension of the model.
type DimensionMismatchError struct {
	Expected int
	Got      int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("expected a vector of dimension %d, got %d", e.Expected, e.Got)
}

// UnderdeterminedError is returned when there are fewer observations than
// regression coefficients.
type UnderdeterminedError struct {
	Observations int
	Features     int
}

func (e *UnderdeterminedError) Error() string {
	return fmt.Sprintf("%d observations cannot determine %d coefficients", e.Observations, e.Features)
}

type observation struct {
	point []float64
	label float64
}

type observations []observation

func (o *observations) feed(vector []float64, label float64) {
	v := make([]float64, len(vector))
	copy(v, vector)
	*o = append(*o, observation{point: v, label: label})
}

// dim is the common dimension of the observations.
func (o observations) dim() (int, error) {
	if len(o) == 0 {
		return 0, ErrEmptyTrainingSet
	}
	d := len(o[0].point)
	if d == 0 {
		return 0, ErrNoFeatures
	}
	for _, ob := range o[1:] {
		if len(ob.point) != d {
			return 0, &DimensionMismatchError{Expected: d, Got: len(ob.point)}
		}
	}
	return d, nil
}

func (o observations) labels(idx []int) []float64 {
	l := make([]float64, len(idx))
	for i, j := range idx {
		l[i] = o[j].label
	}
	return l
}

func checkDim(expected int, vector []float64) error {
	if len(vector) != expected {
		return &DimensionMismatchError{Expected: expected, Got: len(vector)}
	}
	return nil
}
