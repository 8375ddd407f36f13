package learning

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Regression is an ordinary least squares estimator without an intercept.
type Regression struct {
	obs          observations
	coefficients []float64
}

// NewRegression creates an untrained regression estimator.
func NewRegression() *Regression {
	return &Regression{}
}

func (r *Regression) Name() string {
	return "regression"
}

func (r *Regression) FeedData(vector []float64, label float64) {
	r.obs.feed(vector, label)
}

// Build solves the least squares problem over every observation fed so far.
func (r *Regression) Build() error {
	dim, err := r.obs.dim()
	if err != nil {
		return err
	}
	n := len(r.obs)
	if n < dim {
		return &UnderdeterminedError{Observations: n, Features: dim}
	}

	x := mat.NewDense(n, dim, nil)
	y := mat.NewVecDense(n, nil)
	for i, o := range r.obs {
		x.SetRow(i, o.point)
		y.SetVec(i, o.label)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(x, y); err != nil {
		return errors.Wrapf(ErrSingularDesign, "%d observations of %d features: %v", n, dim, err)
	}
	r.coefficients = make([]float64, dim)
	for i := range r.coefficients {
		r.coefficients[i] = beta.AtVec(i)
	}
	return nil
}

// Coefficients are the fitted regression parameters, one per feature.
func (r *Regression) Coefficients() []float64 {
	c := make([]float64, len(r.coefficients))
	copy(c, r.coefficients)
	return c
}

// Estimate is the dot product of the vector with the coefficients.
func (r *Regression) Estimate(vector []float64) (float64, error) {
	if r.coefficients == nil {
		return 0, ErrUntrained
	}
	if err := checkDim(len(r.coefficients), vector); err != nil {
		return 0, err
	}
	return floats.Dot(r.coefficients, vector), nil
}
