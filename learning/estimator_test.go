package learning_test

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/pit2015/paraphrase/config"
	"github.com/pit2015/paraphrase/learning"
)

func newEstimator(t *testing.T, name string) learning.Estimator {
	e, err := learning.New(name, config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func estimateAll(t *testing.T, e learning.Estimator, data []labelled) []float64 {
	estimates := make([]float64, len(data))
	for i, d := range data {
		s, err := e.Estimate(d.v)
		if err != nil {
			t.Fatalf("%s: %v", e.Name(), err)
		}
		estimates[i] = s
	}
	return estimates
}

func TestEstimators_Errors(t *testing.T) {
	for _, name := range learning.Estimators {
		e := newEstimator(t, name)
		if _, err := e.Estimate([]float64{0, 0}); errors.Cause(err) != learning.ErrUntrained {
			t.Errorf("%s: expected ErrUntrained, got %v", name, err)
		}
		if err := e.Build(); errors.Cause(err) != learning.ErrEmptyTrainingSet {
			t.Errorf("%s: expected ErrEmptyTrainingSet, got %v", name, err)
		}

		mixed := newEstimator(t, name)
		feed(mixed, blobs)
		mixed.FeedData([]float64{1, 2, 3}, 1)
		err := mixed.Build()
		if m, ok := errors.Cause(err).(*learning.DimensionMismatchError); !ok || m.Expected != 2 || m.Got != 3 {
			t.Errorf("%s: expected a DimensionMismatchError building mixed vectors, got %v", name, err)
		}

		built := newEstimator(t, name)
		feed(built, blobs)
		if err := built.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		_, err = built.Estimate([]float64{1})
		if m, ok := errors.Cause(err).(*learning.DimensionMismatchError); !ok || m.Expected != 2 || m.Got != 1 {
			t.Errorf("%s: expected a DimensionMismatchError estimating, got %v", name, err)
		}
	}
}

func TestEstimators_Deterministic(t *testing.T) {
	for _, name := range learning.Estimators {
		a := newEstimator(t, name)
		feed(a, blobs)
		if err := a.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		first := estimateAll(t, a, blobs)

		if err := a.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if again := estimateAll(t, a, blobs); !reflect.DeepEqual(first, again) {
			t.Errorf("%s: rebuilding changed the estimates from %v to %v", name, first, again)
		}

		b := newEstimator(t, name)
		feed(b, blobs)
		if err := b.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if other := estimateAll(t, b, blobs); !reflect.DeepEqual(first, other) {
			t.Errorf("%s: a second estimator estimated %v, expected %v", name, other, first)
		}
	}
}

func TestEstimators_FeedAfterBuild(t *testing.T) {
	extra := labelled{[]float64{50, 50}, 0}
	for _, name := range learning.Estimators {
		e := newEstimator(t, name)
		feed(e, blobs)
		if err := e.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		data := append([]labelled{extra}, blobs...)
		before := estimateAll(t, e, data)

		// The built model is kept until the next build.
		e.FeedData(extra.v, extra.l)
		if after := estimateAll(t, e, data); !reflect.DeepEqual(before, after) {
			t.Errorf("%s: feeding without building changed the estimates from %v to %v", name, before, after)
		}

		if err := e.Build(); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		estimateAll(t, e, data)
	}
}
