package eval

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/pit2015/paraphrase/pair"
)

// Contingency counts the decisions made at a threshold. A pair with a
// paraphrase label is a true positive when its estimate reaches the
// threshold and a false negative when its estimate falls below the debatable
// label. A pair with a non-paraphrase label is a false positive when its
// estimate reaches the threshold. Pairs with a debatable label are not counted.
type Contingency struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
}

// Count tallies the decisions made at threshold.
func Count(predictions Predictions, threshold float64) Contingency {
	var c Contingency
	for _, p := range predictions {
		switch {
		case p.Gold >= pair.LabelParaphrase06:
			if p.Estimate >= threshold {
				c.TruePositives++
			} else if p.Estimate < pair.LabelDebatable {
				c.FalseNegatives++
			}
		case p.Gold < pair.LabelDebatable:
			if p.Estimate >= threshold {
				c.FalsePositives++
			}
		}
	}
	return c
}

// Precision is zero when nothing was predicted to be a paraphrase.
func (c Contingency) Precision() float64 {
	if c.TruePositives+c.FalsePositives == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(c.TruePositives+c.FalsePositives)
}

// Recall is zero when there are no paraphrases.
func (c Contingency) Recall() float64 {
	if c.TruePositives+c.FalseNegatives == 0 {
		return 0
	}
	return float64(c.TruePositives) / float64(c.TruePositives+c.FalseNegatives)
}

// FMeasure is the weighted harmonic mean of precision and recall.
func (c Contingency) FMeasure(beta float64) float64 {
	p, r := c.Precision(), c.Recall()
	b2 := beta * beta
	if b2*p+r == 0 {
		return 0
	}
	return (1 + b2) * p * r / (b2*p + r)
}

type precisionEvaluator struct{ threshold float64 }
type recallEvaluator struct{ threshold float64 }
type numTruePositives struct{ threshold float64 }
type numFalsePositives struct{ threshold float64 }
type numFalseNegatives struct{ threshold float64 }
type pearson struct{}

// FMeasure computes f-measure, with the beta parameter controlling the precision and recall trade-off.
type FMeasure struct {
	beta      float64
	threshold float64
}

var (
	// Precision at the default threshold.
	Precision = precisionEvaluator{threshold: pair.DefaultThreshold}
	// Recall at the default threshold.
	Recall = recallEvaluator{threshold: pair.DefaultThreshold}
	// F1Measure is f-measure with beta=1 at the default threshold.
	F1Measure = FMeasure{beta: 1, threshold: pair.DefaultThreshold}
	// Pearson is the correlation of estimates with gold labels.
	Pearson = pearson{}
)

// AtThreshold are the standard measurements with the given decision threshold.
func AtThreshold(threshold float64) []Evaluator {
	return []Evaluator{
		FMeasure{beta: 1, threshold: threshold},
		precisionEvaluator{threshold: threshold},
		recallEvaluator{threshold: threshold},
		numTruePositives{threshold: threshold},
		numFalsePositives{threshold: threshold},
		numFalseNegatives{threshold: threshold},
		pearson{},
	}
}

func (e precisionEvaluator) Name() string {
	return "Precision"
}

func (e precisionEvaluator) Score(predictions Predictions) float64 {
	return Count(predictions, e.threshold).Precision()
}

func (e recallEvaluator) Name() string {
	return "Recall"
}

func (e recallEvaluator) Score(predictions Predictions) float64 {
	return Count(predictions, e.threshold).Recall()
}

func (e FMeasure) Name() string {
	if e.beta == 1 {
		return "F1"
	}
	return "F" + strings.Replace(strconv.FormatFloat(e.beta, 'f', -1, 64), ".", "", -1)
}

func (e FMeasure) Score(predictions Predictions) float64 {
	return Count(predictions, e.threshold).FMeasure(e.beta)
}

func (e numTruePositives) Name() string {
	return "TruePositives"
}

func (e numTruePositives) Score(predictions Predictions) float64 {
	return float64(Count(predictions, e.threshold).TruePositives)
}

func (e numFalsePositives) Name() string {
	return "FalsePositives"
}

func (e numFalsePositives) Score(predictions Predictions) float64 {
	return float64(Count(predictions, e.threshold).FalsePositives)
}

func (e numFalseNegatives) Name() string {
	return "FalseNegatives"
}

func (e numFalseNegatives) Score(predictions Predictions) float64 {
	return float64(Count(predictions, e.threshold).FalseNegatives)
}

func (pearson) Name() string {
	return "Pearson"
}

// Score is zero when the correlation is undefined.
func (pearson) Score(predictions Predictions) float64 {
	if len(predictions) < 2 {
		return 0
	}
	gold := make([]float64, len(predictions))
	est := make([]float64, len(predictions))
	for i, p := range predictions {
		gold[i] = p.Gold
		est[i] = p.Estimate
	}
	r := stat.Correlation(est, gold, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
