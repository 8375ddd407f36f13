// Package eval measures how well estimates predict the gold labels of
// sentence pairs.
package eval

// Prediction is the estimate of a pair together with its gold label.
type Prediction struct {
	Gold     float64
	Estimate float64
}

// Predictions are the predictions of a test set.
type Predictions []Prediction

// Evaluator is an interface for evaluating a set of predictions.
type Evaluator interface {
	Score(predictions Predictions) float64
	Name() string
}

// Evaluate scores predictions using supplied evaluation measurements.
func Evaluate(evaluators []Evaluator, predictions Predictions) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(predictions)
	}
	return scores
}
