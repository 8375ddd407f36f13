package paraphrase

type ResultType uint8

const (
	Training ResultType = iota
	Measurement
	Evaluation
	Prediction
	Error
	Done
)

// Result is the output of an experiment.
type Result struct {
	RunID string
	// Trained is the number of pairs the estimator was built from.
	Trained int
	// Measurements are the formatted cluster statistics of a cluster estimator.
	Measurements []string
	// Evaluations are the formatted evaluations, and Scores the raw ones, keyed
	// by dataset and then by measurement.
	Evaluations []string
	Scores      map[string]map[string]float64
	// Predictions are the scores of the test pairs, in order.
	Predictions []float64
	Error       error
	Type        ResultType
}
