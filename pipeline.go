// Package paraphrase provides a framework for constructing reproducible
// paraphrase identification experiments on the PIT-2015 corpus.
package paraphrase

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pit2015/paraphrase/cache"
	"github.com/pit2015/paraphrase/corpus"
	"github.com/pit2015/paraphrase/eval"
	"github.com/pit2015/paraphrase/feature"
	"github.com/pit2015/paraphrase/learning"
	"github.com/pit2015/paraphrase/output"
	"github.com/pit2015/paraphrase/pair"
)

// Experiment contains all the information for training an estimator on
// sentence pairs, evaluating it and exporting its predictions.
type Experiment struct {
	RunID                 uuid.UUID
	Extractor             *feature.Extractor
	Labels                pair.LabelTable
	Estimator             learning.Estimator
	Evaluations           []eval.Evaluator
	EvaluationFormatters  []output.EvaluationFormatter
	MeasurementFormatters []output.MeasurementFormatter
	OutputPredictions     output.Predictions
	FeatureCache          cache.FeatureCacher
	CacheNamespace        string
	SkipDebatable         bool
	Threshold             float64
	Workers               int
}

type featureCache struct {
	cacher    cache.FeatureCacher
	namespace string
}

type skipDebatable bool
type threshold float64
type workers int

// Evaluation adds evaluation measures to the experiment.
func Evaluation(measures ...eval.Evaluator) func() interface{} {
	return func() interface{} {
		return measures
	}
}

// EvaluationOutput adds evaluation formatters to the experiment.
func EvaluationOutput(formatters ...output.EvaluationFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// MeasurementOutput adds cluster statistics formatters to the experiment.
func MeasurementOutput(formatters ...output.MeasurementFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// PredictionOutput writes the predictions of the test pairs to path.
func PredictionOutput(path string) func() interface{} {
	return func() interface{} {
		return output.Predictions{
			Path: path,
		}
	}
}

// FeatureCache stores the features of every pair in c. Features computed with
// different extractor settings must use different namespaces.
func FeatureCache(c cache.FeatureCacher, namespace string) func() interface{} {
	return func() interface{} {
		return featureCache{cacher: c, namespace: namespace}
	}
}

// SkipDebatable controls whether debatable pairs are left out of training.
func SkipDebatable(skip bool) func() interface{} {
	return func() interface{} {
		return skipDebatable(skip)
	}
}

// Threshold sets the score at or above which a pair is a paraphrase.
func Threshold(t float64) func() interface{} {
	return func() interface{} {
		return threshold(t)
	}
}

// Workers sets how many pairs have their features extracted at once.
func Workers(n int) func() interface{} {
	return func() interface{} {
		return workers(n)
	}
}

// NewExperiment creates a new experiment. The extractor, label table and
// estimator are required. Additional components are provided via the optional
// functional arguments.
func NewExperiment(extractor *feature.Extractor, labels pair.LabelTable, estimator learning.Estimator, components ...func() interface{}) Experiment {
	e := Experiment{
		RunID:         uuid.New(),
		Extractor:     extractor,
		Labels:        labels,
		Estimator:     estimator,
		SkipDebatable: true,
		Threshold:     pair.DefaultThreshold,
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case []eval.Evaluator:
			e.Evaluations = v
		case []output.EvaluationFormatter:
			e.EvaluationFormatters = v
		case []output.MeasurementFormatter:
			e.MeasurementFormatters = v
		case output.Predictions:
			e.OutputPredictions = v
		case featureCache:
			e.FeatureCache = v.cacher
			e.CacheNamespace = v.namespace
		case skipDebatable:
			e.SkipDebatable = bool(v)
		case threshold:
			e.Threshold = float64(v)
		case workers:
			e.Workers = int(v)
		}
	}

	if e.Evaluations == nil {
		e.Evaluations = eval.AtThreshold(e.Threshold)
	}
	return e
}

// Execute trains the estimator on the training records, evaluates it on the
// development and test records and predicts the test records. Either of dev
// and test may be empty. Test records whose label is not in the label table
// are predicted but not evaluated.
func (e Experiment) Execute(train, dev, test corpus.Records, c chan Result) {
	defer close(c)
	runID := e.RunID.String()
	log.Printf("starting experiment %s with the %s estimator...\n", runID, e.Estimator.Name())

	fail := func(err error) {
		c <- Result{
			RunID: runID,
			Error: err,
			Type:  Error,
		}
	}

	log.Printf("extracting features of %d training pairs...\n", len(train))
	trainingPairs, err := e.pairs(train)
	if err != nil {
		fail(errors.Wrap(err, "training"))
		return
	}
	n := 0
	for _, p := range trainingPairs {
		if e.SkipDebatable && p.IsDebatable() {
			continue
		}
		e.Estimator.FeedData(p.Vector(), p.Label())
		n++
	}
	log.Printf("building the %s estimator from %d pairs...\n", e.Estimator.Name(), n)
	if err := e.Estimator.Build(); err != nil {
		fail(errors.Wrap(err, "training"))
		return
	}
	c <- Result{
		RunID:   runID,
		Trained: n,
		Type:    Training,
	}

	if ce, ok := e.Estimator.(learning.ClusterEstimator); ok && len(e.MeasurementFormatters) > 0 {
		rows, headers, data := output.ClusterMeasurements(ce.Clusters())
		measurements := make([]string, len(e.MeasurementFormatters))
		for i, formatter := range e.MeasurementFormatters {
			measurements[i], err = formatter(rows, headers, data)
			if err != nil {
				fail(err)
				return
			}
		}
		log.Printf("found %d clusters with purity %.3f and entropy %.3f\n", len(ce.Clusters()), ce.Purity(), ce.Entropy())
		c <- Result{
			RunID:        runID,
			Measurements: measurements,
			Type:         Measurement,
		}
	}

	scores := make(map[string]map[string]float64)
	if len(dev) > 0 {
		log.Printf("evaluating %d development pairs...\n", len(dev))
		pairs, err := e.pairs(dev)
		if err != nil {
			fail(errors.Wrap(err, "development"))
			return
		}
		predictions, _, err := e.predict(pairs)
		if err != nil {
			fail(errors.Wrap(err, "development"))
			return
		}
		scores["dev"] = eval.Evaluate(e.Evaluations, predictions)
	}

	if len(test) > 0 {
		log.Printf("predicting %d test pairs...\n", len(test))
		features, err := e.features(test)
		if err != nil {
			fail(errors.Wrap(err, "test"))
			return
		}
		labelled := true
		pairs := make([]pair.PairData, len(test))
		for i, r := range test {
			label, err := e.Labels.Lookup(r.Label)
			if err != nil {
				labelled = false
			}
			pairs[i] = pair.New(label, features[i])
		}
		predictions, estimates, err := e.predict(pairs)
		if err != nil {
			fail(errors.Wrap(err, "test"))
			return
		}
		if labelled {
			scores["test"] = eval.Evaluate(e.Evaluations, predictions)
		} else {
			log.Println("test pairs are not labelled, so they are not evaluated")
		}

		if len(e.OutputPredictions.Path) > 0 {
			p := e.OutputPredictions
			p.Scores = estimates
			p.Threshold = e.Threshold
			if err := p.Write(); err != nil {
				fail(err)
				return
			}
			log.Printf("wrote predictions to %s\n", p.Path)
		}
		c <- Result{
			RunID:       runID,
			Predictions: estimates,
			Type:        Prediction,
		}
	}

	if len(scores) > 0 {
		evaluations := make([]string, len(e.EvaluationFormatters))
		for i, formatter := range e.EvaluationFormatters {
			evaluations[i], err = formatter(scores)
			if err != nil {
				fail(err)
				return
			}
		}
		c <- Result{
			RunID:       runID,
			Evaluations: evaluations,
			Scores:      scores,
			Type:        Evaluation,
		}
	}

	log.Println("experiment complete")
	c <- Result{
		RunID: runID,
		Type:  Done,
	}
}

// pairs labels the features of records.
func (e Experiment) pairs(records corpus.Records) ([]pair.PairData, error) {
	features, err := e.features(records)
	if err != nil {
		return nil, err
	}
	pairs := make([]pair.PairData, len(records))
	for i, r := range records {
		label, err := e.Labels.Lookup(r.Label)
		if err != nil {
			return nil, errors.Wrapf(err, "pair %d", i)
		}
		pairs[i] = pair.New(label, features[i])
	}
	return pairs, nil
}

// features extracts the features of records, reading and filling the cache
// when there is one.
func (e Experiment) features(records corpus.Records) ([]feature.Features, error) {
	features := make([]feature.Features, len(records))
	var (
		missing []int
		tagged  []feature.TaggedPair
		keys    = make([]string, len(records))
	)
	for i, r := range records {
		if e.FeatureCache != nil {
			keys[i] = cache.Key(e.CacheNamespace, r.Sentence1Tags, r.Sentence2Tags)
			ff, err := e.FeatureCache.Get(keys[i])
			if err == nil {
				features[i] = ff
				continue
			} else if err != cache.CacheMissError {
				return nil, err
			}
		}
		missing = append(missing, i)
		tagged = append(tagged, feature.TaggedPair{Sentence1: r.Sentence1Tags, Sentence2: r.Sentence2Tags})
	}
	if len(missing) == 0 {
		return features, nil
	}
	if e.FeatureCache != nil {
		log.Printf("%d of %d pairs are not cached\n", len(missing), len(records))
	}

	extracted, err := feature.ExtractAll(context.Background(), e.Extractor, tagged, e.Workers)
	if err != nil {
		return nil, err
	}
	for j, i := range missing {
		features[i] = extracted[j]
		if e.FeatureCache != nil {
			if err := e.FeatureCache.Set(keys[i], extracted[j]); err != nil {
				return nil, err
			}
		}
	}
	return features, nil
}

// predict estimates every pair.
func (e Experiment) predict(pairs []pair.PairData) (eval.Predictions, []float64, error) {
	predictions := make(eval.Predictions, len(pairs))
	estimates := make([]float64, len(pairs))
	for i, p := range pairs {
		s, err := e.Estimator.Estimate(p.Vector())
		if err != nil {
			return nil, nil, errors.Wrapf(err, "pair %d", i)
		}
		estimates[i] = s
		predictions[i] = eval.Prediction{Gold: p.Label(), Estimate: s}
	}
	return predictions, estimates, nil
}
