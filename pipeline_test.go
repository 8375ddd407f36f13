package paraphrase_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/pit2015/paraphrase"
	"github.com/pit2015/paraphrase/cache"
	"github.com/pit2015/paraphrase/corpus"
	"github.com/pit2015/paraphrase/feature"
	"github.com/pit2015/paraphrase/learning"
	"github.com/pit2015/paraphrase/output"
	"github.com/pit2015/paraphrase/pair"
)

const (
	purr   = "cats/O/NNS purr/O/VBP loudly/O/RB"
	fell   = "stocks/O/NNS fell/O/VBD today/O/NN"
	bark   = "dogs/O/NNS bark/O/VBP loudly/O/RB"
	rose   = "prices/O/NNS rose/O/VBD sharply/O/RB"
	misc   = "the/O/DT game/O/NN starts/O/VBZ"
	debate = "cats/O/NNS purr/O/VBP"
)

func record(s1, s2, label string) corpus.Record {
	return corpus.Record{Sentence1Tags: s1, Sentence2Tags: s2, Label: label}
}

var (
	train = corpus.Records{
		record(purr, purr, "(5, 0)"),
		record(fell, fell, "(4, 1)"),
		record(bark, bark, "(5, 0)"),
		record(purr, fell, "(0, 5)"),
		record(bark, rose, "(0, 5)"),
		record(rose, misc, "(1, 4)"),
		record(purr, debate, "(2, 3)"),
	}
	dev = corpus.Records{
		record(rose, rose, "(5, 0)"),
		record(misc, purr, "(0, 5)"),
	}
	test = corpus.Records{
		record(misc, misc, ""),
		record(fell, bark, ""),
	}
)

func collect(c chan paraphrase.Result) []paraphrase.Result {
	var results []paraphrase.Result
	for r := range c {
		results = append(results, r)
	}
	return results
}

func TestExperiment(t *testing.T) {
	dir, err := ioutil.TempDir("", "experiment")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	predictions := filepath.Join(dir, "test.output")

	c := cache.NewMapFeatureCache()
	e := paraphrase.NewExperiment(
		feature.NewExtractor(nil),
		pair.DefaultLabelTable(),
		learning.NewKMeans(learning.KMeansClusters(2)),
		paraphrase.EvaluationOutput(output.JsonEvaluationFormatter),
		paraphrase.MeasurementOutput(output.CsvMeasurementFormatter),
		paraphrase.PredictionOutput(predictions),
		paraphrase.FeatureCache(c, "test"),
	)

	ch := make(chan paraphrase.Result)
	go e.Execute(train, dev, test, ch)
	results := collect(ch)

	var types []paraphrase.ResultType
	for _, r := range results {
		if r.Type == paraphrase.Error {
			t.Fatal(r.Error)
		}
		if r.RunID != e.RunID.String() {
			t.Errorf("expected run %s, got %s", e.RunID, r.RunID)
		}
		types = append(types, r.Type)
	}
	expected := []paraphrase.ResultType{paraphrase.Training, paraphrase.Measurement, paraphrase.Prediction, paraphrase.Evaluation, paraphrase.Done}
	if len(types) != len(expected) {
		t.Fatalf("expected results %v, got %v", expected, types)
	}
	for i := range expected {
		if types[i] != expected[i] {
			t.Fatalf("expected results %v, got %v", expected, types)
		}
	}

	if results[0].Trained != 6 {
		t.Errorf("expected the debatable pair to be skipped, trained on %d", results[0].Trained)
	}
	if !strings.HasPrefix(results[1].Measurements[0], "Cluster,Size") {
		t.Errorf("unexpected measurements %q", results[1].Measurements[0])
	}
	if p := results[2].Predictions; len(p) != 2 || p[0] != 1 || p[1] != 0 {
		t.Errorf("expected predictions [1 0], got %v", p)
	}
	scores := results[3].Scores
	if _, ok := scores["test"]; ok {
		t.Error("expected unlabelled test pairs not to be evaluated")
	}
	if scores["dev"]["F1"] != 1 {
		t.Errorf("expected a perfect development F1, got %v", scores["dev"])
	}

	b, err := ioutil.ReadFile(predictions)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "true\t1.0000\nfalse\t0.0000\n" {
		t.Errorf("unexpected predictions %q", string(b))
	}

	if _, err := c.Get(cache.Key("test", purr, fell)); err != nil {
		t.Errorf("expected training features to be cached, got %v", err)
	}
}

func TestExperiment_Error(t *testing.T) {
	e := paraphrase.NewExperiment(
		feature.NewExtractor(nil),
		pair.DefaultLabelTable(),
		learning.NewRegression(),
	)
	ch := make(chan paraphrase.Result)
	go e.Execute(corpus.Records{record(purr, purr, "(9, 9)")}, nil, nil, ch)
	results := collect(ch)
	if len(results) != 1 || results[0].Type != paraphrase.Error {
		t.Fatalf("expected a single error, got %+v", results)
	}
	if _, ok := errors.Cause(results[0].Error).(*pair.UnmappedLabelError); !ok {
		t.Errorf("expected an UnmappedLabelError, got %v", results[0].Error)
	}
}

func TestExperiment_Untrainable(t *testing.T) {
	e := paraphrase.NewExperiment(
		feature.NewExtractor(nil),
		pair.DefaultLabelTable(),
		learning.NewRegression(),
		paraphrase.SkipDebatable(true),
	)
	ch := make(chan paraphrase.Result)
	go e.Execute(corpus.Records{record(purr, debate, "(2, 3)")}, dev, nil, ch)
	results := collect(ch)
	if len(results) != 1 || results[0].Type != paraphrase.Error {
		t.Fatalf("expected a single error, got %+v", results)
	}
}
