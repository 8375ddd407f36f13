package feature_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/hscells/go-unidecode"
	"github.com/pit2015/paraphrase/feature"
	"github.com/pit2015/paraphrase/sentence"
)

const (
	catsTags = "I/I/PRP love/love/VBP cats/cat/NNS"
	dogsTags = "I/I/PRP love/love/VBP dogs/dog/NNS"
)

func value(t *testing.T, ff feature.Features, name string) float64 {
	f, ok := ff.Get(name)
	if !ok {
		t.Fatalf("feature %s missing", name)
	}
	return f.Value
}

func TestExtractor_Extract(t *testing.T) {
	e := feature.NewExtractor(testTable(t))
	ff, err := e.Extract(catsTags, dogsTags)
	if err != nil {
		t.Fatal(err)
	}

	if len(ff) != feature.NumFeatures() {
		t.Fatalf("expected %d features, got %d", feature.NumFeatures(), len(ff))
	}
	names := feature.FeatureNames()
	for i, f := range ff {
		if f.Name != names[i] {
			t.Errorf("feature %d: expected %s, got %s", i, names[i], f.Name)
		}
	}
	if err := ff.Validate(); err != nil {
		t.Error(err)
	}

	for _, name := range []string{"1gramPrecision", "1gramRecall", "1gramF1", "1gramStemPrecision", "1gramStemF1"} {
		if v := value(t, ff, name); !near(v, 2.0/3.0) {
			t.Errorf("%s: expected 2/3, got %f", name, v)
		}
	}
	if v := value(t, ff, "3gramF1"); v != 0 {
		t.Errorf("expected no trigram overlap, got %f", v)
	}
	if v := value(t, ff, feature.WordOrder); !near(v, 1) {
		t.Errorf("expected word order similarity of 1, got %f", v)
	}
}

func TestExtractor_NoPairState(t *testing.T) {
	e := feature.NewExtractor(testTable(t))
	first, err := e.Extract(catsTags, dogsTags)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Extract("a/a/DT dog/dog/NN", "the/the/DT cat/cat/NN sat/sit/VBD"); err != nil {
		t.Fatal(err)
	}
	again, err := e.Extract(catsTags, dogsTags)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != again[i] {
			t.Errorf("feature %s changed from %f to %f", first[i].Name, first[i].Value, again[i].Value)
		}
	}
}

func TestExtractor_FormatError(t *testing.T) {
	e := feature.NewExtractor(nil)
	_, err := e.Extract(catsTags, "I/I/PRP love")
	if err == nil {
		t.Fatal("expected an error")
	}
	var fe *sentence.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a FormatError, got %v", err)
	}
	if fe.Token != "love" {
		t.Errorf("expected the offending token love, got %q", fe.Token)
	}
}

func TestExtractor_Normaliser(t *testing.T) {
	s1, s2 := "café/café/NN", "cafe/cafe/NN"

	plain := feature.NewExtractor(nil)
	ff, err := plain.Extract(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	if v := value(t, ff, "1gramPrecision"); v != 0 {
		t.Errorf("expected no overlap without normalisation, got %f", v)
	}

	normalised := feature.NewExtractor(nil, feature.ExtractorNormaliser(unidecode.Unidecode))
	ff, err = normalised.Extract(s1, s2)
	if err != nil {
		t.Fatal(err)
	}
	if v := value(t, ff, "1gramPrecision"); v != 1 {
		t.Errorf("expected full overlap with normalisation, got %f", v)
	}
}

func TestExtractAll(t *testing.T) {
	e := feature.NewExtractor(testTable(t), feature.ExtractorLambda(0.5))
	pairs := []feature.TaggedPair{
		{Sentence1: catsTags, Sentence2: dogsTags},
		{Sentence1: "cat/cat/NN", Sentence2: "dog/dog/NN"},
		{Sentence1: dogsTags, Sentence2: dogsTags},
	}

	all, err := feature.ExtractAll(context.Background(), e, pairs, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(pairs) {
		t.Fatalf("expected %d results, got %d", len(pairs), len(all))
	}
	for i, p := range pairs {
		ff, err := e.Extract(p.Sentence1, p.Sentence2)
		if err != nil {
			t.Fatal(err)
		}
		if ff.String() != all[i].String() {
			t.Errorf("pair %d: expected %s, got %s", i, ff, all[i])
		}
	}

	pairs = append(pairs, feature.TaggedPair{Sentence1: "broken", Sentence2: catsTags})
	if _, err := feature.ExtractAll(context.Background(), e, pairs, 2); err == nil {
		t.Error("expected an error for a malformed pair")
	}
}

func TestFeatures_WriteLibSVM(t *testing.T) {
	ff := feature.Features{feature.NewFeature("a", 1), feature.NewFeature("b", 0.5)}
	var buff bytes.Buffer
	if _, err := ff.WriteLibSVM(&buff, 0.8, "pair", 3); err != nil {
		t.Fatal(err)
	}
	if buff.String() != "0.8 1:1 2:0.5 # pair 3\n" {
		t.Errorf("unexpected line %q", buff.String())
	}
	if v := ff.Values(); len(v) != 2 || v[1] != 0.5 {
		t.Errorf("unexpected values %v", v)
	}
	dup := append(ff.Copy(), feature.NewFeature("a", 2))
	if err := dup.Validate(); err == nil {
		t.Error("expected duplicate names to be rejected")
	}
}

func TestStemmers(t *testing.T) {
	cached, err := feature.NewCachedStemmer(feature.PorterStemmer, 8)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"running", "Cats", "ponies", "running"} {
		if cached(w) != feature.PorterStemmer(w) {
			t.Errorf("%s: cached stem %s differs from %s", w, cached(w), feature.PorterStemmer(w))
		}
	}
	if s := feature.PorterStemmer("Cats"); s != "cat" {
		t.Errorf("expected cat, got %s", s)
	}
	if s := feature.Porter2Stemmer("running"); s != "run" {
		t.Errorf("expected run, got %s", s)
	}
	if _, ok := feature.StemmerByName("lancaster"); ok {
		t.Error("expected an unknown stemmer")
	}
}
