// Command pit2015 trains a paraphrase estimator on the PIT-2015 corpus,
// evaluates it and exports its predictions for the test set.
package main

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/go-errors/errors"
	"github.com/hscells/go-unidecode"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/pit2015/paraphrase"
	"github.com/pit2015/paraphrase/cache"
	"github.com/pit2015/paraphrase/config"
	"github.com/pit2015/paraphrase/corpus"
	"github.com/pit2015/paraphrase/embedding"
	"github.com/pit2015/paraphrase/feature"
	"github.com/pit2015/paraphrase/learning"
	"github.com/pit2015/paraphrase/output"
	"github.com/pit2015/paraphrase/pair"
	"github.com/pit2015/paraphrase/sentence"
)

var (
	name    = "pit2015"
	version = "14.Oct.2026"
)

type args struct {
	Train       string `help:"training data (train.data)" arg:"required"`
	Dev         string `help:"development data (dev.data)"`
	Test        string `help:"test data (test.data)"`
	Output      string `help:"file to write test predictions to" arg:"-o"`
	Config      string `help:"experiment configuration (.properties, .yaml)" arg:"-c"`
	Vectors     string `help:"word2vec binary model" arg:"-w"`
	Estimator   string `help:"estimator to use (regression, kmeans, fuzzykmeans, dbscan)" arg:"-e"`
	Cache       string `help:"directory to cache features in"`
	Format      string `help:"evaluation output format (json, csv)" arg:"-f"`
	Features    string `help:"file to write training features to in libsvm format"`
	Tag         bool   `help:"tag raw sentences of records that have no tag column"`
	Measurement string `help:"file to write cluster statistics to"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
Train, evaluate and predict paraphrase estimators on the PIT-2015 corpus.
# %s`, name, version)
}

func main() {
	var args args
	arg.MustParse(&args)

	c := config.Default()
	if len(args.Config) > 0 {
		var err error
		c, err = config.Load(args.Config)
		if err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
	}
	if len(args.Estimator) > 0 {
		c.Estimator = args.Estimator
	}

	train := load(args.Train, args.Tag)
	var dev, test corpus.Records
	if len(args.Dev) > 0 {
		dev = load(args.Dev, args.Tag)
	}
	if len(args.Test) > 0 {
		test = load(args.Test, args.Tag)
	}

	var normalise func(string) string
	if c.Unidecode {
		normalise = unidecode.Unidecode
	}

	var table feature.WordVectors
	if len(args.Vectors) > 0 {
		vocabulary := append(append(train.NormalisedVocabulary(normalise), dev.NormalisedVocabulary(normalise)...), test.NormalisedVocabulary(normalise)...)
		log.Printf("loading word vectors for %d words from %s...\n", len(vocabulary), args.Vectors)
		vectors, err := embedding.LoadBinaryFile(args.Vectors, vocabulary)
		if err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
		log.Printf("found %d word vectors\n", vectors.Len())
		table = vectors
	}

	stem, ok := feature.StemmerByName(c.Stemmer)
	if !ok {
		log.Fatalf("unknown stemmer %s\n", c.Stemmer)
	}
	stem, err := feature.NewCachedStemmer(stem, 1<<16)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}
	options := []func(e *feature.Extractor){
		feature.ExtractorLambda(c.Lambda),
		feature.ExtractorOOVSimilarity(c.OOVSimilarity),
		feature.ExtractorStemmer(stem),
	}
	if normalise != nil {
		options = append(options, feature.ExtractorNormaliser(normalise))
	}
	extractor := feature.NewExtractor(table, options...)

	estimator, err := learning.New(c.Estimator, c)
	if err != nil {
		log.Fatalln(err)
	}

	formatter := output.JsonEvaluationFormatter
	if args.Format == "csv" {
		formatter = output.CsvEvaluationFormatter
	}
	components := []func() interface{}{
		paraphrase.EvaluationOutput(formatter),
		paraphrase.MeasurementOutput(output.CsvMeasurementFormatter),
		paraphrase.SkipDebatable(c.SkipDebatable),
		paraphrase.Threshold(c.Threshold),
		paraphrase.Workers(c.Workers),
	}
	if len(args.Output) > 0 {
		components = append(components, paraphrase.PredictionOutput(args.Output))
	}
	if len(args.Cache) > 0 {
		namespace := fmt.Sprintf("lambda=%v oov=%v stemmer=%s unidecode=%t vectors=%s",
			c.Lambda, c.OOVSimilarity, c.Stemmer, c.Unidecode, path.Base(args.Vectors))
		components = append(components, paraphrase.FeatureCache(cache.NewDiskFeatureCache(args.Cache), namespace))
	}
	labels := pair.DefaultLabelTable()
	experiment := paraphrase.NewExperiment(extractor, labels, estimator, components...)

	if len(args.Features) > 0 {
		writeFeatures(args.Features, extractor, labels, train)
	}

	results := make(chan paraphrase.Result)
	go experiment.Execute(train, dev, test, results)
	for result := range results {
		switch result.Type {
		case paraphrase.Error:
			log.Fatalln(errors.Wrap(result.Error, 0).ErrorStack())
		case paraphrase.Training:
			log.Printf("run %s trained on %d pairs\n", result.RunID, result.Trained)
		case paraphrase.Measurement:
			if len(args.Measurement) > 0 {
				if err := ioutil.WriteFile(args.Measurement, []byte(result.Measurements[0]), 0644); err != nil {
					log.Fatalln(err)
				}
			} else {
				fmt.Println(result.Measurements[0])
			}
		case paraphrase.Evaluation:
			fmt.Println(result.Evaluations[0])
		case paraphrase.Prediction:
			log.Printf("predicted %d test pairs\n", len(result.Predictions))
		}
	}
}

// load reads a corpus file, tagging raw sentences when asked to.
func load(file string, tag bool) corpus.Records {
	log.Printf("loading %s...\n", file)
	records, err := corpus.ReadFile(file)
	if err != nil {
		log.Fatalln(errors.Wrap(err, 0).ErrorStack())
	}
	if !tag {
		return records
	}

	tagger := sentence.NewTagger()
	bar := pb.StartNew(len(records))
	for i, r := range records {
		if len(strings.TrimSpace(r.Sentence1Tags)) == 0 {
			records[i].Sentence1Tags, err = tagger.Tag(r.Sentence1)
			if err != nil {
				log.Fatalln(err)
			}
		}
		if len(strings.TrimSpace(r.Sentence2Tags)) == 0 {
			records[i].Sentence2Tags, err = tagger.Tag(r.Sentence2)
			if err != nil {
				log.Fatalln(err)
			}
		}
		bar.Increment()
	}
	bar.Finish()
	return records
}

// writeFeatures writes the features of labelled records in libsvm format.
func writeFeatures(file string, extractor *feature.Extractor, labels pair.LabelTable, records corpus.Records) {
	f, err := os.Create(file)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)

	log.Printf("writing features of %d pairs to %s...\n", len(records), file)
	bar := pb.StartNew(len(records))
	for i, r := range records {
		bar.Increment()
		label, err := labels.Lookup(r.Label)
		if err != nil {
			log.Fatalln(err)
		}
		ff, err := extractor.Extract(r.Sentence1Tags, r.Sentence2Tags)
		if err != nil {
			log.Fatalln(errors.Wrap(err, 0).ErrorStack())
		}
		if _, err := ff.WriteLibSVM(w, label, "pair", i); err != nil {
			log.Fatalln(err)
		}
	}
	bar.Finish()
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}
