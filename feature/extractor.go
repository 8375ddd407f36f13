package feature

import (
	"github.com/pit2015/paraphrase/sentence"
	"github.com/pkg/errors"
)

// Names of the similarity features.
const (
	WordOrder         = "wordOrder"
	SemanticWordOrder = "ssv+wo"
	EmbeddingCosine   = "word2vec_cossim"
	VectorSemantic    = "semw2v"
	VectorCosine      = "w2v_cos_sim"
)

const (
	defaultStemCache   = 1 << 16
	numSimilarityFeats = 5
)

// Extractor computes the feature vector of a sentence pair. An extractor keeps
// no state about the pairs it has seen, so one extractor may be used for any
// number of pairs, including concurrently.
type Extractor struct {
	table     WordVectors
	lambda    float64
	oov       float64
	stem      Stemmer
	normalise func(string) string
}

// ExtractorLambda sets the weight of semantic similarity when it is blended
// with word order similarity.
func ExtractorLambda(lambda float64) func(e *Extractor) {
	return func(e *Extractor) {
		e.lambda = lambda
	}
}

// ExtractorStemmer sets the stemmer used for the stemmed n-gram features.
func ExtractorStemmer(stem Stemmer) func(e *Extractor) {
	return func(e *Extractor) {
		e.stem = stem
	}
}

// ExtractorOOVSimilarity sets the similarity used when a word has no vector.
func ExtractorOOVSimilarity(sim float64) func(e *Extractor) {
	return func(e *Extractor) {
		e.oov = sim
	}
}

// ExtractorNormaliser sets a function applied to every word before any
// feature is computed, e.g. unidecode.Unidecode.
func ExtractorNormaliser(normalise func(string) string) func(e *Extractor) {
	return func(e *Extractor) {
		e.normalise = normalise
	}
}

// NewExtractor creates a feature extractor. The word vector table is only
// read; a nil table behaves as if it contained no words.
func NewExtractor(table WordVectors, options ...func(e *Extractor)) *Extractor {
	e := &Extractor{
		table:  table,
		lambda: DefaultLambda,
	}
	if e.table == nil {
		e.table = EmptyVectorTable()
	}
	for _, o := range options {
		o(e)
	}
	if e.stem == nil {
		stem, err := NewCachedStemmer(PorterStemmer, defaultStemCache)
		if err != nil {
			stem = PorterStemmer
		}
		e.stem = stem
	}
	return e
}

// FeatureNames lists the names of the extracted features in vector order.
func FeatureNames() []string {
	names := []string{WordOrder, SemanticWordOrder, EmbeddingCosine, VectorSemantic, VectorCosine}
	return append(names, NGramFeatures{}.Features().Names()...)
}

// NumFeatures is the length of an extracted feature vector.
func NumFeatures() int {
	return numSimilarityFeats + MaxNGram*6
}

// Normalise applies the extractor's normaliser to a word.
func (e *Extractor) Normalise(word string) string {
	if e.normalise == nil {
		return word
	}
	return e.normalise(word)
}

// Extract parses two tagged sentences and computes their feature vector.
func (e *Extractor) Extract(tags1, tags2 string) (Features, error) {
	s1, err := sentence.Parse(tags1)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse first sentence")
	}
	s2, err := sentence.Parse(tags2)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse second sentence")
	}
	return e.ExtractSentences(s1, s2), nil
}

// ExtractSentences computes the feature vector of two parsed sentences.
func (e *Extractor) ExtractSentences(s1, s2 sentence.TaggedSentence) Features {
	s1, s2 = e.normaliseSentence(s1), e.normaliseSentence(s2)
	vs := VectorSimilarity{Table: e.table, OOV: e.oov}

	ff := make(Features, 0, NumFeatures())
	ff = append(ff,
		NewFeature(WordOrder, WordOrderSimilarity(s1.Words, s2.Words)),
		NewFeature(SemanticWordOrder, SemanticSimilarity(s1.Words, s2.Words, e.lambda)),
		NewFeature(EmbeddingCosine, EmbeddingCosineSimilarity(s1.Words, s2.Words, e.table)),
		NewFeature(VectorSemantic, vs.Semantic(s1, s2, e.lambda)),
		NewFeature(VectorCosine, vs.Cosine(s1, s2)))
	return append(ff, ComputeNGramFeatures(s1.Words, s2.Words, e.stem).Features()...)
}

func (e *Extractor) normaliseSentence(s sentence.TaggedSentence) sentence.TaggedSentence {
	if e.normalise == nil {
		return s
	}
	words := make([]string, len(s.Words))
	for i, w := range s.Words {
		words[i] = e.normalise(w)
	}
	return sentence.TaggedSentence{Words: words, Lemmas: s.Lemmas, Tags: s.Tags}
}
