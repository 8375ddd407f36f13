package feature

import (
	"strconv"
	"strings"
)

// MaxNGram is the largest n-gram size used for overlap features.
const MaxNGram = 3

// NGramOverlap is the precision, recall and F1 of the n-gram overlap between
// two sentences.
type NGramOverlap struct {
	Precision float64
	Recall    float64
	F1        float64
}

// NGramFeatures holds every n-gram overlap of a sentence pair, computed once.
// Index 0 holds 1-grams.
type NGramFeatures struct {
	Raw     [MaxNGram]NGramOverlap
	Stemmed [MaxNGram]NGramOverlap
}

// NGrams builds the n-grams of a word sequence with a sliding window. A
// sequence shorter than n has no n-grams.
func NGrams(words []string, n int) []string {
	if n <= 0 || len(words) < n {
		return nil
	}
	grams := make([]string, 0, len(words)-n+1)
	for i := 0; i+n <= len(words); i++ {
		grams = append(grams, strings.Join(words[i:i+n], " "))
	}
	return grams
}

// OverlapCount counts the pairs (i, j) for which the i-th item of a equals the
// j-th item of b, ignoring case. An item matching several counterparts is
// counted once for each of them.
func OverlapCount(a, b []string) int {
	count := 0
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				count++
			}
		}
	}
	return count
}

// Overlap computes the n-gram overlap of two word sequences. Precision is
// relative to s1 and recall to s2. When a sequence has no n-grams the metric
// relative to it is 0, and F1 is 0 whenever precision+recall is 0. Since the
// overlap count is many-to-many, precision and recall are capped at 1.
func Overlap(s1, s2 []string, n int) NGramOverlap {
	g1, g2 := NGrams(s1, n), NGrams(s2, n)
	common := float64(OverlapCount(g1, g2))

	var o NGramOverlap
	if len(g1) > 0 {
		o.Precision = capUnit(common / float64(len(g1)))
	}
	if len(g2) > 0 {
		o.Recall = capUnit(common / float64(len(g2)))
	}
	if o.Precision+o.Recall > 0 {
		o.F1 = 2 * o.Precision * o.Recall / (o.Precision + o.Recall)
	}
	return o
}

func capUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	return x
}

// ComputeNGramFeatures computes the 1, 2 and 3-gram overlaps of a sentence
// pair on the surface words and on their stems.
func ComputeNGramFeatures(s1, s2 []string, stem Stemmer) NGramFeatures {
	var nf NGramFeatures
	st1, st2 := stem.Stem(s1), stem.Stem(s2)
	for n := 1; n <= MaxNGram; n++ {
		nf.Raw[n-1] = Overlap(s1, s2, n)
		nf.Stemmed[n-1] = Overlap(st1, st2, n)
	}
	return nf
}

// Features returns the 18 n-gram features. For each n the raw precision,
// recall and F1 precede the stemmed ones.
func (nf NGramFeatures) Features() Features {
	ff := make(Features, 0, MaxNGram*6)
	for i := 0; i < MaxNGram; i++ {
		prefix := strconv.Itoa(i+1) + "gram"
		ff = append(ff,
			NewFeature(prefix+"Precision", nf.Raw[i].Precision),
			NewFeature(prefix+"Recall", nf.Raw[i].Recall),
			NewFeature(prefix+"F1", nf.Raw[i].F1),
			NewFeature(prefix+"StemPrecision", nf.Stemmed[i].Precision),
			NewFeature(prefix+"StemRecall", nf.Stemmed[i].Recall),
			NewFeature(prefix+"StemF1", nf.Stemmed[i].F1))
	}
	return ff
}
