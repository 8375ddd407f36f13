// Package pair binds paraphrase labels to the features of sentence pairs.
package pair

import (
	"github.com/pit2015/paraphrase/feature"
)

// The ordinal label scale, derived from how many of five annotators judged a
// pair to be a paraphrase.
const (
	LabelNonParaphrase00 = 0.0
	LabelNonParaphrase02 = 0.2
	LabelDebatable       = 0.4
	LabelParaphrase06    = 0.6
	LabelParaphrase08    = 0.8
	LabelParaphrase10    = 1.0
)

// DefaultThreshold is the score at or above which a pair is a paraphrase.
const DefaultThreshold = 0.4

// Scale lists every label in ascending order.
var Scale = []float64{
	LabelNonParaphrase00,
	LabelNonParaphrase02,
	LabelDebatable,
	LabelParaphrase06,
	LabelParaphrase08,
	LabelParaphrase10,
}

// OnScale reports whether a value is one of the labels of the scale.
func OnScale(label float64) bool {
	for _, l := range Scale {
		if l == label {
			return true
		}
	}
	return false
}

// PairData is the label of a sentence pair and its features. It is never
// modified once created.
type PairData struct {
	label    float64
	features feature.Features
}

// New creates pair data. The features are copied.
func New(label float64, features feature.Features) PairData {
	return PairData{
		label:    label,
		features: features.Copy(),
	}
}

// Label is the label of the pair.
func (p PairData) Label() float64 {
	return p.label
}

// Features returns a copy of the features of the pair.
func (p PairData) Features() feature.Features {
	return p.features.Copy()
}

// Feature returns a feature by name.
func (p PairData) Feature(name string) (feature.Feature, bool) {
	return p.features.Get(name)
}

// Vector is the positional vector of feature values.
func (p PairData) Vector() []float64 {
	return p.features.Values()
}

// IsParaphrase reports whether the label is a paraphrase label.
func (p PairData) IsParaphrase() bool {
	return p.label >= LabelParaphrase06
}

// IsNonParaphrase reports whether the label is a non-paraphrase label.
func (p PairData) IsNonParaphrase() bool {
	return p.label < LabelDebatable
}

// IsDebatable reports whether annotators could not agree on the pair.
func (p PairData) IsDebatable() bool {
	return p.label == LabelDebatable
}

// IsParaphrase decides whether a score predicts a paraphrase.
func IsParaphrase(score, threshold float64) bool {
	return score >= threshold
}

// Clamp limits a score to [0, 1].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
