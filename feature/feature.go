// Package feature computes the lexical and semantic similarity features of a
// pair of tagged sentences.
package feature

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Feature is a named value computed for a sentence pair.
type Feature struct {
	Name  string
	Value float64
}

// NewFeature creates a new feature with the specified name and value.
func NewFeature(name string, value float64) Feature {
	return Feature{Name: name, Value: value}
}

// Features is an ordered feature vector. The position of a feature is
// significant: estimators index features positionally, so the same order must
// be used for training and prediction.
type Features []Feature

// Values returns the positional vector of feature values.
func (ff Features) Values() []float64 {
	v := make([]float64, len(ff))
	for i, f := range ff {
		v[i] = f.Value
	}
	return v
}

// Names returns the feature names in order.
func (ff Features) Names() []string {
	n := make([]string, len(ff))
	for i, f := range ff {
		n[i] = f.Name
	}
	return n
}

// Get returns the feature with the specified name.
func (ff Features) Get(name string) (Feature, bool) {
	for _, f := range ff {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Copy returns a copy of the features that does not share the backing array.
func (ff Features) Copy() Features {
	c := make(Features, len(ff))
	copy(c, ff)
	return c
}

// Validate checks that no two features share a name.
func (ff Features) Validate() error {
	seen := make(map[string]bool, len(ff))
	for _, f := range ff {
		if seen[f.Name] {
			return fmt.Errorf("feature %s appears more than once", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// String returns the features in name:value form.
func (ff Features) String() string {
	s := make([]string, len(ff))
	for i, f := range ff {
		s[i] = fmt.Sprintf("%v:%v", f.Name, f.Value)
	}
	return strings.Join(s, " ")
}

// WriteLibSVM writes a LIBSVM compatible line to a writer. Feature indices are
// the 1-based positions in the vector.
func (ff Features) WriteLibSVM(writer io.Writer, label float64, comment ...interface{}) (int, error) {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(label, 'f', -1, 64))
	for i, f := range ff {
		b.WriteString(fmt.Sprintf(" %d:%v", i+1, f.Value))
	}
	if len(comment) > 0 {
		b.WriteString(" #")
		for _, c := range comment {
			b.WriteString(fmt.Sprintf(" %v", c))
		}
	}
	b.WriteString("\n")
	return writer.Write([]byte(b.String()))
}
