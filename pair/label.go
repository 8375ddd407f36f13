package pair

import (
	"fmt"
	"sort"
	"strings"
)

// UnmappedLabelError is returned for an annotation that is not in a label table.
type UnmappedLabelError struct {
	Annotation string
}

func (e *UnmappedLabelError) Error() string {
	return fmt.Sprintf("annotation %q has no label", e.Annotation)
}

// LabelTable maps raw corpus annotations, such as "(4, 1)" or "4", to labels.
type LabelTable struct {
	labels map[string]float64
}

// NewLabelTable creates a label table. Every value must be on the label scale.
func NewLabelTable(labels map[string]float64) (LabelTable, error) {
	m := make(map[string]float64, len(labels))
	for annotation, label := range labels {
		if !OnScale(label) {
			return LabelTable{}, fmt.Errorf("label %v of annotation %q is not on the label scale", label, annotation)
		}
		m[strings.TrimSpace(annotation)] = label
	}
	return LabelTable{labels: m}, nil
}

// DefaultLabelTable is the mapping used by the PIT-2015 corpus. Training and
// development files carry (paraphrase, non-paraphrase) vote tuples; test
// label files carry the number of paraphrase votes.
func DefaultLabelTable() LabelTable {
	return LabelTable{labels: map[string]float64{
		"(5, 0)": LabelParaphrase10,
		"(4, 1)": LabelParaphrase08,
		"(3, 2)": LabelParaphrase06,
		"(2, 3)": LabelDebatable,
		"(1, 4)": LabelNonParaphrase02,
		"(0, 5)": LabelNonParaphrase00,
		"5":      LabelParaphrase10,
		"4":      LabelParaphrase08,
		"3":      LabelParaphrase06,
		"2":      LabelDebatable,
		"1":      LabelNonParaphrase02,
		"0":      LabelNonParaphrase00,
	}}
}

// Lookup returns the label of an annotation.
func (t LabelTable) Lookup(annotation string) (float64, error) {
	label, ok := t.labels[strings.TrimSpace(annotation)]
	if !ok {
		return 0, &UnmappedLabelError{Annotation: annotation}
	}
	return label, nil
}

// Annotations lists the annotations of the table in sorted order.
func (t LabelTable) Annotations() []string {
	a := make([]string, 0, len(t.labels))
	for k := range t.labels {
		a = append(a, k)
	}
	sort.Strings(a)
	return a
}
