package pair_test

import (
	"testing"

	"github.com/pit2015/paraphrase/feature"
	"github.com/pit2015/paraphrase/pair"
)

func TestDefaultLabelTable(t *testing.T) {
	table := pair.DefaultLabelTable()
	cases := map[string]float64{
		"(5, 0)":   1.0,
		"(4, 1)":   0.8,
		"(3, 2)":   0.6,
		"(2, 3)":   0.4,
		"(1, 4)":   0.2,
		"(0, 5)":   0.0,
		"3":        0.6,
		" (4, 1) ": 0.8,
	}
	for annotation, expected := range cases {
		label, err := table.Lookup(annotation)
		if err != nil {
			t.Errorf("%q: %v", annotation, err)
			continue
		}
		if label != expected {
			t.Errorf("%q: expected %v, got %v", annotation, expected, label)
		}
	}
	if len(table.Annotations()) != 12 {
		t.Errorf("expected 12 annotations, got %d", len(table.Annotations()))
	}
}

func TestLabelTable_Unmapped(t *testing.T) {
	_, err := pair.DefaultLabelTable().Lookup("(6, 0)")
	if err == nil {
		t.Fatal("expected an error")
	}
	if e, ok := err.(*pair.UnmappedLabelError); !ok || e.Annotation != "(6, 0)" {
		t.Errorf("expected an UnmappedLabelError, got %v", err)
	}
}

func TestNewLabelTable(t *testing.T) {
	if _, err := pair.NewLabelTable(map[string]float64{"yes": 0.5}); err == nil {
		t.Error("expected a label off the scale to be rejected")
	}
	table, err := pair.NewLabelTable(map[string]float64{"yes": 1, "no": 0})
	if err != nil {
		t.Fatal(err)
	}
	if l, err := table.Lookup("yes"); err != nil || l != 1 {
		t.Errorf("expected 1, got %v (%v)", l, err)
	}
	if _, err := table.Lookup("(5, 0)"); err == nil {
		t.Error("expected a custom table not to fall back to the default")
	}
}

func TestPairData(t *testing.T) {
	ff := feature.Features{feature.NewFeature("a", 1), feature.NewFeature("b", 2)}
	p := pair.New(pair.LabelParaphrase08, ff)

	// Modifying the source features does not affect the pair.
	ff[0].Value = 100
	if f, ok := p.Feature("a"); !ok || f.Value != 1 {
		t.Errorf("expected feature a to be 1, got %v", f)
	}
	got := p.Features()
	got[1].Value = 100
	if v := p.Vector(); v[1] != 2 {
		t.Errorf("expected the pair to be immutable, got %v", v)
	}

	if !p.IsParaphrase() || p.IsNonParaphrase() || p.IsDebatable() {
		t.Error("expected a paraphrase")
	}
	if !pair.New(pair.LabelDebatable, nil).IsDebatable() {
		t.Error("expected a debatable pair")
	}
}

func TestClamp(t *testing.T) {
	if pair.Clamp(-0.3) != 0 || pair.Clamp(1.7) != 1 || pair.Clamp(0.55) != 0.55 {
		t.Error("unexpected clamping")
	}
	if !pair.IsParaphrase(0.4, pair.DefaultThreshold) || pair.IsParaphrase(0.39, pair.DefaultThreshold) {
		t.Error("unexpected threshold decision")
	}
}
