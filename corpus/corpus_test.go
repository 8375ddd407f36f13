package corpus_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hscells/go-unidecode"

	"github.com/pit2015/paraphrase/corpus"
)

const data = "4\t1st QB\tEJ Manuel the 1st QB to go in this draft\tBut my bro from the 757 EJ Manuel is the 1st QB taken\t(5, 0)\tEJ/B-person/NNP/B-NP/O Manuel/I-person/NNP/B-VP/O\tEJ/B-person/NNP/B-NP/O is/O/VBZ/B-VP/O\n" +
	"\n" +
	"5\t1st QB\tEJ Manuel\tManuel is taken\t(2, 3)\tManuel/O/NNP/B-NP/O\tManuel/O/NNP/B-NP/O taken/O/VBN/B-VP/O\r\n"

func TestRead(t *testing.T) {
	records, err := corpus.Read(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	r := records[0]
	if r.TopicID != "4" || r.Topic != "1st QB" || r.Label != "(5, 0)" {
		t.Errorf("unexpected record %+v", r)
	}
	if !strings.HasPrefix(r.Sentence2Tags, "EJ/B-person") {
		t.Errorf("unexpected tags %q", r.Sentence2Tags)
	}
	if records[1].Sentence2Tags != "Manuel/O/NNP/B-NP/O taken/O/VBN/B-VP/O" {
		t.Errorf("expected the carriage return to be trimmed, got %q", records[1].Sentence2Tags)
	}

	expected := []string{"EJ", "Manuel", "is", "taken"}
	if v := records.Vocabulary(); !reflect.DeepEqual(v, expected) {
		t.Errorf("expected vocabulary %v, got %v", expected, v)
	}
}

func TestRead_ShortLine(t *testing.T) {
	_, err := corpus.Read(strings.NewReader(data + "6\ttopic\tonly three\n"))
	e, ok := err.(*corpus.LineError)
	if !ok {
		t.Fatalf("expected a LineError, got %v", err)
	}
	if e.Line != 4 || e.Columns != 3 {
		t.Errorf("unexpected error %+v", e)
	}
}

func TestRecords_NormalisedVocabulary(t *testing.T) {
	records := corpus.Records{
		{Sentence1Tags: "café/O/NN au/O/IN lait/O/NN", Sentence2Tags: "cafe/O/NN naïve/O/JJ"},
	}
	expected := []string{"au", "cafe", "lait", "naive"}
	if v := records.NormalisedVocabulary(unidecode.Unidecode); !reflect.DeepEqual(v, expected) {
		t.Errorf("expected vocabulary %v, got %v", expected, v)
	}
	raw := []string{"au", "cafe", "café", "lait", "naïve"}
	if v := records.NormalisedVocabulary(nil); !reflect.DeepEqual(v, raw) {
		t.Errorf("expected vocabulary %v, got %v", raw, v)
	}
}
