package sentence_test

import (
	"testing"

	"github.com/pit2015/paraphrase/sentence"
)

func TestTagger_TagSentence(t *testing.T) {
	s, err := sentence.NewTagger().TagSentence("I love cats")
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("expected 3 tokens, got %d (%s)", s.Len(), s)
	}
	if s.Words[2] != "cats" {
		t.Errorf("expected cats, got %s", s.Words[2])
	}
	for i, tag := range s.Tags {
		if len(tag) == 0 {
			t.Errorf("token %d has no tag", i)
		}
	}
}
