package sentence

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"
)

// Tagger produces tagged sentences from raw text. It is used when a corpus
// line carries the raw sentence but no tag column.
type Tagger struct{}

// NewTagger creates a new part-of-speech tagger.
func NewTagger() Tagger {
	return Tagger{}
}

// Tag tokenises and tags raw text, returning it in word/lemma/POS form. The
// lemma is the lower-cased word; slashes inside a token are replaced so the
// result can always be read back with Parse.
func (Tagger) Tag(text string) (string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return "", errors.Wrap(err, "could not tag sentence")
	}

	tokens := doc.Tokens()
	tagged := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		word := strings.Replace(tok.Text, "/", "_", -1)
		if len(word) == 0 {
			continue
		}
		tag := tok.Tag
		if len(tag) == 0 {
			tag = "X"
		}
		tagged = append(tagged, word+"/"+strings.ToLower(word)+"/"+tag)
	}
	return strings.Join(tagged, " "), nil
}

// TagSentence is like Tag but returns the parsed sentence.
func (t Tagger) TagSentence(text string) (TaggedSentence, error) {
	tagged, err := t.Tag(text)
	if err != nil {
		return TaggedSentence{}, err
	}
	return Parse(tagged)
}
