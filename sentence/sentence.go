// Package sentence parses the tagged sentences of the PIT-2015 corpus.
//
// A tagged sentence is a space-separated list of tokens, each of the form
// word/lemma/POS, for instance `I/I/PRP love/love/VBP cats/cat/NNS`.
package sentence

import (
	"fmt"
	"strings"
)

// TaggedSentence is a parsed tagged sentence. Words, Lemmas and Tags always
// have the same length and keep the order of the original tokens.
type TaggedSentence struct {
	Words  []string
	Lemmas []string
	Tags   []string
}

// FormatError is returned when a token does not have the word/lemma/POS form.
type FormatError struct {
	Token string
	Index int
	Input string
}

func (e *FormatError) Error() string {
	if len(e.Token) == 0 && e.Index < 0 {
		return fmt.Sprintf("tagged sentence %q contains no tokens", e.Input)
	}
	return fmt.Sprintf("token %d (%q) is not of the form word/lemma/POS", e.Index, e.Token)
}

// Parse splits a tagged sentence into its parallel word and tag sequences.
// The word is everything before the first `/` and the tag is the third
// `/`-delimited field.
func Parse(tagged string) (TaggedSentence, error) {
	var s TaggedSentence
	tokens := strings.Split(tagged, " ")
	for i, token := range tokens {
		if len(token) == 0 {
			continue
		}
		fields := strings.Split(token, "/")
		if len(fields) < 3 || len(fields[0]) == 0 {
			return TaggedSentence{}, &FormatError{Token: token, Index: i, Input: tagged}
		}
		s.Words = append(s.Words, fields[0])
		s.Lemmas = append(s.Lemmas, fields[1])
		s.Tags = append(s.Tags, fields[2])
	}
	if len(s.Words) == 0 {
		return TaggedSentence{}, &FormatError{Index: -1, Input: tagged}
	}
	return s, nil
}

// MustParse is like Parse but panics if the sentence cannot be parsed.
func MustParse(tagged string) TaggedSentence {
	s, err := Parse(tagged)
	if err != nil {
		panic(err)
	}
	return s
}

// Len is the number of tokens in the sentence.
func (s TaggedSentence) Len() int {
	return len(s.Words)
}

// String reassembles the tagged form of the sentence.
func (s TaggedSentence) String() string {
	tokens := make([]string, len(s.Words))
	for i := range s.Words {
		tokens[i] = s.Words[i] + "/" + s.Lemmas[i] + "/" + s.Tags[i]
	}
	return strings.Join(tokens, " ")
}
