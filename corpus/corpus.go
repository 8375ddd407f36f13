// Package corpus reads the tab separated files of the PIT-2015 corpus.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/xtgo/set"

	"github.com/pit2015/paraphrase/sentence"
)

// Columns of a corpus line.
const (
	ColumnTopicID = iota
	ColumnTopic
	ColumnSentence1
	ColumnSentence2
	ColumnLabel
	ColumnSentence1Tags
	ColumnSentence2Tags
	numColumns
)

// Record is one sentence pair of the corpus. Label is the raw annotation,
// e.g. "(3, 2)" in training data or "3" in test data.
type Record struct {
	TopicID       string
	Topic         string
	Sentence1     string
	Sentence2     string
	Label         string
	Sentence1Tags string
	Sentence2Tags string
}

// Records is the content of a corpus file.
type Records []Record

// LineError is returned for a line that cannot be read as a record.
type LineError struct {
	Line    int
	Columns int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, numColumns, e.Columns)
}

const maxLineSize = 1 << 20

// Read reads every record of a corpus file.
func Read(r io.Reader) (Records, error) {
	var records Records
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if len(strings.TrimSpace(text)) == 0 {
			continue
		}
		columns := strings.Split(text, "\t")
		if len(columns) < numColumns {
			return nil, &LineError{Line: line, Columns: len(columns)}
		}
		records = append(records, Record{
			TopicID:       columns[ColumnTopicID],
			Topic:         columns[ColumnTopic],
			Sentence1:     columns[ColumnSentence1],
			Sentence2:     columns[ColumnSentence2],
			Label:         columns[ColumnLabel],
			Sentence1Tags: columns[ColumnSentence1Tags],
			Sentence2Tags: columns[ColumnSentence2Tags],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", line+1)
	}
	return records, nil
}

// ReadFile reads every record of the corpus file at path.
func ReadFile(path string) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	records, err := Read(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return records, nil
}

// Vocabulary is the sorted set of words of both tagged sentences of every
// record. Malformed tokens are skipped.
func (r Records) Vocabulary() []string {
	return r.NormalisedVocabulary(nil)
}

// NormalisedVocabulary is the vocabulary after normalising every word, so it
// holds the words an extractor with the same normaliser looks up. A nil
// normaliser keeps the words as they are.
func (r Records) NormalisedVocabulary(normalise func(string) string) []string {
	var words []string
	for _, rec := range r {
		for _, tags := range []string{rec.Sentence1Tags, rec.Sentence2Tags} {
			s, err := sentence.Parse(tags)
			if err != nil {
				words = append(words, leadingWords(tags)...)
				continue
			}
			words = append(words, s.Words...)
		}
	}
	if normalise != nil {
		for i, w := range words {
			words[i] = normalise(w)
		}
	}
	sort.Strings(words)
	return words[:set.Uniq(sort.StringSlice(words))]
}

// leadingWords takes the text before the first slash of every token.
func leadingWords(tags string) []string {
	var words []string
	for _, token := range strings.Split(tags, " ") {
		if i := strings.IndexByte(token, '/'); i > 0 {
			words = append(words, token[:i])
		}
	}
	return words
}
