package feature

import (
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/reiver/go-porterstemmer"
	"github.com/surgebase/porter2"
)

// Stemmer reduces a word to its stem.
type Stemmer func(word string) string

// PorterStemmer stems with the original Porter algorithm. Words are lower-cased.
func PorterStemmer(word string) (stem string) {
	lower := strings.ToLower(word)
	// Tokens the stemmer cannot handle (lone punctuation, emoji) are
	// returned lower-cased.
	defer func() {
		if r := recover(); r != nil {
			stem = lower
		}
	}()
	return porterstemmer.StemString(lower)
}

// Porter2Stemmer stems with the Porter2 (snowball English) algorithm.
func Porter2Stemmer(word string) string {
	return porter2.Stem(strings.ToLower(word))
}

// NoStemmer returns words unchanged.
func NoStemmer(word string) string {
	return word
}

// NewCachedStemmer memoises a stemmer in a fixed-size LRU cache. The cache is
// safe for concurrent use, so the returned stemmer may be shared.
func NewCachedStemmer(stem Stemmer, size int) (Stemmer, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return func(word string) string {
		if s, ok := cache.Get(word); ok {
			return s.(string)
		}
		s := stem(word)
		cache.Add(word, s)
		return s
	}, nil
}

// StemmerByName returns one of the stemmers by name: porter, porter2 or none.
func StemmerByName(name string) (Stemmer, bool) {
	switch strings.ToLower(name) {
	case "porter", "":
		return PorterStemmer, true
	case "porter2", "snowball":
		return Porter2Stemmer, true
	case "none":
		return NoStemmer, true
	}
	return nil, false
}

// Stem applies a stemmer to each word.
func (s Stemmer) Stem(words []string) []string {
	stems := make([]string, len(words))
	for i, w := range words {
		stems[i] = s(w)
	}
	return stems
}
