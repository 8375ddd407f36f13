package feature

import (
	"math"
	"sort"

	"github.com/pit2015/paraphrase/sentence"
	"github.com/xtgo/set"
	"gonum.org/v1/gonum/floats"
)

// DefaultLambda is the weight of the semantic component when it is blended
// with word order similarity.
const DefaultLambda = 0.8

// Vocabulary is the set of distinct words of both sentences, in sorted order.
func Vocabulary(s1, s2 []string) []string {
	v := make([]string, 0, len(s1)+len(s2))
	v = append(v, s1...)
	v = append(v, s2...)
	data := sort.StringSlice(v)
	sort.Sort(data)
	return v[:set.Uniq(data)]
}

// firstIndex maps each word to the index of its first occurrence.
func firstIndex(words []string) map[string]int {
	idx := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := idx[w]; !ok {
			idx[w] = i
		}
	}
	return idx
}

// Cosine is the cosine similarity of two vectors of the same length. It is 0
// when either vector has no magnitude.
func Cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// WordOrderSimilarity compares the positions at which the words of the
// vocabulary first occur in each sentence (0 when absent):
//
//	1 - Σ(i1-i2) / Σ(i1+i2)
//
// When every position is 0, for instance two identical single word sentences,
// the similarity is 1.
func WordOrderSimilarity(s1, s2 []string) float64 {
	idx1, idx2 := firstIndex(s1), firstIndex(s2)
	var sum, diff float64
	for _, w := range Vocabulary(s1, s2) {
		i1, i2 := float64(idx1[w]), float64(idx2[w])
		sum += i1 + i2
		diff += i1 - i2
	}
	if sum == 0 {
		return 1
	}
	return 1 - diff/sum
}

// SemanticSimilarity blends the cosine of the binary word presence vectors of
// both sentences with their word order similarity.
func SemanticSimilarity(s1, s2 []string, lambda float64) float64 {
	idx1, idx2 := firstIndex(s1), firstIndex(s2)
	vocab := Vocabulary(s1, s2)
	a, b := make([]float64, len(vocab)), make([]float64, len(vocab))
	for i, w := range vocab {
		if _, ok := idx1[w]; ok {
			a[i] = 1
		}
		if _, ok := idx2[w]; ok {
			b[i] = 1
		}
	}
	return lambda*Cosine(a, b) + (1-lambda)*WordOrderSimilarity(s1, s2)
}

// VectorSimilarity computes similarities of sentences from word embeddings.
type VectorSimilarity struct {
	Table WordVectors
	// OOV is the similarity used when a word is missing from the table.
	OOV float64
}

// Max is the highest cosine similarity between a word and the words of a
// sentence that carry the same tag. It is 0 when no word shares the tag.
func (vs VectorSimilarity) Max(word, tag string, words, tags []string) float64 {
	max := 0.0
	v, ok := vs.Table.Vector(word)
	for i, candidate := range words {
		if tags[i] != tag {
			continue
		}
		sim := vs.OOV
		if c, found := vs.Table.Vector(candidate); ok && found {
			sim = Cosine(v, c)
		}
		if sim > max {
			max = sim
		}
	}
	return max
}

// Semantic sums, for every word of each sentence, its maximum similarity to
// the other sentence, normalises the sum by the total number of words and
// blends the result with word order similarity.
func (vs VectorSimilarity) Semantic(s1, s2 sentence.TaggedSentence, lambda float64) float64 {
	n := s1.Len() + s2.Len()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i, w := range s1.Words {
		sum += vs.Max(w, s1.Tags[i], s2.Words, s2.Tags)
	}
	for i, w := range s2.Words {
		sum += vs.Max(w, s2.Tags[i], s1.Words, s1.Tags)
	}
	return lambda*(sum/float64(n)) + (1-lambda)*WordOrderSimilarity(s1.Words, s2.Words)
}

// Cosine builds, for each sentence, the vector of maximum similarities of
// every vocabulary word to that sentence, and returns the cosine of the two.
// A vocabulary word takes the tag of its first occurrence, looking at s1
// before s2.
func (vs VectorSimilarity) Cosine(s1, s2 sentence.TaggedSentence) float64 {
	tags := make(map[string]string, s1.Len()+s2.Len())
	for _, s := range []sentence.TaggedSentence{s1, s2} {
		for i, w := range s.Words {
			if _, ok := tags[w]; !ok {
				tags[w] = s.Tags[i]
			}
		}
	}

	vocab := Vocabulary(s1.Words, s2.Words)
	a, b := make([]float64, len(vocab)), make([]float64, len(vocab))
	for i, w := range vocab {
		a[i] = vs.Max(w, tags[w], s1.Words, s1.Tags)
		b[i] = vs.Max(w, tags[w], s2.Words, s2.Tags)
	}
	return Cosine(a, b)
}

// EmbeddingCosineSimilarity lays the embeddings of the vocabulary side by
// side for each sentence, using the zero vector for words the sentence does
// not contain or the table does not know, and returns the cosine of the two
// concatenations.
func EmbeddingCosineSimilarity(s1, s2 []string, table WordVectors) float64 {
	idx1, idx2 := firstIndex(s1), firstIndex(s2)
	var dot, m1, m2 float64
	for _, w := range Vocabulary(s1, s2) {
		v, ok := table.Vector(w)
		if !ok {
			continue
		}
		sq := floats.Dot(v, v)
		_, in1 := idx1[w]
		_, in2 := idx2[w]
		if in1 {
			m1 += sq
		}
		if in2 {
			m2 += sq
		}
		if in1 && in2 {
			dot += sq
		}
	}
	if m1 == 0 || m2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(m1) * math.Sqrt(m2))
}
