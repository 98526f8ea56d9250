package stringlib

import (
	snowballeng "github.com/kljensen/snowball/english"
	"github.com/patrickmn/go-cache"
)

// Stemmer reduces tokens to their english stem. Stems are memoized per
// distinct word since a text repeats most of its vocabulary.
type Stemmer struct {
	stems         *cache.Cache
	stemStopWords bool
}

// NewStemmer returns a snowball english stemmer
func NewStemmer(stemStopWords bool) *Stemmer {
	return &Stemmer{
		stems:         cache.New(cache.NoExpiration, 0),
		stemStopWords: stemStopWords,
	}
}

// Stem returns the stem of a single token
func (s *Stemmer) Stem(token string) string {
	if v, found := s.stems.Get(token); found {
		return v.(string)
	}
	stem := snowballeng.Stem(token, s.stemStopWords)
	s.stems.Set(token, stem, cache.NoExpiration)

	return stem
}

// Filter stems every token, keeping order
func (s *Stemmer) Filter(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = s.Stem(token)
	}
	return r
}

// Cached returns the number of distinct words stemmed so far
func (s *Stemmer) Cached() int {
	return s.stems.ItemCount()
}
