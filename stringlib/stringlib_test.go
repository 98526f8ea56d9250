package stringlib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"only spaces", " \t\n ", []string{}},
		{"punctuation", "Hello, world!", []string{"hello", "world"}},
		{"case folding", "Cat cat CAT", []string{"cat", "cat", "cat"}},
		{"lone punctuation vanishes", "a - b !", []string{"a", "b"}},
		{"no boundary on removal", "don't e-mail", []string{"dont", "email"}},
		{"digits and underscore kept", "route_66 is 2x", []string{"route_66", "is", "2x"}},
		{"whitespace runs", "multiple\tspaces\n\n and\nlines", []string{"multiple", "spaces", "and", "lines"}},
		{"unicode letters", "Naïve CAFÉ naïve", []string{"naïve", "café", "naïve"}},
		{"lone combining mark vanishes", "a \u0301 b", []string{"a", "b"}},
		{"sentence", "The quick brown fox. The fox jumps.", []string{"the", "quick", "brown", "fox", "the", "fox", "jumps"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.text))
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	for _, text := range []string{
		"",
		"Hello, world!",
		"It's a dog-eat-dog world... 100% (really)",
		"  Ünïcödé\ttext\r\nwith ¿marks? ",
	} {
		tokens := Tokenize(text)
		assert.Equal(t, tokens, Tokenize(strings.Join(tokens, " ")), text)
	}
}

func TestTokensCount(t *testing.T) {
	assert.Equal(t, 0, TokensCount(""))
	assert.Equal(t, 2, TokensCount("Hello, world!"))
}

func TestRmNewLines(t *testing.T) {
	assert.Equal(t, "12", RmNewLines("1\n2\n"))
	assert.Equal(t, "a|b", RmNewLines("a|\n\nb"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("33"))
	assert.True(t, IsNumeric("3.14"))
	assert.False(t, IsNumeric("hello world"))
	assert.False(t, IsNumeric("nan"))
	assert.False(t, IsNumeric("inf"))
	assert.False(t, IsNumeric("2x"))
	assert.False(t, IsNumeric(""))
}

func TestStopwordSet(t *testing.T) {
	set := StopwordSet("a|And|\nthe| |of\n")
	assert.Len(t, set, 4)
	for _, w := range []string{"a", "and", "the", "of"} {
		assert.Contains(t, set, w)
	}
	assert.Empty(t, StopwordSet(""))
}

func TestStopwordSetMatchesTokens(t *testing.T) {
	set := StopwordSet("Don't|e-mail|!!")
	assert.Len(t, set, 2)

	tokens := Tokenize("Don't send that e-mail, dont.")
	assert.Equal(t, []string{"send", "that"}, StopwordFilter(tokens, set))
}

func TestFilters(t *testing.T) {
	tokens := []string{"the", "fox", "2020", "and", "a", "dog", "42"}

	assert.Equal(t, []string{"fox", "2020", "dog", "42"}, StopwordFilter(tokens, StopwordSet("the|and|a")))
	assert.Equal(t, []string{"the", "fox", "and", "a", "dog"}, NumberFilter(tokens))
	assert.Equal(t, []string{"the", "fox", "2020", "and", "dog"}, MinLengthFilter(tokens, 3))
	assert.Empty(t, NumberFilter(nil))
}

func TestStemmer(t *testing.T) {
	s := NewStemmer(false)

	got := s.Filter([]string{"jumps", "jumping", "foxes", "jumps"})
	require.Len(t, got, 4)
	assert.Equal(t, []string{"jump", "jump", "fox", "jump"}, got)
	assert.Equal(t, 3, s.Cached())
	assert.Equal(t, "jump", s.Stem("jumped"))
}
