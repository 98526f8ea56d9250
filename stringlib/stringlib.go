// Package stringlib provides string functions beyond goLang primitives
package stringlib

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var newLines = regexp.MustCompile(`(\n+)`)

// RmNewLines removes any newline found on the input string
func RmNewLines(t string) string {
	return newLines.ReplaceAllString(t, "")
}

// IsNumeric tells whether input is a number or not. Words such as "nan" or
// "inf" parse as floats but are not numbers here.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsNumber(r) {
			continue
		}
		_, err := strconv.ParseFloat(s, 64)
		return err == nil && strings.IndexFunc(s, unicode.IsLetter) < 0
	}
	return true
}

/***************************************************************************************************************
****************************************************************************************************************
* TOKENIZER ****************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// isWordRune matches letters, numbers and underscore
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// Tokenize converts text into a list of lowercase tokens. Anything that is
// neither a word rune nor whitespace is dropped without leaving a boundary
// behind, so "don't" becomes "dont" and a lone "!" disappears.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	tokens := strings.Fields(b.String())
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// TokensCount returns the number of tokens found on text
func TokensCount(text string) int {
	return len(Tokenize(text))
}

/***************************************************************************************************************
****************************************************************************************************************
* FILTERS ******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// StopwordSet builds a lookup set from a list like "a|and|the", as found on
// YAML config values. Newlines are ignored so the list may span many lines.
// Entries go through Tokenize, so "Don't" matches the token "dont".
func StopwordSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, entry := range strings.Split(RmNewLines(list), "|") {
		for _, w := range Tokenize(entry) {
			set[w] = struct{}{}
		}
	}
	return set
}

func filter(tokens []string, keep func(string) bool) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if keep(token) {
			r = append(r, token)
		}
	}
	return r
}

// StopwordFilter drops every token found on stopwords
func StopwordFilter(tokens []string, stopwords map[string]struct{}) []string {
	return filter(tokens, func(token string) bool {
		_, stop := stopwords[token]
		return !stop
	})
}

// NumberFilter drops numeric tokens
func NumberFilter(tokens []string) []string {
	return filter(tokens, func(token string) bool {
		return !IsNumeric(token)
	})
}

// MinLengthFilter drops tokens shorter than n runes
func MinLengthFilter(tokens []string, n int) []string {
	return filter(tokens, func(token string) bool {
		return utf8.RuneCountInString(token) >= n
	})
}
