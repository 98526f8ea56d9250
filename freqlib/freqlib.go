// Package freqlib tallies token occurrences and sorts them for display.
package freqlib

import "sort"

// Freq maps a token to the number of times it was seen
type Freq map[string]int

// KV is a single word/count row
type KV struct {
	Key   string
	Value int
}

// Count builds the frequency table of tokens
func Count(tokens []string) Freq {
	f := make(Freq, len(tokens))
	f.Add(tokens)
	return f
}

// Add increases the count of every token by one occurrence
func (f Freq) Add(tokens []string) {
	for _, token := range tokens {
		f[token]++
	}
}

// Total returns the sum of all counts
func (f Freq) Total() (total int) {
	for _, v := range f {
		total += v
	}
	return
}

// Sorted returns the rows of f by descending count. Equal counts are ordered
// alphabetically so output is stable across runs.
func Sorted(f Freq) []KV {
	ss := make([]KV, 0, len(f))
	for k, v := range f {
		ss = append(ss, KV{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value == ss[j].Value {
			return ss[i].Key < ss[j].Key
		}
		return ss[i].Value > ss[j].Value
	})

	return ss
}

// Top keeps the first n rows. n <= 0 keeps them all.
func Top(ss []KV, n int) []KV {
	if n <= 0 || n >= len(ss) {
		return ss
	}
	return ss[:n]
}

// Keys returns the words of ss in order
func Keys(ss []KV) []string {
	keys := make([]string, 0, len(ss))
	for _, k := range ss {
		keys = append(keys, k.Key)
	}

	return keys
}
