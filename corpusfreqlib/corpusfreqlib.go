// Reference corpus frequencies, as distributed by the British National Corpus
// https://www.wordfrequency.info/100k_compare.asp
// unlemmatized frequencies, all.num format:
//
//	6187267 the at0 4120
//	2941444 of prf 4108
//
// numTotal word POStagging numDocs

package corpusfreqlib

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"wordFreq/freqlib"
	"wordFreq/iolib"
)

// ErrMalformedLine is the cause of errors on lines not matching the all.num format
var ErrMalformedLine = errors.New("malformed corpus line")

// WordInfo holds the reference figures of a single word
type WordInfo struct {
	NumTotal   int // repeated times appearing on the whole corpus
	POStagging string
	NumDocs    int // number of documents the word was found on
}

// Corpus is a loaded reference corpus
type Corpus struct {
	words map[string]WordInfo
	total int
}

// Load reads a corpus file in all.num format. The first occurrence of a word
// wins, later ones (other POS tags) are ignored.
func Load(filename string) (*Corpus, error) {
	if !iolib.FileExists(filename) {
		return nil, errors.Wrap(iolib.ErrFileNotFound, filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open corpus %s", filename)
	}
	defer file.Close()

	c := &Corpus{words: make(map[string]WordInfo)}

	numLine := 0
	var word, POStagging string
	var numTotal, numDocs int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		numLine++
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}

		_, err := fmt.Sscanf(l, "%d %s %s %d", &numTotal, &word, &POStagging, &numDocs)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedLine, "%s:%d: %q", filename, numLine, l)
		}
		word = strings.ToLower(word)

		if _, seen := c.words[word]; !seen {
			c.words[word] = WordInfo{numTotal, POStagging, numDocs}
			c.total += numTotal
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to read corpus %s", filename)
	}
	log.WithField("corpus", filename).Infof("len(corpusFreqs) = %d", len(c.words))

	return c, nil
}

// Freq returns the reference count of token, 0 when unknown
func (c *Corpus) Freq(token string) int {
	return c.words[token].NumTotal
}

// Info returns the reference figures of token
func (c *Corpus) Info(token string) (WordInfo, bool) {
	wi, ok := c.words[token]
	return wi, ok
}

// Len returns the number of distinct words on the corpus
func (c *Corpus) Len() int {
	return len(c.words)
}

// Total returns the sum of reference counts
func (c *Corpus) Total() int {
	return c.total
}

// Keyness scores every word of f by how much more it appears than the
// reference corpus predicts for a text of f's size. Unknown words keep
// almost their whole count; common english words go negative.
func (c *Corpus) Keyness(f freqlib.Freq, contrast float64) freqlib.Freq {
	k := make(freqlib.Freq, len(f))
	if len(f) == 0 {
		return k
	}
	if c.total == 0 {
		for token, count := range f {
			k[token] = count
		}
		return k
	}
	scale := float64(f.Total()) / float64(c.total)
	for token, count := range f {
		expected := contrast * float64(1+c.Freq(token)) * scale
		k[token] = count - int(expected)
	}

	return k
}
