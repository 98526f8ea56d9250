// Package pipelinelib runs the word frequency pipeline: read, tokenize,
// filter, count and report, one step after the other.
package pipelinelib

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"wordFreq/configlib"
	"wordFreq/corpusfreqlib"
	"wordFreq/entitylib"
	"wordFreq/freqlib"
	"wordFreq/iolib"
	"wordFreq/reportlib"
	"wordFreq/stringlib"
)

// Analyze turns text into the token sequence to count, applying the filters
// enabled on cfg in a fixed order: numbers, stopwords, length, stemming.
func Analyze(cfg configlib.Config, text string) []string {
	tokens := stringlib.Tokenize(text)
	log.Debugf("tokenize: %d tokens", len(tokens))

	if cfg.IgnoreNumbers {
		tokens = stringlib.NumberFilter(tokens)
	}
	if cfg.Stopwords != "" {
		tokens = stringlib.StopwordFilter(tokens, cfg.StopwordSet())
	}
	if cfg.MinLength > 0 {
		tokens = stringlib.MinLengthFilter(tokens, cfg.MinLength)
	}
	if cfg.Stem {
		stemmer := stringlib.NewStemmer(false)
		tokens = stemmer.Filter(tokens)
		log.Debugf("stemmer: %d distinct words", stemmer.Cached())
	}
	log.Debugf("analyze: %d tokens kept", len(tokens))

	return tokens
}

// Build runs every step but rendering and returns the word report
func Build(cfg configlib.Config, text string) (reportlib.Report, error) {
	f := freqlib.Count(Analyze(cfg, text))
	log.WithField("distinct", len(f)).Infof("counted %d words", f.Total())

	rep := reportlib.Report{Rows: freqlib.Top(freqlib.Sorted(f), cfg.Top)}
	if cfg.Corpus == "" {
		return rep, nil
	}

	corpus, err := corpusfreqlib.Load(cfg.Corpus)
	if err != nil {
		return reportlib.Report{}, errors.Wrap(err, "unable to load baseline corpus")
	}
	rep.Keyness = corpus.Keyness(f, cfg.Contrast)

	return rep, nil
}

// Process reads filename and writes its word frequency report to w, or to
// cfg.Output when set.
func Process(cfg configlib.Config, filename string, w io.Writer) error {
	text, err := iolib.File2text(filename, cfg.HTML)
	if err != nil {
		return err
	}

	rep, err := Build(cfg, text)
	if err != nil {
		return err
	}
	if len(rep.Rows) == 0 {
		log.WithField("file", filename).Info("no words found")
	}

	var out bytes.Buffer
	if err := reportlib.Render(&out, rep, cfg.Format); err != nil {
		return err
	}

	if cfg.Entities {
		entityFreq, err := entitylib.Count(text)
		if err != nil {
			return err
		}
		if cfg.Format == reportlib.Text && len(entityFreq) > 0 {
			fmt.Fprintln(&out)
		}
		entities := reportlib.Report{Label: "entity", Rows: freqlib.Top(freqlib.Sorted(entityFreq), cfg.Top)}
		if err := reportlib.Render(&out, entities, cfg.Format); err != nil {
			return err
		}
	}

	if cfg.Output != "" {
		return iolib.String2file(out.String(), cfg.Output)
	}
	_, err = out.WriteTo(w)

	return errors.Wrap(err, "unable to write report")
}
