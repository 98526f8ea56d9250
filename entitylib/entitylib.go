// Package entitylib counts named entities (people, places, organizations)
// found on a text.
package entitylib

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/pkg/errors"

	"wordFreq/freqlib"
)

// Separator joins an entity text and its label on frequency keys
const Separator = " :: "

// Count returns entity frequencies keyed "text :: LABEL"
func Count(text string) (freqlib.Freq, error) {
	entityFreq := make(freqlib.Freq)
	if strings.TrimSpace(text) == "" {
		return entityFreq, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, errors.Wrap(err, "prose.NewDocument fails")
	}
	for _, ent := range doc.Entities() {
		entityFreq[ent.Text+Separator+ent.Label]++
	}

	return entityFreq, nil
}

// Split returns the text and label of an entity frequency key
func Split(key string) (text, label string) {
	i := strings.LastIndex(key, Separator)
	if i < 0 {
		return key, ""
	}
	return key[:i], key[i+len(Separator):]
}
