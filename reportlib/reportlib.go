// Package reportlib renders frequency tables for humans and for other tools.
package reportlib

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"wordFreq/freqlib"
)

// Format selects how a report is rendered
type Format string

const (
	Text  Format = "text"
	Table Format = "table"
	CSV   Format = "csv"
	JSON  Format = "json"
)

// Formats lists every supported format
var Formats = []Format{Text, Table, CSV, JSON}

// ErrUnknownFormat is returned by ParseFormat for unsupported names
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name. The empty name means Text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Text, nil
	}
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q, want one of %v", s, Formats)
}

// Report is a sorted frequency table ready to be rendered
type Report struct {
	// Label names the first column, "word" when empty
	Label string
	Rows  []freqlib.KV
	// Keyness adds a baseline score column when set
	Keyness freqlib.Freq
}

func (r Report) label() string {
	if r.Label == "" {
		return "word"
	}
	return r.Label
}

// Render writes rep to w in the given format, one line or record per row.
// An empty report writes nothing, except for JSON which writes [].
func Render(w io.Writer, rep Report, format Format) error {
	var err error
	switch format {
	case Text, "":
		err = renderText(w, rep)
	case Table:
		err = renderTable(w, rep)
	case CSV:
		err = renderCSV(w, rep)
	case JSON:
		err = renderJSON(w, rep)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}

	return errors.Wrapf(err, "unable to render %s report", format)
}

func renderText(w io.Writer, rep Report) error {
	for _, kv := range rep.Rows {
		var err error
		if rep.Keyness != nil {
			_, err = fmt.Fprintf(w, "%s: %d\t%d\n", kv.Key, kv.Value, rep.Keyness[kv.Key])
		} else {
			_, err = fmt.Fprintf(w, "%s: %d\n", kv.Key, kv.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r Report) header() []string {
	h := []string{r.label(), "count"}
	if r.Keyness != nil {
		h = append(h, "keyness")
	}
	return h
}

func (r Report) record(kv freqlib.KV) []string {
	rec := []string{kv.Key, strconv.Itoa(kv.Value)}
	if r.Keyness != nil {
		rec = append(rec, strconv.Itoa(r.Keyness[kv.Key]))
	}
	return rec
}

func renderTable(w io.Writer, rep Report) error {
	if len(rep.Rows) == 0 {
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(rep.header())
	for _, kv := range rep.Rows {
		table.Append(rep.record(kv))
	}
	table.Render()

	return nil
}

func renderCSV(w io.Writer, rep Report) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = '\t'
	for _, kv := range rep.Rows {
		if err := csvWriter.Write(rep.record(kv)); err != nil {
			return err
		}
	}
	csvWriter.Flush()

	return csvWriter.Error()
}

func renderJSON(w io.Writer, rep Report) error {
	rows := make([]map[string]interface{}, 0, len(rep.Rows))
	for _, kv := range rep.Rows {
		row := map[string]interface{}{
			rep.label(): kv.Key,
			"count":     kv.Value,
		}
		if rep.Keyness != nil {
			row["keyness"] = rep.Keyness[kv.Key]
		}
		rows = append(rows, row)
	}
	jdata, err := json.MarshalIndent(rows, "", " ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", jdata)

	return err
}
