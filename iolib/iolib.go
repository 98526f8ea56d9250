// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jaytaylor.com/html2text"
)

// ErrFileNotFound is the cause of every error returned for a missing input file
var ErrFileNotFound = errors.New("file not found")

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// File2string reads a file into a string
func File2string(filename string) (string, error) {
	file, err := os.Open(filename)
	if os.IsNotExist(err) {
		return "", errors.Wrap(ErrFileNotFound, filename)
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to open %s", filename)
	}
	defer file.Close()

	b, err := ioutil.ReadAll(file)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", filename)
	}
	log.WithField("file", filename).Debugf("read %d bytes", len(b))

	return string(b), nil
}

// IsHTML tells whether filename looks like an HTML document
func IsHTML(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// File2text reads a file into a string, flattening HTML markup into plain text
// when html is set and the file has an HTML extension
func File2text(filename string, html bool) (string, error) {
	content, err := File2string(filename)
	if err != nil {
		return "", err
	}
	if !html || !IsHTML(filename) {
		return content, nil
	}

	plain, err := html2text.FromString(content, html2text.Options{PrettyTables: false})
	if err != nil {
		return "", errors.Wrapf(err, "html2text.FromString fails on %s", filename)
	}
	log.WithField("file", filename).Debugf("html flattened: len(plain): %d", len(plain))

	return plain, nil
}

// String2file saves the string content into a file
func String2file(text string, filename string) (err error) {
	aFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", filename)
	}
	defer func() {
		cerr := aFile.Close()
		if err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "unable to close %s", filename)
		}
	}()
	if _, err = aFile.WriteString(text); err != nil {
		return errors.Wrapf(err, "unable to write %s", filename)
	}

	return nil
}
