package iolib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFile2string(t *testing.T) {
	path := writeFile(t, "in.txt", "The quick brown fox.")

	got, err := File2string(path)
	require.NoError(t, err)
	assert.Equal(t, "The quick brown fox.", got)
}

func TestFile2stringEmpty(t *testing.T) {
	path := writeFile(t, "empty.txt", "")

	got, err := File2string(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFile2stringNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := File2string(path)
	require.Error(t, err)
	assert.Equal(t, ErrFileNotFound, errors.Cause(err))
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Contains(t, err.Error(), "file not found")
}

func TestFile2stringDirectory(t *testing.T) {
	_, err := File2string(t.TempDir())
	require.Error(t, err)
	assert.NotEqual(t, ErrFileNotFound, errors.Cause(err))
}

func TestFileExists(t *testing.T) {
	path := writeFile(t, "in.txt", "x")

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Dir(path)))
	assert.False(t, FileExists(path+".nope"))
}

func TestIsHTML(t *testing.T) {
	assert.True(t, IsHTML("a/b/page.html"))
	assert.True(t, IsHTML("PAGE.HTM"))
	assert.False(t, IsHTML("notes.txt"))
	assert.False(t, IsHTML("html"))
}

func TestFile2text(t *testing.T) {
	path := writeFile(t, "page.html", "<html><body><p>Hello <b>world</b></p></body></html>")

	raw, err := File2text(path, false)
	require.NoError(t, err)
	assert.Contains(t, raw, "<b>")

	plain, err := File2text(path, true)
	require.NoError(t, err)
	assert.NotContains(t, plain, "<")
	assert.Contains(t, plain, "Hello")
	assert.Contains(t, plain, "world")
}

func TestFile2textPlainFileIgnoresHTMLFlag(t *testing.T) {
	path := writeFile(t, "in.txt", "<b>kept</b>")

	got, err := File2text(path, true)
	require.NoError(t, err)
	assert.Equal(t, "<b>kept</b>", got)
}

func TestString2file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, String2file("fox: 2\n", path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fox: 2\n", string(b))

	err = String2file("x", filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt"))
	assert.Error(t, err)
}
