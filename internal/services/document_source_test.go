package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromTxt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Python engineer resume \n"), 0644))

	text, err := NewDocumentSource().ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Python engineer resume", text)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := NewDocumentSource().ExtractText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "does not exist")
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0644))

	_, err := NewDocumentSource().ExtractText(path)
	assert.ErrorContains(t, err, "unsupported file format")
}
