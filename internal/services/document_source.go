package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DocumentSource turns uploaded resume containers into plain text. The
// scoring core only ever sees the extracted text, never file formats.
type DocumentSource interface {
	ExtractText(filePath string) (string, error)
}

type documentSource struct{}

func NewDocumentSource() DocumentSource {
	return &documentSource{}
}

func (d *documentSource) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDFText(filePath)
	case ".txt":
		content, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	default:
		return "", fmt.Errorf("unsupported file format: %s", filepath.Ext(filePath))
	}
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep the rest.
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}
