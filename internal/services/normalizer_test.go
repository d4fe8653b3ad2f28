package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t  ", ""},
		{"lowercases", "Senior Go Engineer", "senior go engineer"},
		{"strips urls", "see https://example.com/profile for details", "see for details"},
		{"strips www urls", "portfolio at www.example.com today", "portfolio at today"},
		{"removes punctuation", "C++, Node.js & more!", "c nodejs more"},
		{"collapses whitespace", "one\n\ttwo   three", "one two three"},
		{"keeps digits", "5 years of Go", "5 years of go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}
