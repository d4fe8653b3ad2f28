package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContactExtractor() ContactExtractor {
	return NewContactExtractor(NewSkillExtractor(DefaultSkillVocabulary()))
}

func TestExtractProfileComplete(t *testing.T) {
	text := "John Smith\n" +
		"john.smith@example.com\n" +
		"555-123-4567\n\n" +
		"Experience with Python and SQL on analytics platforms.\n\n" +
		"B.S. Computer Science, State University\n\n" +
		"References available on request."

	profile := newTestContactExtractor().ExtractProfile(text)

	assert.Equal(t, "John Smith", profile.Name)
	assert.Equal(t, "john.smith@example.com", profile.Email)
	assert.Equal(t, "555-123-4567", profile.Phone)
	assert.Equal(t, []string{"Python", "SQL"}, profile.Skills)
	require.NotEmpty(t, profile.Education)
	assert.Equal(t, "B.S. Computer Science, State University", profile.Education[0])
	assert.Equal(t, len(text), profile.RawTextLength)
}

func TestExtractProfileMissingFieldsUseSentinels(t *testing.T) {
	profile := newTestContactExtractor().ExtractProfile("plain lowercase text with no contact details at all")

	assert.Equal(t, fieldNotFound, profile.Name)
	assert.Equal(t, fieldNotFound, profile.Email)
	assert.Equal(t, fieldNotFound, profile.Phone)
	assert.Empty(t, profile.Education)
}

func TestExtractProfileEmptyText(t *testing.T) {
	profile := newTestContactExtractor().ExtractProfile("")

	assert.Equal(t, fieldNotFound, profile.Name)
	assert.Equal(t, fieldNotFound, profile.Email)
	assert.Equal(t, fieldNotFound, profile.Phone)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Education)
	assert.Zero(t, profile.RawTextLength)
}

func TestExtractContactInfoPhoneFormats(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		phone string
	}{
		{"dashed", "call 555-123-4567 today", "555-123-4567"},
		{"dotted", "call 555.123.4567 today", "555.123.4567"},
		{"parenthesized", "call (555) 123-4567 today", "(555) 123-4567"},
		{"bare seven digits", "ext 123-4567 today", "123-4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, phone := extractContactInfo(tt.text)
			assert.Equal(t, tt.phone, phone)
		})
	}
}

func TestExtractEducationDedupeAndCap(t *testing.T) {
	text := "B.S. Computer Science, State University\n\n" +
		"B.S. Computer Science, State University\n\n" +
		"M.S. Data Engineering, Tech Institute\n\n"

	entries := extractEducation(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "B.S. Computer Science, State University", entries[0])
	assert.Equal(t, "M.S. Data Engineering, Tech Institute", entries[1])
}

func TestExtractEducationDropsShortEntries(t *testing.T) {
	// Bare keyword with no surrounding detail is below the noise floor.
	assert.Empty(t, extractEducation("degree\n\n"))
}
