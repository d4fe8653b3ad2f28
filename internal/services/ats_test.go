package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func atsTestText(words int, extra string) string {
	filler := strings.TrimSpace(strings.Repeat("built and maintained billing platforms for enterprise customers ", (words+7)/8))
	return filler + " " + extra
}

func TestATSScoreFullProfile(t *testing.T) {
	scorer := NewATSScorer(DefaultATSWeights())

	text := atsTestText(320, "experience")
	profile := &ExtractedProfile{
		Email:  "jane@example.com",
		Phone:  "555-123-4567",
		Skills: []string{"Python", "SQL", "Communication", "Leadership", "Teamwork"},
	}

	// 25 length + 25 skills + 15 email + 10 phone + 10 section keyword.
	assert.Equal(t, 85, scorer.Score(text, profile))
}

func TestATSScoreDeepSkillListStacksBothBands(t *testing.T) {
	scorer := NewATSScorer(DefaultATSWeights())

	text := atsTestText(320, "education")
	profile := &ExtractedProfile{
		Email: "jane@example.com",
		Phone: "555-123-4567",
		Skills: []string{
			"Python", "SQL", "AWS", "Docker", "Kubernetes",
			"Git", "React", "Django", "Flask", "Pandas",
		},
	}

	// 25 + 25 + 15 + 15 + 10 + 10 = 100, already at the ceiling.
	assert.Equal(t, 100, scorer.Score(text, profile))
}

func TestATSScoreEmptyResume(t *testing.T) {
	scorer := NewATSScorer(DefaultATSWeights())

	profile := &ExtractedProfile{Name: fieldNotFound, Email: fieldNotFound, Phone: fieldNotFound}

	// Off-band length is the only contribution.
	assert.Equal(t, 10, scorer.Score("", profile))
}

func TestATSScoreLengthBands(t *testing.T) {
	scorer := NewATSScorer(DefaultATSWeights())
	profile := &ExtractedProfile{Email: fieldNotFound, Phone: fieldNotFound}

	short := strings.TrimSpace(strings.Repeat("word ", 50))
	optimal := strings.TrimSpace(strings.Repeat("word ", 500))
	bloated := strings.TrimSpace(strings.Repeat("word ", 1500))

	assert.Equal(t, 10, scorer.Score(short, profile))
	assert.Equal(t, 25, scorer.Score(optimal, profile))
	assert.Equal(t, 10, scorer.Score(bloated, profile))
}

func TestATSScoreSectionKeywordCountsOnce(t *testing.T) {
	scorer := NewATSScorer(DefaultATSWeights())
	profile := &ExtractedProfile{Email: fieldNotFound, Phone: fieldNotFound}

	single := atsTestText(320, "experience")
	all := atsTestText(320, "experience education projects")

	assert.Equal(t, scorer.Score(single, profile), scorer.Score(all, profile))
}

func TestATSScoreAlwaysWithinBounds(t *testing.T) {
	weights := DefaultATSWeights()
	weights.OptimalLength = 60
	weights.SkillCoverage = 60
	weights.EmailPresent = 60
	scorer := NewATSScorer(weights)

	text := atsTestText(320, "experience")
	profile := &ExtractedProfile{
		Email:  "jane@example.com",
		Phone:  "555-123-4567",
		Skills: []string{"Python", "SQL", "AWS", "Docker", "Git"},
	}

	assert.Equal(t, 100, scorer.Score(text, profile))
}
