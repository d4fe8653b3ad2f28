package services

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	percentPattern = regexp.MustCompile(`\d+%`)
	scalePattern   = regexp.MustCompile(`over \d+ million`)
)

type TipGenerator interface {
	Generate(text, recommendedJob string, profile *ExtractedProfile) []string
}

type tipGenerator struct{}

func NewTipGenerator() TipGenerator {
	return &tipGenerator{}
}

// Generate produces resume-improvement tips from common ATS heuristics.
// Always returns at least one tip.
func (t *tipGenerator) Generate(text, recommendedJob string, profile *ExtractedProfile) []string {
	var tips []string
	lower := strings.ToLower(text)

	if len(strings.Fields(text)) < 300 {
		tips = append(tips, "Your resume is quite short. Consider adding more details to your experience and project sections.")
	}

	if !percentPattern.MatchString(text) && !scalePattern.MatchString(lower) {
		tips = append(tips, "Focus on results and achievements over responsibilities, using strong action verbs and quantifying your successes (e.g., 'Increased revenue by 15%').")
	}

	if !strings.Contains(lower, "project") && !strings.Contains(lower, "portfolio") {
		tips = append(tips, fmt.Sprintf("To match the competitiveness of a '%s' role, add a dedicated section for relevant personal projects or portfolio links.", recommendedJob))
	}

	if len(profile.Education) == 0 {
		tips = append(tips, "Ensure your Education section is clearly formatted with degree, institution, and graduation dates.")
	}

	if len(tips) == 0 {
		tips = append(tips, "Your resume looks well-structured! Focus on tailoring it to specific job descriptions.")
	}

	return tips
}
