package services

import "strings"

// ATSWeights are the point bands of the simulated ATS score. The source
// history carries divergent weightings, so these are configuration rather
// than fixed law.
type ATSWeights struct {
	OptimalLength    int
	OffLength        int
	SkillCoverage    int
	DeepSkillBonus   int
	EmailPresent     int
	PhonePresent     int
	SectionKeywords  int
	MinOptimalWords  int
	MaxOptimalWords  int
	SkillCoverageMin int
	DeepSkillMin     int
}

func DefaultATSWeights() ATSWeights {
	return ATSWeights{
		OptimalLength:    25,
		OffLength:        10,
		SkillCoverage:    25,
		DeepSkillBonus:   15,
		EmailPresent:     15,
		PhonePresent:     10,
		SectionKeywords:  10,
		MinOptimalWords:  300,
		MaxOptimalWords:  1000,
		SkillCoverageMin: 5,
		DeepSkillMin:     10,
	}
}

type ATSScorer interface {
	Score(text string, profile *ExtractedProfile) int
}

type atsScorer struct {
	weights ATSWeights
}

func NewATSScorer(weights ATSWeights) ATSScorer {
	return &atsScorer{weights: weights}
}

var sectionKeywords = []string{"experience", "education", "projects"}

// Score combines word count, skill density and contact completeness into a
// 0-100 integer. Coarse additive bands keep the result auditable and stable
// under minor text perturbation.
func (s *atsScorer) Score(text string, profile *ExtractedProfile) int {
	score := 0
	w := s.weights

	wordCount := len(strings.Fields(text))
	if wordCount >= w.MinOptimalWords && wordCount <= w.MaxOptimalWords {
		score += w.OptimalLength
	} else {
		score += w.OffLength
	}

	// Coverage bands stack: a deep skill list earns both.
	if len(profile.Skills) >= w.SkillCoverageMin {
		score += w.SkillCoverage
	}
	if len(profile.Skills) >= w.DeepSkillMin {
		score += w.DeepSkillBonus
	}

	if profile.Email != fieldNotFound {
		score += w.EmailPresent
	}
	if profile.Phone != fieldNotFound {
		score += w.PhonePresent
	}

	lower := strings.ToLower(text)
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			score += w.SectionKeywords
			break
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score
}
