package services

import (
	"fmt"
	"regexp"
	"strings"
)

// SkillVocabulary is the fixed list of canonical skill names matched against
// resume and job-description text. It is loaded once at startup and shared
// read-only across requests.
type SkillVocabulary struct {
	entries  []string
	patterns []*regexp.Regexp
}

var defaultSkillEntries = []string{
	"Python", "Java", "JavaScript", "SQL", "React", "Node.js", "Django", "Flask",
	"AWS", "Azure", "Machine Learning", "Data Analysis", "NLP", "Communication",
	"Leadership", "Teamwork", "Problem Solving", "TensorFlow", "PyTorch", "Pandas",
	"Scikit-learn", "Docker", "Kubernetes", "C++", "HTML", "CSS", "Git",
}

// NewSkillVocabulary compiles whole-word patterns for each canonical entry.
// Matching happens against normalized text, so multi-word entries match
// contiguously with single-space separation.
func NewSkillVocabulary(entries []string) (*SkillVocabulary, error) {
	v := &SkillVocabulary{
		entries:  make([]string, 0, len(entries)),
		patterns: make([]*regexp.Regexp, 0, len(entries)),
	}

	for _, entry := range entries {
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(entry)) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile skill pattern for %q: %w", entry, err)
		}
		v.entries = append(v.entries, entry)
		v.patterns = append(v.patterns, pattern)
	}

	return v, nil
}

func DefaultSkillVocabulary() *SkillVocabulary {
	v, err := NewSkillVocabulary(defaultSkillEntries)
	if err != nil {
		// The default entries are static; a compile failure is a programming error.
		panic(err)
	}
	return v
}

// Entries returns the canonical skill names in vocabulary order.
func (v *SkillVocabulary) Entries() []string {
	out := make([]string, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *SkillVocabulary) Len() int {
	return len(v.entries)
}
