package services

type SkillExtractor interface {
	Extract(text string) []string
}

type skillExtractor struct {
	vocab *SkillVocabulary
}

func NewSkillExtractor(vocab *SkillVocabulary) SkillExtractor {
	return &skillExtractor{vocab: vocab}
}

// Extract matches the vocabulary against normalized text using whole-word,
// case-insensitive matching. No fuzzy matching: recall is traded for
// determinism and explainability. The returned names keep the vocabulary's
// canonical casing and order.
func (s *skillExtractor) Extract(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}

	var found []string
	for i, pattern := range s.vocab.patterns {
		if pattern.MatchString(normalized) {
			found = append(found, s.vocab.entries[i])
		}
	}

	return found
}

// HasSkill reports whether a canonical skill name is present in a skill list.
func HasSkill(skills []string, name string) bool {
	for _, s := range skills {
		if s == name {
			return true
		}
	}
	return false
}
