package services

import (
	"regexp"
	"strings"
)

const fieldNotFound = "N/A"

// ExtractedProfile holds everything recovered from a single resume document.
// It is derived once per request and never mutated afterwards. Extraction
// never fails: missing fields come back as "N/A" or empty lists, so a profile
// is constructible from any string including the empty string.
type ExtractedProfile struct {
	Name          string
	Email         string
	Phone         string
	Skills        []string
	Education     []string
	RawTextLength int
}

const maxEducationEntries = 5

var (
	// Looks for 2-4 title-cased words at the start of a line. Case and line
	// breaks carry signal here, so this runs on raw text.
	namePattern  = regexp.MustCompile(`(?m)^\s*([A-Z][a-z]+(?: [A-Z][a-z]+){1,3})`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\(?\d{3}\)?)?\s*[-.\s]?\d{3}\s*[-.\s]?\d{4}\b`)

	educationPattern = regexp.MustCompile(
		`(?is)((?:b\.?s\.?|m\.?s\.?|ph\.?d\.?|master'?s|bachelor'?s|university|college|institute|degree|diploma).*?)(?:\n\n|\n\s*[A-Z]|$)`)
)

type ContactExtractor interface {
	ExtractProfile(text string) *ExtractedProfile
}

type contactExtractor struct {
	skillExtractor SkillExtractor
}

func NewContactExtractor(skillExtractor SkillExtractor) ContactExtractor {
	return &contactExtractor{skillExtractor: skillExtractor}
}

func (c *contactExtractor) ExtractProfile(text string) *ExtractedProfile {
	name, email, phone := extractContactInfo(text)

	return &ExtractedProfile{
		Name:          name,
		Email:         email,
		Phone:         phone,
		Skills:        c.skillExtractor.Extract(text),
		Education:     extractEducation(text),
		RawTextLength: len(text),
	}
}

func extractContactInfo(text string) (name, email, phone string) {
	name, email, phone = fieldNotFound, fieldNotFound, fieldNotFound

	if m := namePattern.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		name = m[1]
	}
	if m := emailPattern.FindString(text); m != "" {
		email = m
	}
	if m := strings.TrimSpace(phonePattern.FindString(text)); m != "" {
		phone = m
	}

	return name, email, phone
}

// extractEducation scans for degree and institution keywords and captures the
// surrounding line. Entries shorter than 10 characters are noise and dropped;
// duplicates are removed keeping first-seen order.
func extractEducation(text string) []string {
	matches := educationPattern.FindAllStringSubmatch(text, -1)

	seen := make(map[string]struct{})
	var entries []string
	for _, m := range matches {
		entry := whitespacePattern.ReplaceAllString(strings.TrimSpace(m[1]), " ")
		if len(entry) <= 10 {
			continue
		}
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		entries = append(entries, entry)
		if len(entries) == maxEducationEntries {
			break
		}
	}

	return entries
}
