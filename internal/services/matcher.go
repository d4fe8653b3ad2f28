package services

import (
	"context"
	"math"

	"go.uber.org/zap"
)

const (
	semanticMatchThreshold = 0.6
	similarPostingLimit    = 3
)

// MatchResult compares a resume against a job description by skill coverage.
type MatchResult struct {
	MatchScore      float64           `json:"match_score"`
	ResumeSkills    []string          `json:"resume_skills"`
	JDSkills        []string          `json:"jd_skills"`
	MatchedSkills   []string          `json:"matched_skills"`
	SimilarPostings []JobPostingMatch `json:"similar_postings,omitempty"`
}

type MatchService interface {
	Match(ctx context.Context, resumeText, jdText string) (*MatchResult, error)
}

type matchService struct {
	skillExtractor SkillExtractor
	embedder       Embedder
	jobIndex       JobIndexService
	logger         *zap.Logger
}

// NewMatchService builds the matcher. Embedder and job index may both be
// nil; matching then falls back to exact skill intersection with no similar
// postings.
func NewMatchService(skillExtractor SkillExtractor, embedder Embedder, jobIndex JobIndexService, logger *zap.Logger) MatchService {
	return &matchService{
		skillExtractor: skillExtractor,
		embedder:       embedder,
		jobIndex:       jobIndex,
		logger:         logger,
	}
}

func (m *matchService) Match(ctx context.Context, resumeText, jdText string) (*MatchResult, error) {
	result := &MatchResult{
		ResumeSkills:  m.skillExtractor.Extract(resumeText),
		JDSkills:      []string{},
		MatchedSkills: []string{},
	}

	if jdText == "" {
		return result, nil
	}

	result.JDSkills = m.skillExtractor.Extract(jdText)
	if len(result.JDSkills) == 0 {
		return result, nil
	}

	result.MatchedSkills = m.matchSkills(ctx, result.ResumeSkills, result.JDSkills)
	result.MatchScore = math.Round(float64(len(result.MatchedSkills))/float64(len(result.JDSkills))*100*100) / 100

	result.SimilarPostings = m.similarPostings(ctx, resumeText)

	return result, nil
}

// matchSkills matches resume skills against JD skills by embedding cosine
// similarity, covering wording differences exact matching misses. When the
// embedding capability is down it degrades to exact intersection.
func (m *matchService) matchSkills(ctx context.Context, resumeSkills, jdSkills []string) []string {
	if m.embedder == nil || len(resumeSkills) == 0 {
		return exactIntersection(resumeSkills, jdSkills)
	}

	all := append(append([]string{}, resumeSkills...), jdSkills...)
	vectors, err := m.embedder.EmbedBatch(ctx, all)
	if err != nil {
		m.logger.Warn("semantic skill match unavailable, using exact intersection", zap.Error(err))
		return exactIntersection(resumeSkills, jdSkills)
	}

	resumeVecs := vectors[:len(resumeSkills)]
	jdVecs := vectors[len(resumeSkills):]

	matched := make([]string, 0, len(jdSkills))
	for j, jdVec := range jdVecs {
		for _, resumeVec := range resumeVecs {
			if CosineSimilarity(resumeVec, jdVec) >= semanticMatchThreshold {
				matched = append(matched, jdSkills[j])
				break
			}
		}
	}

	return matched
}

func (m *matchService) similarPostings(ctx context.Context, resumeText string) []JobPostingMatch {
	if m.jobIndex == nil || m.embedder == nil {
		return nil
	}

	embedding, err := m.embedder.Embed(ctx, resumeText)
	if err != nil {
		m.logger.Warn("failed to embed resume for posting search", zap.Error(err))
		return nil
	}

	matches, err := m.jobIndex.SearchSimilar(ctx, embedding, similarPostingLimit)
	if err != nil {
		m.logger.Warn("posting search failed", zap.Error(err))
		return nil
	}

	return matches
}

func exactIntersection(resumeSkills, jdSkills []string) []string {
	matched := make([]string, 0, len(jdSkills))
	for _, jd := range jdSkills {
		if HasSkill(resumeSkills, jd) {
			matched = append(matched, jd)
		}
	}
	return matched
}
