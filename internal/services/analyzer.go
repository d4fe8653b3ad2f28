package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// minResumeLength is the character floor below which analysis is rejected
// instead of silently producing garbage.
const minResumeLength = 50

// AnalysisResult is the externally visible contract of a resume analysis.
// Every field is always populated, even on failure, and the full resume text
// is carried forward so later evaluation calls need no re-extraction.
type AnalysisResult struct {
	ATSScore           int          `json:"ats_score"`
	PredictedCategory  string       `json:"predicted_category"`
	RecommendedJob     string       `json:"recommended_job"`
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	ExtractedSkills    []string     `json:"extracted_skills"`
	ExtractedEducation []string     `json:"extracted_education"`
	PersonalizedTips   []string     `json:"personalized_tips"`
	MissingSkills      []string     `json:"missing_skills"`
	FutureSkills       []string     `json:"future_skills"`
	InterviewQuestions []string     `json:"interview_questions"`
	RadarData          []RadarPoint `json:"radar_data"`
	ResumeContentText  string       `json:"resume_content_text"`
	ResumeName         string       `json:"resume_name,omitempty"`
	AnalysisID         string       `json:"analysis_id,omitempty"`
}

type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (*AnalysisResult, error)
}

type analyzer struct {
	contactExtractor  ContactExtractor
	predictor         Predictor
	atsScorer         ATSScorer
	gapAnalyzer       GapAnalyzer
	tipGenerator      TipGenerator
	questionGenerator QuestionGenerator
	radarGenerator    RadarGenerator
	logger            *zap.Logger
}

func NewAnalyzer(
	contactExtractor ContactExtractor,
	predictor Predictor,
	atsScorer ATSScorer,
	gapAnalyzer GapAnalyzer,
	tipGenerator TipGenerator,
	questionGenerator QuestionGenerator,
	radarGenerator RadarGenerator,
	logger *zap.Logger,
) Analyzer {
	return &analyzer{
		contactExtractor:  contactExtractor,
		predictor:         predictor,
		atsScorer:         atsScorer,
		gapAnalyzer:       gapAnalyzer,
		tipGenerator:      tipGenerator,
		questionGenerator: questionGenerator,
		radarGenerator:    radarGenerator,
		logger:            logger,
	}
}

// Analyze orchestrates extraction, prediction, scoring, gap analysis and
// question generation for one resume. An unexpected panic inside any step is
// converted into a fully-populated error-shaped result so the response
// contract never breaks.
func (a *analyzer) Analyze(ctx context.Context, resumeText string) (result *AnalysisResult, err error) {
	if len(strings.TrimSpace(resumeText)) < minResumeLength {
		return nil, ErrResumeTooShort
	}

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("analysis panicked", zap.Any("panic", r))
			result = ErrorAnalysisResult(fmt.Sprintf("unexpected processing failure: %v", r), resumeText)
			err = nil
		}
	}()

	profile := a.contactExtractor.ExtractProfile(resumeText)

	predictedCategory := a.predictor.PredictCategory(ctx, resumeText)
	recommendedJob := a.predictor.RecommendJob(ctx, resumeText)

	atsScore := a.atsScorer.Score(resumeText, profile)
	tips := a.tipGenerator.Generate(resumeText, recommendedJob, profile)
	missing, future := a.gapAnalyzer.Analyze(recommendedJob, profile.Skills)
	questions := a.questionGenerator.Generate(profile.Skills, nil, predictedCategory, recommendedJob)
	radarData := a.radarGenerator.Generate(profile.Skills, recommendedJob)

	a.logger.Info("resume analyzed",
		zap.Int("ats_score", atsScore),
		zap.String("predicted_category", predictedCategory),
		zap.String("recommended_job", recommendedJob),
		zap.Int("skills", len(profile.Skills)))

	return &AnalysisResult{
		ATSScore:           atsScore,
		PredictedCategory:  predictedCategory,
		RecommendedJob:     recommendedJob,
		Name:               profile.Name,
		Email:              profile.Email,
		Phone:              profile.Phone,
		ExtractedSkills:    nonNil(profile.Skills),
		ExtractedEducation: nonNil(profile.Education),
		PersonalizedTips:   nonNil(tips),
		MissingSkills:      nonNil(missing),
		FutureSkills:       nonNil(future),
		InterviewQuestions: questions,
		RadarData:          radarData,
		ResumeContentText:  resumeText,
	}, nil
}

// ErrorAnalysisResult builds the zeroed, "Error"-labeled result used whenever
// analysis cannot complete. The explanatory message is folded into the tips
// so no field in the payload goes missing.
func ErrorAnalysisResult(message, resumeText string) *AnalysisResult {
	return &AnalysisResult{
		ATSScore:           0,
		PredictedCategory:  "Error",
		RecommendedJob:     "Error",
		Name:               fieldNotFound,
		Email:              fieldNotFound,
		Phone:              fieldNotFound,
		ExtractedSkills:    []string{},
		ExtractedEducation: []string{},
		PersonalizedTips:   []string{fmt.Sprintf("Analysis failed: %s. Please try a different resume file.", message)},
		MissingSkills:      []string{},
		FutureSkills:       []string{},
		InterviewQuestions: []string{"Analysis failed. Please try a different resume file or check the server logs."},
		RadarData:          ZeroRadarData(),
		ResumeContentText:  resumeText,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
