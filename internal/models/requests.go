package models

// EvaluateRequest carries a batch of question/answer pairs. The resume
// context comes either inline or from the analysis-time cache via
// resume_name.
type EvaluateRequest struct {
	Questions     []string `json:"questions"`
	Answers       []string `json:"answers"`
	ResumeName    string   `json:"resume_name"`
	ResumeContent string   `json:"resume_content"`
}

type EvaluateResponse struct {
	IndividualScores   []int    `json:"individual_scores"`
	IndividualFeedback []string `json:"individual_feedback"`
	TranscribedText    string   `json:"transcribed_text"`
}

// EvaluateTextRequest is the single-pair convenience surface. Scalar inputs
// are wrapped into sequences at this boundary, not inside the core.
type EvaluateTextRequest struct {
	Question             string `json:"question"`
	Answer               string `json:"answer"`
	ResumeName           string `json:"resume_name"`
	ResumeContent        string `json:"resume_content"`
	CurrentQuestionIndex int    `json:"current_question_index"`
}

type EvaluateTextResponse struct {
	Score           int    `json:"score"`
	Feedback        string `json:"feedback"`
	TranscribedText string `json:"transcribed_text"`
}

type MatchRequest struct {
	ResumeName string `json:"resume_name"`
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

type GenerateQuestionsRequest struct {
	ResumeName string `json:"resume_name"`
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

type GenerateQuestionsResponse struct {
	TotalQuestions int      `json:"total_questions"`
	Questions      []string `json:"questions"`
}
