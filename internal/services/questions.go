package services

import (
	"fmt"
	"math/rand"
	"sync"
)

const questionCount = 5

var fallbackQuestionSkills = []string{"Communication", "Problem Solving", "Teamwork"}

var behavioralQuestions = []string{
	"Describe a time you had to deal with conflict or disagreement on a team.",
	"Tell me about a project that failed and what you learned from it.",
	"Describe a situation where you had to meet a tight deadline under pressure.",
	"Tell me about a time you had to pick up an unfamiliar technology quickly.",
}

var motivationQuestions = []string{
	"Why are you interested in this specific career path and our industry?",
	"What kind of team environment brings out your best work?",
	"Where do you see your skills developing over the next few years?",
	"What accomplishment are you most proud of, and why?",
}

type QuestionGenerator interface {
	Generate(resumeSkills, jdSkills []string, predictedCategory, recommendedJob string) []string
}

type questionGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuestionGenerator takes an explicit random source so tests can pin the
// shuffled order with a fixed seed.
func NewQuestionGenerator(rng *rand.Rand) QuestionGenerator {
	return &questionGenerator{rng: rng}
}

// Generate composes exactly five questions: a skill deep-dive, a proficiency
// probe, a behavioral question, a scalability question templated with the
// predicted category, and a motivation question. Job-description skills are
// preferred over resume skills when the JD yields any matches.
func (q *questionGenerator) Generate(resumeSkills, jdSkills []string, predictedCategory, recommendedJob string) []string {
	q.mu.Lock()
	defer q.mu.Unlock()

	source := jdSkills
	if len(source) == 0 {
		source = resumeSkills
	}
	if len(source) == 0 {
		source = fallbackQuestionSkills
	}

	shuffled := make([]string, len(source))
	copy(shuffled, source)
	q.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	questions := make([]string, 0, questionCount)

	questions = append(questions, fmt.Sprintf(
		"Can you walk me through a challenging project where you used %s?", shuffled[0]))

	if len(shuffled) >= 2 {
		questions = append(questions, fmt.Sprintf(
			"How would you rate your proficiency with %s, and how have you applied it recently?", shuffled[1]))
	} else {
		questions = append(questions, fmt.Sprintf(
			"Why do you feel ready for a %s role right now?", recommendedJob))
	}

	questions = append(questions, behavioralQuestions[q.rng.Intn(len(behavioralQuestions))])

	questions = append(questions, fmt.Sprintf(
		"How do you ensure quality and maintainability as systems grow in a %s environment?", predictedCategory))

	questions = append(questions, motivationQuestions[q.rng.Intn(len(motivationQuestions))])

	return questions
}
