package services

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionsGenerateExactlyFive(t *testing.T) {
	generator := NewQuestionGenerator(rand.New(rand.NewSource(1)))

	questions := generator.Generate(
		[]string{"Python", "SQL", "Docker"}, nil, "Data Science", "Data Scientist")

	require.Len(t, questions, questionCount)
	for _, q := range questions {
		assert.NotEmpty(t, q)
	}
}

func TestQuestionsGenerateStructure(t *testing.T) {
	resumeSkills := []string{"Python", "SQL", "Docker"}
	generator := NewQuestionGenerator(rand.New(rand.NewSource(3)))

	questions := generator.Generate(resumeSkills, nil, "Data Science", "Data Scientist")
	require.Len(t, questions, questionCount)

	assert.True(t, questionReferencesAny(questions[0], resumeSkills),
		"deep-dive question must name a resume skill: %q", questions[0])
	assert.True(t, questionReferencesAny(questions[1], resumeSkills),
		"proficiency question must name a resume skill: %q", questions[1])
	assert.Contains(t, behavioralQuestions, questions[2])
	assert.Contains(t, questions[3], "Data Science")
	assert.Contains(t, motivationQuestions, questions[4])
}

func TestQuestionsGeneratePrefersJDSkills(t *testing.T) {
	resumeSkills := []string{"Python", "SQL"}
	jdSkills := []string{"Kubernetes", "Terraform"}
	generator := NewQuestionGenerator(rand.New(rand.NewSource(9)))

	questions := generator.Generate(resumeSkills, jdSkills, "DevOps", "DevOps Engineer")

	assert.True(t, questionReferencesAny(questions[0], jdSkills),
		"JD skills must steer the deep-dive question: %q", questions[0])
	assert.False(t, questionReferencesAny(questions[0], resumeSkills))
}

func TestQuestionsGenerateSingleSkillAsksReadiness(t *testing.T) {
	generator := NewQuestionGenerator(rand.New(rand.NewSource(5)))

	questions := generator.Generate([]string{"Python"}, nil, "Data Science", "Data Scientist")

	require.Len(t, questions, questionCount)
	assert.Contains(t, questions[0], "Python")
	assert.Contains(t, questions[1], "Data Scientist",
		"with a single skill the second slot probes role readiness")
}

func TestQuestionsGenerateNoSkillsFallsBack(t *testing.T) {
	generator := NewQuestionGenerator(rand.New(rand.NewSource(11)))

	questions := generator.Generate(nil, nil, "Data Science", "Software Engineer")

	require.Len(t, questions, questionCount)
	assert.True(t, questionReferencesAny(questions[0], fallbackQuestionSkills),
		"fallback skills must back the deep-dive question: %q", questions[0])
}

func TestQuestionsGenerateDeterministicForSeed(t *testing.T) {
	skills := []string{"Python", "SQL", "AWS", "Docker"}

	first := NewQuestionGenerator(rand.New(rand.NewSource(21))).Generate(skills, nil, "Data Science", "Data Scientist")
	second := NewQuestionGenerator(rand.New(rand.NewSource(21))).Generate(skills, nil, "Data Science", "Data Scientist")

	assert.Equal(t, first, second)
}

func TestQuestionsGenerateDoesNotMutateInput(t *testing.T) {
	skills := []string{"Python", "SQL", "AWS", "Docker"}
	snapshot := append([]string{}, skills...)

	NewQuestionGenerator(rand.New(rand.NewSource(13))).Generate(skills, nil, "Data Science", "Data Scientist")

	assert.Equal(t, snapshot, skills, "shuffling must act on a copy")
}

func questionReferencesAny(question string, skills []string) bool {
	for _, s := range skills {
		if strings.Contains(question, fmt.Sprintf("used %s?", s)) ||
			strings.Contains(question, fmt.Sprintf("with %s,", s)) {
			return true
		}
	}
	return false
}
