package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talentscout/internal/models"
)

type stubGemini struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestAssistant(gemini GeminiService) AssistantService {
	return NewAssistantService(gemini, time.Second)
}

func TestGenerateQuestionsAndRoles_ParsesStrictJSON(t *testing.T) {
	gemini := &stubGemini{response: `{
		"questions": ["What is a goroutine?", "Explain channels."],
		"roles": [{"role": "Backend Developer", "companies": ["Google", "Amazon"]}]
	}`}

	questions, roles := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Go")

	require.Len(t, questions, 2)
	assert.Equal(t, "What is a goroutine?", questions[0])
	require.Len(t, roles, 1)
	assert.Equal(t, "Backend Developer", roles[0].Role)
	assert.Equal(t, []string{"Google", "Amazon"}, roles[0].Companies)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Go")
}

func TestGenerateQuestionsAndRoles_StripsMarkdownFences(t *testing.T) {
	gemini := &stubGemini{response: "```json\n{\"questions\": [\"Q1\"], \"roles\": []}\n```"}

	questions, roles := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Go")

	assert.Equal(t, []string{"Q1"}, questions)
	assert.Empty(t, roles)
}

func TestGenerateQuestionsAndRoles_FallbackOnError(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("network down")}

	questions, roles := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Go, Docker")

	assert.Equal(t, []string{
		"Explain your experience with Go.",
		"Explain your experience with Docker.",
	}, questions)
	assert.Empty(t, roles)
}

func TestGenerateQuestionsAndRoles_FallbackOnGarbage(t *testing.T) {
	gemini := &stubGemini{response: "Sure! Here are some questions for you..."}

	questions, roles := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Python")

	assert.Equal(t, []string{"Explain your experience with Python."}, questions)
	assert.Empty(t, roles)
}

func TestGenerateQuestionsAndRoles_FallbackOnMissingKeys(t *testing.T) {
	gemini := &stubGemini{response: `{"questions": ["Q1"]}`}

	questions, roles := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Python, SQL")

	assert.Equal(t, []string{
		"Explain your experience with Python.",
		"Explain your experience with SQL.",
	}, questions)
	assert.Empty(t, roles)
}

func TestGenerateQuestionsAndRoles_CapsAtTenQuestions(t *testing.T) {
	response := `{"questions": [`
	for i := 0; i < 12; i++ {
		if i > 0 {
			response += ","
		}
		response += fmt.Sprintf(`"Question %d"`, i+1)
	}
	response += `], "roles": []}`
	gemini := &stubGemini{response: response}

	questions, _ := newTestAssistant(gemini).GenerateQuestionsAndRoles(context.Background(), "Go")

	assert.Len(t, questions, models.MaxQuestions)
	assert.Equal(t, "Question 10", questions[len(questions)-1])
}

func TestGenerateQuestionsAndRoles_FallbackCapsAtFive(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("timeout")}

	questions, _ := newTestAssistant(gemini).GenerateQuestionsAndRoles(
		context.Background(), "Go, Docker, Kubernetes, Postgres, Redis, Kafka, Terraform")

	assert.Len(t, questions, 5)
}

func TestGenerateQuestionsAndRoles_NoClientUsesFallback(t *testing.T) {
	questions, roles := newTestAssistant(nil).GenerateQuestionsAndRoles(context.Background(), "Go")

	assert.Equal(t, []string{"Explain your experience with Go."}, questions)
	assert.Empty(t, roles)
}

func TestClassifySentiment_NormalizesLabels(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{"plain label", "positive", "positive"},
		{"capitalized with newline", "Positive\n", "positive"},
		{"quoted", `"negative"`, "negative"},
		{"trailing period", "NEUTRAL.", "neutral"},
		{"off-vocabulary answer", "happy", "neutral"},
		{"chatty answer", "The sentiment is positive", "neutral"},
		{"empty", "", "neutral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &stubGemini{response: tt.response}
			got := newTestAssistant(gemini).ClassifySentiment(context.Background(), "hello")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySentiment_NeutralOnError(t *testing.T) {
	gemini := &stubGemini{err: fmt.Errorf("boom")}

	assert.Equal(t, SentimentNeutral, newTestAssistant(gemini).ClassifySentiment(context.Background(), "hello"))
}

func TestClassifySentiment_NeutralWithoutClient(t *testing.T) {
	assert.Equal(t, SentimentNeutral, newTestAssistant(nil).ClassifySentiment(context.Background(), "hello"))
}
