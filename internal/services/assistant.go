package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"alfredoptarigan/talentscout/internal/models"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Fallback question list stays short even for sprawling tech stacks.
const maxFallbackQuestions = 5

// AssistantService is the gateway to the language model. Both operations are
// total: any failure underneath (missing credential, network, timeout,
// malformed output) resolves to a deterministic fallback, never an error. The
// conversation must not stall because the model is unavailable.
type AssistantService interface {
	GenerateQuestionsAndRoles(ctx context.Context, techStack string) ([]string, []models.RoleSuggestion)
	ClassifySentiment(ctx context.Context, message string) string
}

type assistantService struct {
	gemini        GeminiService // nil when no API key is configured
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewAssistantService(gemini GeminiService, timeout time.Duration) AssistantService {
	return &assistantService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// questionsAndRoles uses pointer slices so an object missing either key is
// told apart from one carrying empty arrays; missing keys trigger the fallback.
type questionsAndRoles struct {
	Questions *[]string                `json:"questions"`
	Roles     *[]models.RoleSuggestion `json:"roles"`
}

// GenerateQuestionsAndRoles implements AssistantService.
func (a *assistantService) GenerateQuestionsAndRoles(ctx context.Context, techStack string) ([]string, []models.RoleSuggestion) {
	if a.gemini == nil {
		return fallbackQuestions(techStack), []models.RoleSuggestion{}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := a.promptBuilder.BuildQuestionsAndRolesPrompt(techStack)
	response, err := a.gemini.GenerateText(ctx, prompt, 0.4)
	if err != nil {
		log.Printf("⚠️  Question generation failed, using fallback: %v\n", err)
		return fallbackQuestions(techStack), []models.RoleSuggestion{}
	}

	var parsed questionsAndRoles
	if err := json.Unmarshal([]byte(extractJSON(response)), &parsed); err != nil {
		log.Printf("⚠️  Unparseable question response, using fallback: %v\n", err)
		return fallbackQuestions(techStack), []models.RoleSuggestion{}
	}

	if parsed.Questions == nil || parsed.Roles == nil {
		log.Println("⚠️  Question response missing keys, using fallback")
		return fallbackQuestions(techStack), []models.RoleSuggestion{}
	}

	questions := *parsed.Questions
	if len(questions) > models.MaxQuestions {
		questions = questions[:models.MaxQuestions]
	}

	return questions, *parsed.Roles
}

// ClassifySentiment implements AssistantService.
func (a *assistantService) ClassifySentiment(ctx context.Context, message string) string {
	if a.gemini == nil {
		return SentimentNeutral
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := a.promptBuilder.BuildSentimentPrompt(message)
	response, err := a.gemini.GenerateText(ctx, prompt, 0.4)
	if err != nil {
		return SentimentNeutral
	}

	label := strings.ToLower(strings.TrimSpace(response))
	label = strings.Trim(label, "\"'`.")

	switch label {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return label
	}

	return SentimentNeutral
}

// fallbackQuestions produces one templated question per comma-separated stack
// entry, capped at 5.
func fallbackQuestions(techStack string) []string {
	questions := make([]string, 0, maxFallbackQuestions)
	for _, entry := range strings.Split(techStack, ",") {
		if len(questions) == maxFallbackQuestions {
			break
		}
		questions = append(questions, fmt.Sprintf("Explain your experience with %s.", strings.TrimSpace(entry)))
	}
	return questions
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object boundaries
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
