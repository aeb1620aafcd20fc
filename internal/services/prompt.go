package services

import "fmt"

// SystemPrompt frames every Gemini call for the intake assistant.
const SystemPrompt = `You are TalentScout, a polite, professional hiring assistant for a tech recruitment agency.
Your tasks:
1. Greet candidates and explain purpose.
2. Collect: Full Name, Email, Phone, Years of Experience, Desired Position(s), Location, Tech Stack.
3. Generate 3-5 questions per technology, capped at 10 total.
4. Suggest 5 relevant job roles and companies that hire for them.
5. Maintain context, handle follow-ups, and never drift off-topic.
6. Exit gracefully when the user types exit/bye/quit/etc.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsAndRolesPrompt creates the combined prompt that asks for
// interview questions and role suggestions as strict JSON.
func (pb *PromptBuilder) BuildQuestionsAndRolesPrompt(techStack string) string {
	return fmt.Sprintf(`Given the following tech stack: %s

1. Generate 3-5 technical interview questions, capped at 10.
2. Suggest 5 relevant job roles.
3. For each role, suggest example companies that typically hire for it.

Return JSON ONLY like this:

{
  "questions": [
    "Question 1",
    "Question 2"
  ],
  "roles": [
    {
      "role": "Backend Developer",
      "companies": ["Google", "Amazon", "Netflix"]
    }
  ]
}`, techStack)
}

// BuildSentimentPrompt creates the single-word sentiment classification prompt.
func (pb *PromptBuilder) BuildSentimentPrompt(message string) string {
	return fmt.Sprintf(`Classify sentiment of this message as: "positive", "neutral", or "negative".
Reply with one word only.
Message:
%s`, message)
}
