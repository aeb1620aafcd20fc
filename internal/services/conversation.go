package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"alfredoptarigan/talentscout/internal/models"
	"alfredoptarigan/talentscout/internal/redact"
	"alfredoptarigan/talentscout/internal/repositories"
	"alfredoptarigan/talentscout/internal/validation"
)

// exitKeywords end the conversation from any stage, checked before anything
// else on every turn.
var exitKeywords = map[string]struct{}{
	"exit":      {},
	"quit":      {},
	"bye":       {},
	"goodbye":   {},
	"end":       {},
	"stop":      {},
	"thanks":    {},
	"thank you": {},
}

const (
	greetingMessage     = "Hello! I'm TalentScout, your professional hiring assistant. I'll help you through our initial screening process by gathering your information and asking tailored technical questions. Let's begin — what's your full name?"
	askExperienceReply  = "Thank you! How many years of professional experience do you have?"
	askPositionsReply   = "Great! What position(s) are you interested in applying for?"
	askLocationReply    = "Perfect! Where are you currently located?"
	askTechStackReply   = "Excellent! Please list your technical skills and tech stack (separated by commas)."
	askEmailReply       = "Thank you! What's your email address?"
	askPhoneReply       = "Perfect! Finally, what's your phone number?"
	invalidEmailReply   = "That doesn't appear to be a valid email address. Could you please provide a valid email?"
	invalidPhoneReply   = "That phone number doesn't seem to be in a valid format. Please provide a valid phone number."
	questionsHintReply  = "You can answer the questions one by one or provide comprehensive responses. Type 'exit' when you're finished."
	acknowledgmentReply = "Thank you for your response! Feel free to continue with additional answers or type 'exit' when you're ready to conclude."
)

// Session carries one candidate conversation. Turns are strictly serialized
// by the mutex; the candidate is never shared across sessions.
type Session struct {
	ID        uuid.UUID
	Stage     models.Stage
	Candidate *models.Candidate

	mu         sync.Mutex
	persistErr error
}

// Record snapshots the candidate into its exportable shape.
func (s *Session) Record() *models.CandidateRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Candidate.ToRecord()
}

// Transcript returns a copy of the chat history for rendering.
func (s *Session) Transcript() []models.TranscriptEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript := make([]models.TranscriptEntry, len(s.Candidate.Transcript))
	copy(transcript, s.Candidate.Transcript)
	return transcript
}

// PersistErr reports whether finalize failed to write the record. The record
// itself stays in memory and remains exportable.
func (s *Session) PersistErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistErr
}

// ConversationService drives the greet → collect → questions → end intake
// flow. HandleMessage is total: every utterance either advances a stage,
// re-prompts, or ends the session; it never returns an error.
type ConversationService interface {
	NewSession() (*Session, []string)
	HandleMessage(ctx context.Context, s *Session, text string) []string
	Restart(s *Session) []string
}

type conversationService struct {
	assistant     AssistantService
	redactor      *redact.Redactor
	candidateRepo repositories.CandidateRepository
}

func NewConversationService(
	assistant AssistantService,
	redactor *redact.Redactor,
	candidateRepo repositories.CandidateRepository,
) ConversationService {
	return &conversationService{
		assistant:     assistant,
		redactor:      redactor,
		candidateRepo: candidateRepo,
	}
}

// NewSession implements ConversationService.
func (c *conversationService) NewSession() (*Session, []string) {
	s := &Session{
		ID:        uuid.New(),
		Stage:     models.StageGreet,
		Candidate: models.NewCandidate(),
	}
	s.Candidate.AppendTranscript(models.RoleAssistant, greetingMessage)
	return s, []string{greetingMessage}
}

// HandleMessage implements ConversationService.
func (c *conversationService) HandleMessage(ctx context.Context, s *Session, text string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" || s.Stage == models.StageEnd {
		return nil
	}

	// Exit check comes first, in every stage. Nothing is recorded for the
	// exit utterance itself, not even a sentiment note.
	if _, ok := exitKeywords[strings.ToLower(text)]; ok {
		s.Stage = models.StageEnd
		return c.finalize(s)
	}

	cand := s.Candidate
	cand.AppendTranscript(models.RoleUser, text)
	cand.SentimentNotes = append(cand.SentimentNotes, c.assistant.ClassifySentiment(ctx, text))

	var replies []string
	switch s.Stage {
	case models.StageGreet:
		cand.FullName = text
		s.Stage = models.StageCollect
		replies = []string{askExperienceReply}
	case models.StageCollect:
		replies = c.collect(ctx, s, text)
	case models.StageQuestions:
		replies = []string{acknowledgmentReply}
	}

	for _, reply := range replies {
		cand.AppendTranscript(models.RoleAssistant, reply)
	}

	return replies
}

// collect fills the profile fields in fixed order: experience, positions,
// location, tech stack, then the validated email and phone. Invalid email or
// phone re-prompts without advancing.
func (c *conversationService) collect(ctx context.Context, s *Session, text string) []string {
	cand := s.Candidate

	switch {
	case cand.YearsExperience == "":
		cand.YearsExperience = text
		return []string{askPositionsReply}

	case cand.DesiredPositions == "":
		cand.DesiredPositions = text
		return []string{askLocationReply}

	case cand.CurrentLocation == "":
		cand.CurrentLocation = text
		return []string{askTechStackReply}

	case cand.TechStack == "":
		cand.TechStack = text
		return []string{askEmailReply}

	case cand.EmailHash == "":
		if !validation.IsValidEmail(text) {
			return []string{invalidEmailReply}
		}
		cand.EmailHash = c.redactor.HashEmail(text)
		return []string{askPhoneReply}

	case cand.PhoneHash == "":
		if !validation.IsValidPhone(text) {
			return []string{invalidPhoneReply}
		}
		cand.PhoneHash = c.redactor.Hash(text)
		s.Stage = models.StageQuestions

		questions, roles := c.assistant.GenerateQuestionsAndRoles(ctx, cand.TechStack)
		cand.Questions = questions
		cand.Roles = roles

		replies := []string{fmt.Sprintf(
			"Excellent, %s! I've prepared some technical questions tailored to your expertise. Please take your time to answer them thoughtfully.",
			cand.FullName,
		)}
		if len(roles) > 0 {
			replies = append(replies, formatRoleSummary(roles))
		}
		return append(replies, questionsHintReply)
	}

	return nil
}

// finalize persists the collected record and closes out the conversation. A
// failed write is logged and remembered but never dropped silently; the
// in-memory record stays available for export and retry.
func (c *conversationService) finalize(s *Session) []string {
	record := s.Candidate.ToRecord()
	if err := c.candidateRepo.Append(record); err != nil {
		log.Printf("❌ Failed to persist candidate record for session %s: %v\n", s.ID, err)
		s.persistErr = err
	} else {
		s.persistErr = nil
		log.Printf("💾 Candidate record persisted for session %s\n", s.ID)
	}

	closing := fmt.Sprintf(
		"Thank you, %s! Your application has been successfully submitted. Our team will review your responses and get back to you shortly. We appreciate your time and interest in joining our network!",
		s.Candidate.FullName,
	)
	s.Candidate.AppendTranscript(models.RoleAssistant, closing)
	return []string{closing}
}

// Restart implements ConversationService. The machine allows a restart from
// any stage; the host decides when to offer it.
func (c *conversationService) Restart(s *Session) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Candidate = models.NewCandidate()
	s.Stage = models.StageGreet
	s.persistErr = nil
	s.Candidate.AppendTranscript(models.RoleAssistant, greetingMessage)
	return []string{greetingMessage}
}

func formatRoleSummary(roles []models.RoleSuggestion) string {
	var b strings.Builder
	b.WriteString("Based on your background, here are some relevant positions and companies that might interest you:\n\n")
	for _, role := range roles {
		b.WriteString(fmt.Sprintf("• **%s** — Companies like %s\n", role.Role, strings.Join(role.Companies, ", ")))
	}
	return b.String()
}
