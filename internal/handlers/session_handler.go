package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talentscout/internal/models"
	"alfredoptarigan/talentscout/internal/services"
)

// SessionHandler is the host surface of the intake conversation: it carries
// one user utterance per request into the state machine and renders whatever
// messages the machine appends.
type SessionHandler struct {
	sessions     services.SessionManager
	conversation services.ConversationService
}

func NewSessionHandler(
	sessions services.SessionManager,
	conversation services.ConversationService,
) *SessionHandler {
	return &SessionHandler{
		sessions:     sessions,
		conversation: conversation,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	s, greeting := h.sessions.Create()

	return c.Status(fiber.StatusCreated).JSON(models.SessionResponse{
		ID:       s.ID.String(),
		Stage:    string(s.Stage),
		Messages: greeting,
	})
}

// HandleMessage handles POST /sessions/:id/messages
func (h *SessionHandler) HandleMessage(c *fiber.Ctx) error {
	s, err := h.lookupSession(c)
	if err != nil {
		return err
	}

	var req models.MessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	replies := h.conversation.HandleMessage(c.UserContext(), s, req.Message)

	response := models.MessageResponse{
		ID:      s.ID.String(),
		Stage:   string(s.Stage),
		Replies: replies,
	}

	// Surface the generated questions alongside the replies once the
	// interview stage is reached, so the host can render the question panel.
	if s.Stage == models.StageQuestions {
		response.Questions = s.Record().Questions
	}

	return c.JSON(response)
}

// HandleGetSession handles GET /sessions/:id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	s, err := h.lookupSession(c)
	if err != nil {
		return err
	}

	return c.JSON(models.TranscriptResponse{
		ID:         s.ID.String(),
		Stage:      string(s.Stage),
		Transcript: s.Transcript(),
	})
}

// HandleSummary handles GET /sessions/:id/summary
func (h *SessionHandler) HandleSummary(c *fiber.Ctx) error {
	s, err := h.lookupSession(c)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.Record(), "", "  ")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to encode summary",
		})
	}

	filename := fmt.Sprintf("talentscout_interview_%d.json", time.Now().Unix())
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// HandleRestart handles POST /sessions/:id/restart
func (h *SessionHandler) HandleRestart(c *fiber.Ctx) error {
	s, err := h.lookupSession(c)
	if err != nil {
		return err
	}

	greeting := h.conversation.Restart(s)

	return c.JSON(models.SessionResponse{
		ID:       s.ID.String(),
		Stage:    string(s.Stage),
		Messages: greeting,
	})
}

func (h *SessionHandler) lookupSession(c *fiber.Ctx) (*services.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	s, ok := h.sessions.Get(id)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return s, nil
}
