package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// sessionID parses the :id path parameter
func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.New("invalid session id")
	}
	return id, nil
}

// statusFor maps service errors to HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound),
		errors.Is(err, services.ErrOfferNotFound):
		return 404
	case errors.Is(err, services.ErrSessionClosed):
		return 410
	case errors.Is(err, services.ErrAgentBusy),
		errors.Is(err, services.ErrInvalidView),
		errors.Is(err, services.ErrNoPendingProOffer):
		return 409
	default:
		return 500
	}
}

type openSessionRequest struct {
	Locale     string `json:"locale"`
	CurrentURL string `json:"current_url"`
}

type keywordRequest struct {
	Keyword string `json:"keyword"`
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type rfpRequest struct {
	Document string `json:"document"`
}

// OpenSession godoc
// @Summary Open a widget session
// @Description Create a fresh session for one widget instance
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body openSessionRequest true "Session options"
// @Success 201 {object} map[string]interface{}
// @Router /sessions [post]
func (h *SessionHandler) OpenSession(c *fiber.Ctx) error {
	var req openSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	view, err := h.sessionService.Open(req.Locale, req.CurrentURL)
	if err != nil {
		log.Printf("❌ Failed to open session: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"state": view,
	})
}

// GetSession godoc
// @Summary Get session state
// @Description Get the full widget state for a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.State(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SelectKeyword godoc
// @Summary Select a keyword
// @Description Add a keyword to the selection and refine the offer list
// @Tags Keywords
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param keyword body keywordRequest true "Keyword to select"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/keywords/select [post]
func (h *SessionHandler) SelectKeyword(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req keywordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Keyword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "keyword is required"})
	}

	view, err := h.sessionService.SelectKeyword(id, req.Keyword)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// DeselectKeyword godoc
// @Summary Deselect a keyword
// @Description Remove a keyword from the selection
// @Tags Keywords
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param keyword body keywordRequest true "Keyword to deselect"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/keywords/deselect [post]
func (h *SessionHandler) DeselectKeyword(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req keywordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Keyword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "keyword is required"})
	}

	view, err := h.sessionService.DeselectKeyword(id, req.Keyword)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SubmitPrompt godoc
// @Summary Submit a free-text need
// @Description Run the simulated analysis of a typed need and refine from its keywords
// @Tags Keywords
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param prompt body promptRequest true "Free-text need"
// @Success 202 {object} map[string]interface{}
// @Router /sessions/{id}/prompt [post]
func (h *SessionHandler) SubmitPrompt(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req promptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Prompt == "" {
		return c.Status(400).JSON(fiber.Map{"error": "prompt is required"})
	}

	view, err := h.sessionService.SubmitPrompt(id, req.Prompt)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(202).JSON(fiber.Map{
		"state": view,
	})
}

// StartVoiceSearch godoc
// @Summary Start the voice search
// @Description Play the scripted voice capture and resolve its keywords
// @Tags Keywords
// @Produce json
// @Param id path string true "Session ID"
// @Success 202 {object} map[string]interface{}
// @Router /sessions/{id}/voice [post]
func (h *SessionHandler) StartVoiceSearch(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.StartVoiceSearch(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(202).JSON(fiber.Map{
		"state": view,
	})
}

// StartContact godoc
// @Summary Open the contact form
// @Description Switch the widget to the advisor callback form
// @Tags Contact
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/contact [post]
func (h *SessionHandler) StartContact(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.StartContact(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SubmitContact godoc
// @Summary Submit the contact form
// @Description Acknowledge the callback request and show the confirmation panel
// @Tags Contact
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param contact body services.ContactRequest true "Contact details"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/contact/submit [post]
func (h *SessionHandler) SubmitContact(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req services.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email is required"})
	}

	view, err := h.sessionService.SubmitContact(id, req)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Contact request received",
		"state":   view,
	})
}

// StartRfp godoc
// @Summary Open the RFP panel
// @Description Switch the widget to the request-for-proposal panel
// @Tags RFP
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/rfp [post]
func (h *SessionHandler) StartRfp(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.StartRfp(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SubmitRfp godoc
// @Summary Submit an RFP document
// @Description Run the simulated RFP analysis and land on its summary
// @Tags RFP
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param rfp body rfpRequest true "RFP text"
// @Success 202 {object} map[string]interface{}
// @Router /sessions/{id}/rfp/submit [post]
func (h *SessionHandler) SubmitRfp(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req rfpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Document == "" {
		return c.Status(400).JSON(fiber.Map{"error": "document is required"})
	}

	view, err := h.sessionService.SubmitRfp(id, req.Document)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(202).JSON(fiber.Map{
		"state": view,
	})
}

// ResetSession godoc
// @Summary Reset a session
// @Description Return the session to a fresh just-opened state
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.Reset(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Session reset successfully",
		"state":   view,
	})
}

// CloseSession godoc
// @Summary Close a session
// @Description Discard a session and cancel its pending effects
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id} [delete]
func (h *SessionHandler) CloseSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.sessionService.Close(id); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Session closed successfully",
	})
}
