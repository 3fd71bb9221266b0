package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
)

type ChatHandler struct {
	sessionService *services.SessionService
}

func NewChatHandler(sessionService *services.SessionService) *ChatHandler {
	return &ChatHandler{
		sessionService: sessionService,
	}
}

type startOfferChatRequest struct {
	OfferID string `json:"offer_id"`
}

type chatMessageRequest struct {
	Text           string `json:"text"`
	FromSuggestion bool   `json:"from_suggestion"`
}

// StartOfferChat godoc
// @Summary Start an offer conversation
// @Description Open the advisor conversation about one offer
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param offer body startOfferChatRequest true "Offer to discuss"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/offer-chat [post]
func (h *ChatHandler) StartOfferChat(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req startOfferChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.OfferID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "offer_id is required"})
	}

	view, err := h.sessionService.StartOfferChat(id, req.OfferID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SubmitOfferChatMessage godoc
// @Summary Send a message to the offer advisor
// @Description Append a visitor utterance; the scripted reply lands after the typing delay
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param message body chatMessageRequest true "Message text"
// @Success 202 {object} map[string]interface{}
// @Router /sessions/{id}/offer-chat/messages [post]
func (h *ChatHandler) SubmitOfferChatMessage(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Text == "" {
		return c.Status(400).JSON(fiber.Map{"error": "text is required"})
	}

	view, err := h.sessionService.SubmitOfferChatMessage(id, req.Text, req.FromSuggestion)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(202).JSON(fiber.Map{
		"state": view,
	})
}

// OpenFaq godoc
// @Summary Open the help panel
// @Description Switch to the help assistant and refresh its prompt chips
// @Tags Chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/faq [post]
func (h *ChatHandler) OpenFaq(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := h.sessionService.OpenFaq(id)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}

// SubmitFaqMessage godoc
// @Summary Ask the help assistant
// @Description Answer a support question from the knowledge base after the typing delay
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param message body chatMessageRequest true "Question text"
// @Success 202 {object} map[string]interface{}
// @Router /sessions/{id}/faq/messages [post]
func (h *ChatHandler) SubmitFaqMessage(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req chatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.Text == "" {
		return c.Status(400).JSON(fiber.Map{"error": "text is required"})
	}

	view, err := h.sessionService.SubmitFaqMessage(id, req.Text)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(202).JSON(fiber.Map{
		"state": view,
	})
}
