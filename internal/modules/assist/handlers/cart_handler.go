package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
)

type CartHandler struct {
	sessionService *services.SessionService
}

func NewCartHandler(sessionService *services.SessionService) *CartHandler {
	return &CartHandler{
		sessionService: sessionService,
	}
}

type addToCartRequest struct {
	OfferID string              `json:"offer_id"`
	Source  *models.FlightRect  `json:"source,omitempty"`
	Target  *models.FlightPoint `json:"target,omitempty"`
}

type removeFromCartRequest struct {
	OfferID string `json:"offer_id"`
}

type proServicesRequest struct {
	Accepted bool `json:"accepted"`
}

// AddToCart godoc
// @Summary Add an offer to the cart
// @Description Add an offer to the session cart, recording the optional animation flight
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param item body addToCartRequest true "Offer to add"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/cart [post]
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.OfferID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "offer_id is required"})
	}

	var flight *models.CartFlight
	if req.Source != nil && req.Target != nil {
		flight = &models.CartFlight{Source: *req.Source, Target: *req.Target}
	}

	view, err := h.sessionService.AddToCart(id, req.OfferID, flight)
	if err != nil {
		log.Printf("❌ Failed to add to cart: %v", err)
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Offer added to cart successfully",
		"state":   view,
	})
}

// RemoveFromCart godoc
// @Summary Remove an offer from the cart
// @Description Drop an offer from the session cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param item body removeFromCartRequest true "Offer to remove"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/cart [delete]
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req removeFromCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}
	if req.OfferID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "offer_id is required"})
	}

	view, err := h.sessionService.RemoveFromCart(id, req.OfferID)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Offer removed from cart successfully",
		"state":   view,
	})
}

// ResolveProServices godoc
// @Summary Answer the professional-services prompt
// @Description Accept or decline the companion product after adding the flagship offer
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param answer body proServicesRequest true "Visitor answer"
// @Success 200 {object} map[string]interface{}
// @Router /sessions/{id}/cart/pro-services [post]
func (h *CartHandler) ResolveProServices(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var req proServicesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
	}

	view, err := h.sessionService.ResolveProServices(id, req.Accepted)
	if err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"state": view,
	})
}
