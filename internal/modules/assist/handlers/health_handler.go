package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
)

type HealthHandler struct {
	offerRepo repositories.OfferRepo
}

func NewHealthHandler(offerRepo repositories.OfferRepo) *HealthHandler {
	return &HealthHandler{offerRepo: offerRepo}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and the catalog is loaded
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	count, err := h.offerRepo.Count()
	if err != nil {
		return c.Status(503).JSON(fiber.Map{
			"status": "degraded",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "assist-api",
		"offers":  count,
	})
}
