package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/offerassist/assist-agent-be/internal/core/i18n"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
)

type CatalogHandler struct {
	offerRepo repositories.OfferRepo
	faqRepo   repositories.FaqRepo
}

func NewCatalogHandler(offerRepo repositories.OfferRepo, faqRepo repositories.FaqRepo) *CatalogHandler {
	return &CatalogHandler{
		offerRepo: offerRepo,
		faqRepo:   faqRepo,
	}
}

// ListOffers godoc
// @Summary List the offer catalog
// @Description Get every active offer, localized with the lang query parameter
// @Tags Catalog
// @Produce json
// @Param lang query string false "Locale (fr or en)"
// @Success 200 {object} map[string]interface{}
// @Router /offers [get]
func (h *CatalogHandler) ListOffers(c *fiber.Ctx) error {
	tr := i18n.NewTranslator(c.Query("lang", string(i18n.LocaleFR)))

	offers, err := h.offerRepo.ListActive()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	out := make([]services.OfferView, 0, len(offers))
	for _, offer := range offers {
		out = append(out, services.OfferView{
			OfferID:     offer.OfferID,
			Name:        tr.OfferName(offer.OfferID, offer.Name),
			Description: tr.OfferDesc(offer.OfferID, offer.Description),
			URL:         offer.URL,
			Keywords:    offer.DisplayKeywords(),
		})
	}

	return c.JSON(fiber.Map{
		"offers": out,
		"count":  len(out),
	})
}

// ListFaqEntries godoc
// @Summary List the knowledge base
// @Description Get every active help article
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /faq [get]
func (h *CatalogHandler) ListFaqEntries(c *fiber.Ctx) error {
	entries, err := h.faqRepo.ListActive()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"entries": entries,
		"count":   len(entries),
	})
}
