package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerassist/assist-agent-be/internal/core/scheduler"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
)

type memOfferRepo struct{ offers []models.Offer }

func (r *memOfferRepo) ListActive() ([]models.Offer, error) { return r.offers, nil }
func (r *memOfferRepo) GetByOfferID(offerID string) (*models.Offer, error) {
	for i := range r.offers {
		if r.offers[i].OfferID == offerID {
			offer := r.offers[i]
			return &offer, nil
		}
	}
	return nil, services.ErrOfferNotFound
}
func (r *memOfferRepo) Count() (int64, error) { return int64(len(r.offers)), nil }

type memFaqRepo struct{ entries []models.FaqEntry }

func (r *memFaqRepo) ListActive() ([]models.FaqEntry, error) { return r.entries, nil }
func (r *memFaqRepo) Titles() ([]string, error) {
	titles := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		titles = append(titles, e.Title)
	}
	return titles, nil
}

func newTestApp() (*fiber.App, *scheduler.FakeScheduler) {
	offerRepo := &memOfferRepo{offers: catalog.Offers}
	faqRepo := &memFaqRepo{entries: catalog.FaqEntries}
	sessionRepo := repositories.NewSessionRepo()
	sched := scheduler.NewFakeScheduler()

	rng := rand.New(rand.NewSource(1))
	keywordService := services.NewKeywordService(offerRepo, rng)
	advisorService := services.NewAdvisorService(rng)
	faqService := services.NewFaqService(faqRepo, rng)
	cartService := services.NewCartService(offerRepo)
	sessionService := services.NewSessionService(
		sessionRepo, keywordService, advisorService, faqService, cartService,
		sched, 30*time.Minute, 3, "fr",
	)

	healthHandler := NewHealthHandler(offerRepo)
	catalogHandler := NewCatalogHandler(offerRepo, faqRepo)
	sessionHandler := NewSessionHandler(sessionService)
	chatHandler := NewChatHandler(sessionService)
	cartHandler := NewCartHandler(sessionService)

	app := fiber.New()
	app.Get("/health", healthHandler.GetHealth)
	app.Get("/offers", catalogHandler.ListOffers)
	app.Get("/faq", catalogHandler.ListFaqEntries)
	app.Post("/sessions", sessionHandler.OpenSession)
	app.Get("/sessions/:id", sessionHandler.GetSession)
	app.Post("/sessions/:id/reset", sessionHandler.ResetSession)
	app.Delete("/sessions/:id", sessionHandler.CloseSession)
	app.Post("/sessions/:id/keywords/select", sessionHandler.SelectKeyword)
	app.Post("/sessions/:id/keywords/deselect", sessionHandler.DeselectKeyword)
	app.Post("/sessions/:id/prompt", sessionHandler.SubmitPrompt)
	app.Post("/sessions/:id/offer-chat", chatHandler.StartOfferChat)
	app.Post("/sessions/:id/offer-chat/messages", chatHandler.SubmitOfferChatMessage)
	app.Post("/sessions/:id/faq", chatHandler.OpenFaq)
	app.Post("/sessions/:id/faq/messages", chatHandler.SubmitFaqMessage)
	app.Post("/sessions/:id/cart", cartHandler.AddToCart)
	app.Delete("/sessions/:id/cart", cartHandler.RemoveFromCart)
	app.Post("/sessions/:id/cart/pro-services", cartHandler.ResolveProServices)

	return app, sched
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func openTestSession(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp, payload := doJSON(t, app, "POST", "/sessions", fiber.Map{"locale": "fr"})
	require.Equal(t, 201, resp.StatusCode)

	state := payload["state"].(map[string]interface{})
	session := state["session"].(map[string]interface{})
	return session["id"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp()

	resp, payload := doJSON(t, app, "GET", "/health", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ok", payload["status"])
}

func TestListOffersEndpoint(t *testing.T) {
	app, _ := newTestApp()

	resp, payload := doJSON(t, app, "GET", "/offers?lang=en", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, len(catalog.Offers), payload["count"])

	offers := payload["offers"].([]interface{})
	first := offers[0].(map[string]interface{})
	assert.Equal(t, "SD-WAN Flex Connectivity", first["name"])
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	app, _ := newTestApp()
	id := openTestSession(t, app)

	resp, payload := doJSON(t, app, "GET", "/sessions/"+id, nil)
	require.Equal(t, 200, resp.StatusCode)
	state := payload["state"].(map[string]interface{})
	assert.Equal(t, "initial", state["view"])

	resp, payload = doJSON(t, app, "POST", "/sessions/"+id+"/keywords/select", fiber.Map{"keyword": "sd-wan"})
	require.Equal(t, 200, resp.StatusCode)
	state = payload["state"].(map[string]interface{})
	assert.Equal(t, "refinement", state["view"])
	assert.NotEmpty(t, state["offers"])

	resp, _ = doJSON(t, app, "POST", "/sessions/"+id+"/reset", nil)
	require.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/sessions/"+id, nil)
	require.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/sessions/"+id, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestSessionValidationErrors(t *testing.T) {
	app, _ := newTestApp()

	resp, _ := doJSON(t, app, "GET", "/sessions/not-a-uuid", nil)
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/sessions/123e4567-e89b-12d3-a456-426614174000", nil)
	assert.Equal(t, 404, resp.StatusCode)

	id := openTestSession(t, app)
	resp, _ = doJSON(t, app, "POST", "/sessions/"+id+"/keywords/select", fiber.Map{})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestChatBusyEndpoint(t *testing.T) {
	app, sched := newTestApp()
	id := openTestSession(t, app)

	resp, _ := doJSON(t, app, "POST", "/sessions/"+id+"/offer-chat", fiber.Map{"offer_id": "O004"})
	require.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/sessions/"+id+"/offer-chat/messages", fiber.Map{"text": "quel est le prix ?"})
	require.Equal(t, 202, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/sessions/"+id+"/offer-chat/messages", fiber.Map{"text": "encore"})
	assert.Equal(t, 409, resp.StatusCode)

	sched.Advance(5 * time.Second)

	resp, payload := doJSON(t, app, "GET", "/sessions/"+id, nil)
	require.Equal(t, 200, resp.StatusCode)
	state := payload["state"].(map[string]interface{})
	session := state["session"].(map[string]interface{})
	chat := session["offer_chat"].(map[string]interface{})
	history := chat["history"].([]interface{})
	assert.Len(t, history, 3)
}

func TestCartEndpoints(t *testing.T) {
	app, _ := newTestApp()
	id := openTestSession(t, app)

	resp, payload := doJSON(t, app, "POST", "/sessions/"+id+"/cart", fiber.Map{"offer_id": "O001"})
	require.Equal(t, 200, resp.StatusCode)
	state := payload["state"].(map[string]interface{})
	session := state["session"].(map[string]interface{})
	assert.Equal(t, "O001", session["pending_pro_offer"])
	assert.Empty(t, session["cart"], "the add is held until the prompt is answered")

	resp, payload = doJSON(t, app, "POST", "/sessions/"+id+"/cart/pro-services", fiber.Map{"accepted": true})
	require.Equal(t, 200, resp.StatusCode)
	state = payload["state"].(map[string]interface{})
	session = state["session"].(map[string]interface{})
	cart := session["cart"].([]interface{})
	assert.Len(t, cart, 2)

	resp, _ = doJSON(t, app, "POST", "/sessions/"+id+"/cart", fiber.Map{"offer_id": "O999"})
	assert.Equal(t, 404, resp.StatusCode)
}
