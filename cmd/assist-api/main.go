package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"

	"github.com/offerassist/assist-agent-be/internal/core/scheduler"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/handlers"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/services"
	"github.com/offerassist/assist-agent-be/internal/shared/config"
	"github.com/offerassist/assist-agent-be/internal/shared/database"
	"github.com/offerassist/assist-agent-be/internal/shared/utils"
)

// @title Offer Assist API
// @version 1.0
// @description Session API for the marketing site assistant widget
// @contact.name API Support
// @contact.email support@offerassist.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting assist-api on port %s", cfg.Port)

	// Init database and seed the static catalogs
	db := database.NewDB(cfg.DatabasePath)
	defer db.Close()

	if err := catalog.Migrate(db.GORM); err != nil {
		log.Fatalf("Failed to migrate catalog tables: %v", err)
	}
	if err := catalog.Seed(db.GORM); err != nil {
		log.Fatalf("Failed to seed catalogs: %v", err)
	}

	// Init repositories
	offerRepo := repositories.NewOfferRepo(db.GORM)
	faqRepo := repositories.NewFaqRepo(db.GORM)
	sessionRepo := repositories.NewSessionRepo()

	// Init scheduler for the scripted delays
	sched := scheduler.NewTimerScheduler()
	defer sched.Stop()

	// Init services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	keywordService := services.NewKeywordService(offerRepo, rng)
	advisorService := services.NewAdvisorService(rng)
	faqService := services.NewFaqService(faqRepo, rng)
	cartService := services.NewCartService(offerRepo)
	sessionService := services.NewSessionService(
		sessionRepo,
		keywordService,
		advisorService,
		faqService,
		cartService,
		sched,
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		cfg.KeywordMinOccurrences,
		cfg.DefaultLocale,
	)

	// Sweep idle sessions every 5 minutes
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("*/5 * * * *", func() {
		if removed := sessionService.CleanupExpired(); removed > 0 {
			log.Printf("🧹 Removed %d expired sessions", removed)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule session sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(offerRepo)
	catalogHandler := handlers.NewCatalogHandler(offerRepo, faqRepo)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	chatHandler := handlers.NewChatHandler(sessionService)
	cartHandler := handlers.NewCartHandler(sessionService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Offer Assist API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Catalog routes
	app.Get("/offers", catalogHandler.ListOffers)
	app.Get("/faq", catalogHandler.ListFaqEntries)

	// Session lifecycle routes
	app.Post("/sessions", sessionHandler.OpenSession)
	app.Get("/sessions/:id", sessionHandler.GetSession)
	app.Post("/sessions/:id/reset", sessionHandler.ResetSession)
	app.Delete("/sessions/:id", sessionHandler.CloseSession)

	// Keyword and search routes
	app.Post("/sessions/:id/keywords/select", sessionHandler.SelectKeyword)
	app.Post("/sessions/:id/keywords/deselect", sessionHandler.DeselectKeyword)
	app.Post("/sessions/:id/prompt", sessionHandler.SubmitPrompt)
	app.Post("/sessions/:id/voice", sessionHandler.StartVoiceSearch)

	// Conversation routes
	app.Post("/sessions/:id/offer-chat", chatHandler.StartOfferChat)
	app.Post("/sessions/:id/offer-chat/messages", chatHandler.SubmitOfferChatMessage)
	app.Post("/sessions/:id/faq", chatHandler.OpenFaq)
	app.Post("/sessions/:id/faq/messages", chatHandler.SubmitFaqMessage)

	// Cart routes
	app.Post("/sessions/:id/cart", cartHandler.AddToCart)
	app.Delete("/sessions/:id/cart", cartHandler.RemoveFromCart)
	app.Post("/sessions/:id/cart/pro-services", cartHandler.ResolveProServices)

	// Contact routes
	app.Post("/sessions/:id/contact", sessionHandler.StartContact)
	app.Post("/sessions/:id/contact/submit", sessionHandler.SubmitContact)

	// RFP routes
	app.Post("/sessions/:id/rfp", sessionHandler.StartRfp)
	app.Post("/sessions/:id/rfp/submit", sessionHandler.SubmitRfp)

	// Start server
	log.Printf("✅ assist-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
