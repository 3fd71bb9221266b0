package services

import (
	"math/rand"
	"time"

	"github.com/offerassist/assist-agent-be/internal/core/scheduler"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
)

// stubOfferRepo serves the static catalog without a database
type stubOfferRepo struct {
	offers []models.Offer
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{offers: catalog.Offers}
}

func (r *stubOfferRepo) ListActive() ([]models.Offer, error) {
	return r.offers, nil
}

func (r *stubOfferRepo) GetByOfferID(offerID string) (*models.Offer, error) {
	for i := range r.offers {
		if r.offers[i].OfferID == offerID {
			offer := r.offers[i]
			return &offer, nil
		}
	}
	return nil, ErrOfferNotFound
}

func (r *stubOfferRepo) Count() (int64, error) {
	return int64(len(r.offers)), nil
}

// stubFaqRepo serves the static knowledge base without a database
type stubFaqRepo struct {
	entries []models.FaqEntry
}

func newStubFaqRepo() *stubFaqRepo {
	return &stubFaqRepo{entries: catalog.FaqEntries}
}

func (r *stubFaqRepo) ListActive() ([]models.FaqEntry, error) {
	return r.entries, nil
}

func (r *stubFaqRepo) Titles() ([]string, error) {
	titles := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		titles = append(titles, entry.Title)
	}
	return titles, nil
}

// testEnv bundles a fully wired service stack on stub repositories and
// a fake scheduler.
type testEnv struct {
	sched      *scheduler.FakeScheduler
	sessions   repositories.SessionRepo
	keywordSvc *KeywordService
	advisorSvc *AdvisorService
	faqSvc     *FaqService
	cartSvc    *CartService
	sessionSvc *SessionService
}

func newTestEnv(seed int64, ttl time.Duration) *testEnv {
	rng := rand.New(rand.NewSource(seed))
	offerRepo := newStubOfferRepo()
	faqRepo := newStubFaqRepo()
	sessions := repositories.NewSessionRepo()
	sched := scheduler.NewFakeScheduler()

	keywordSvc := NewKeywordService(offerRepo, rng)
	advisorSvc := NewAdvisorService(rng)
	faqSvc := NewFaqService(faqRepo, rng)
	cartSvc := NewCartService(offerRepo)
	sessionSvc := NewSessionService(
		sessions, keywordSvc, advisorSvc, faqSvc, cartSvc,
		sched, ttl, 3, "fr",
	)

	return &testEnv{
		sched:      sched,
		sessions:   sessions,
		keywordSvc: keywordSvc,
		advisorSvc: advisorSvc,
		faqSvc:     faqSvc,
		cartSvc:    cartSvc,
		sessionSvc: sessionSvc,
	}
}
