package services

import (
	"errors"
	"time"

	"github.com/offerassist/assist-agent-be/internal/core/i18n"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/catalog"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"github.com/offerassist/assist-agent-be/internal/modules/assist/repositories"
)

var (
	ErrOfferNotFound     = errors.New("offer not found")
	ErrNoPendingProOffer = errors.New("no professional services prompt is pending")
)

// CartService owns the session cart mutations. The cart lives entirely
// inside the session; nothing is persisted.
type CartService struct {
	offerRepo repositories.OfferRepo
}

func NewCartService(offerRepo repositories.OfferRepo) *CartService {
	return &CartService{offerRepo: offerRepo}
}

// Add puts the offer in the session cart. A duplicate add is a silent
// no-op. Adding the flagship connectivity offer holds the insertion
// behind the professional-services prompt: nothing lands in the cart
// until the visitor confirms or declines.
func (s *CartService) Add(session *models.Session, offerID string, flight *models.CartFlight, tr *i18n.Translator) (bool, error) {
	offer, err := s.lookup(offerID)
	if err != nil {
		return false, err
	}
	if session.InCart(offer.OfferID) {
		return false, nil
	}

	if offer.OfferID == catalog.ProServicesOfferID && !session.InCart(catalog.ProServicesCompanion.OfferID) {
		if session.PendingProOffer == "" {
			session.PendingProOffer = offer.OfferID
			session.PendingProFlight = flight
		}
		return false, nil
	}

	return s.insert(session, offer, flight, tr), nil
}

// AddDirect puts the offer in the cart without the companion prompt.
// The chat purchase path uses it: the advisor already closed the sale.
func (s *CartService) AddDirect(session *models.Session, offerID string, flight *models.CartFlight, tr *i18n.Translator) (bool, error) {
	offer, err := s.lookup(offerID)
	if err != nil {
		return false, err
	}
	return s.insert(session, offer, flight, tr), nil
}

// Remove drops the offer from the cart. Removing an unknown offer is a
// no-op.
func (s *CartService) Remove(session *models.Session, offerID string) bool {
	return session.RemoveFromCart(offerID)
}

// ConfirmProServices resolves a pending companion prompt by inserting
// the held flagship offer together with the companion product.
func (s *CartService) ConfirmProServices(session *models.Session, tr *i18n.Translator) error {
	offer, err := s.takePending(session)
	if err != nil {
		return err
	}

	flight := session.PendingProFlight
	session.PendingProFlight = nil
	s.insert(session, offer, flight, tr)

	companion := catalog.ProServicesCompanion
	s.insert(session, &companion, nil, tr)
	return nil
}

// DeclineProServices resolves a pending companion prompt by inserting
// the held flagship offer alone.
func (s *CartService) DeclineProServices(session *models.Session, tr *i18n.Translator) error {
	offer, err := s.takePending(session)
	if err != nil {
		return err
	}

	flight := session.PendingProFlight
	session.PendingProFlight = nil
	s.insert(session, offer, flight, tr)
	return nil
}

// takePending pops the offer held behind the companion prompt
func (s *CartService) takePending(session *models.Session) (*models.Offer, error) {
	if session.PendingProOffer == "" {
		return nil, ErrNoPendingProOffer
	}
	offer, err := s.lookup(session.PendingProOffer)
	if err != nil {
		return nil, err
	}
	session.PendingProOffer = ""
	return offer, nil
}

// insert performs the actual cart mutation, recording the animation
// flight when the entry is new.
func (s *CartService) insert(session *models.Session, offer *models.Offer, flight *models.CartFlight, tr *i18n.Translator) bool {
	added := session.AddToCart(models.CartEntry{
		OfferID:   offer.OfferID,
		OfferName: tr.OfferName(offer.OfferID, offer.Name),
		AddedAt:   time.Now(),
	})
	if !added {
		return false
	}

	if flight != nil {
		flight.OfferID = offer.OfferID
		session.LastFlight = flight
	}
	return true
}

// lookup resolves an offer by its public identifier. The companion
// product is resolvable even though it is not part of the browsable
// catalog.
func (s *CartService) lookup(offerID string) (*models.Offer, error) {
	if offerID == catalog.ProServicesCompanion.OfferID {
		companion := catalog.ProServicesCompanion
		return &companion, nil
	}

	offer, err := s.offerRepo.GetByOfferID(offerID)
	if err != nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}
