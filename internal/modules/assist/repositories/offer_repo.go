package repositories

import (
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"gorm.io/gorm"
)

type OfferRepo interface {
	ListActive() ([]models.Offer, error)
	GetByOfferID(offerID string) (*models.Offer, error)
	Count() (int64, error)
}

type offerRepo struct {
	db *gorm.DB
}

func NewOfferRepo(db *gorm.DB) OfferRepo {
	return &offerRepo{db: db}
}

func (r *offerRepo) ListActive() ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.Where("is_active = ?", true).
		Order("offer_id ASC").
		Find(&offers).Error
	return offers, err
}

func (r *offerRepo) GetByOfferID(offerID string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.First(&offer, "offer_id = ? AND is_active = ?", offerID, true).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Offer{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
