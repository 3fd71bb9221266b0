package repositories

import (
	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
	"gorm.io/gorm"
)

type FaqRepo interface {
	ListActive() ([]models.FaqEntry, error)
	Titles() ([]string, error)
}

type faqRepo struct {
	db *gorm.DB
}

func NewFaqRepo(db *gorm.DB) FaqRepo {
	return &faqRepo{db: db}
}

func (r *faqRepo) ListActive() ([]models.FaqEntry, error) {
	var entries []models.FaqEntry
	err := r.db.Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *faqRepo) Titles() ([]string, error) {
	var titles []string
	err := r.db.Model(&models.FaqEntry{}).
		Where("is_active = ?", true).
		Pluck("title", &titles).Error
	return titles, err
}
