package catalog

import (
	"log"

	"gorm.io/gorm"

	"github.com/offerassist/assist-agent-be/internal/modules/assist/models"
)

// Migrate creates the catalog tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Offer{}, &models.FaqEntry{})
}

// Seed loads the static catalogs into the database. Seeding is
// idempotent: an already-populated table is left untouched.
func Seed(db *gorm.DB) error {
	var offerCount int64
	if err := db.Model(&models.Offer{}).Count(&offerCount).Error; err != nil {
		return err
	}
	if offerCount == 0 {
		for i := range Offers {
			offer := Offers[i]
			offer.IsActive = true
			if err := db.Create(&offer).Error; err != nil {
				return err
			}
		}
		log.Printf("📦 Seeded %d offers", len(Offers))
	}

	var faqCount int64
	if err := db.Model(&models.FaqEntry{}).Count(&faqCount).Error; err != nil {
		return err
	}
	if faqCount == 0 {
		for i := range FaqEntries {
			entry := FaqEntries[i]
			entry.IsActive = true
			if err := db.Create(&entry).Error; err != nil {
				return err
			}
		}
		log.Printf("📚 Seeded %d FAQ entries", len(FaqEntries))
	}

	return nil
}
