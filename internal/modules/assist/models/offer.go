package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InternalTagPrefix marks keywords that are facets for internal routing
// and must never be shown to or suggested for the visitor.
const InternalTagPrefix = "tag_"

// KeywordList is a JSON-encoded keyword array
type KeywordList = datatypes.JSONSlice[string]

// Offer represents a single marketing offer in the catalog
type Offer struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	OfferID     string      `gorm:"type:text;not null;uniqueIndex" json:"offer_id"`
	Name        string      `gorm:"type:text;not null" json:"offer_name"`
	Description string      `gorm:"type:text" json:"description"`
	URL         string      `gorm:"type:text" json:"url"`
	Keywords    KeywordList `gorm:"type:jsonb;not null" json:"associated_keywords"`
	IsActive    bool        `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Offer) TableName() string {
	return "assist_offers"
}

// BeforeCreate sets UUID before creating
func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// HasKeyword reports whether the offer carries the given keyword
func (o *Offer) HasKeyword(keyword string) bool {
	for _, kw := range o.Keywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// MatchesAll reports whether the offer carries every keyword in the selection
func (o *Offer) MatchesAll(selection []string) bool {
	for _, kw := range selection {
		if !o.HasKeyword(kw) {
			return false
		}
	}
	return true
}

// DisplayKeywords returns the offer's keywords without internal facets
func (o *Offer) DisplayKeywords() []string {
	out := make([]string, 0, len(o.Keywords))
	for _, kw := range o.Keywords {
		if !strings.HasPrefix(kw, InternalTagPrefix) {
			out = append(out, kw)
		}
	}
	return out
}
