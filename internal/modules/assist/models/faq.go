package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FaqEntry represents a single row of the support knowledge base
type FaqEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	Problem   string    `gorm:"type:text" json:"problem"`
	Solution  string    `gorm:"type:text;not null" json:"solution"`
	URL       string    `gorm:"type:text" json:"url"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (FaqEntry) TableName() string {
	return "assist_faq_entries"
}

// BeforeCreate sets UUID before creating
func (f *FaqEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// MatchesToken reports whether the token appears in the title, problem
// statement or solution text, case-insensitively.
func (f *FaqEntry) MatchesToken(token string) bool {
	needle := strings.ToLower(token)
	return strings.Contains(strings.ToLower(f.Title), needle) ||
		strings.Contains(strings.ToLower(f.Problem), needle) ||
		strings.Contains(strings.ToLower(f.Solution), needle)
}
