package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldTotalQuotes is the denormalized quote counter carried by anime and characters.
const FieldTotalQuotes = "total_quotes"

type Anime struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"id" example:"5f0c6a3e-2f4e-4c53-9d1a-0b6f3f3b2a11"`
	Name         string    `gorm:"not null" json:"name" bson:"name" example:"NARUTO"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug" bson:"slug" example:"naruto"`
	JapaneseName string    `json:"japanese_name" bson:"japanese_name" example:"ナルト"`
	Description  string    `gorm:"type:text" json:"description" bson:"description"`
	CoverImage   *string   `json:"cover_image" bson:"cover_image"`
	ReleaseYear  *int      `json:"release_year" bson:"release_year" example:"2002"`
	TotalQuotes  int64     `gorm:"not null;default:0" json:"total_quotes" bson:"total_quotes" example:"6"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (Anime) TableName() string {
	return "anime"
}

// EnsureDefaults assigns an id and creation time when they are missing.
func (a *Anime) EnsureDefaults(now time.Time) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now.UTC()
	}
}

func (a *Anime) BeforeCreate(tx *gorm.DB) error {
	a.EnsureDefaults(tx.NowFunc())
	return nil
}
