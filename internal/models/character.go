package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Character keeps the parent anime's name and slug inline so reads need no join.
type Character struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"id"`
	Name         string    `gorm:"not null" json:"name" bson:"name" example:"Itachi Uchiha"`
	Slug         string    `gorm:"uniqueIndex;not null" json:"slug" bson:"slug" example:"itachi-uchiha"`
	JapaneseName *string   `json:"japanese_name" bson:"japanese_name"`
	Anime        string    `gorm:"not null" json:"anime" bson:"anime" example:"NARUTO"`
	AnimeSlug    string    `gorm:"index;not null" json:"anime_slug" bson:"anime_slug" example:"naruto"`
	Bio          *string   `gorm:"type:text" json:"bio" bson:"bio"`
	ImageURL     *string   `json:"image_url" bson:"image_url"`
	Role         *string   `gorm:"index" json:"role" bson:"role" example:"antagonist"`
	TotalQuotes  int64     `gorm:"not null;default:0" json:"total_quotes" bson:"total_quotes" example:"2"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func (Character) TableName() string {
	return "characters"
}

func (c *Character) EnsureDefaults(now time.Time) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now.UTC()
	}
}

func (c *Character) BeforeCreate(tx *gorm.DB) error {
	c.EnsureDefaults(tx.NowFunc())
	return nil
}
