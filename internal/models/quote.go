package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Quote struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"id"`
	Anime         string    `gorm:"not null" json:"anime" bson:"anime" example:"NARUTO"`
	AnimeSlug     string    `gorm:"index;not null" json:"anime_slug" bson:"anime_slug" example:"naruto"`
	Character     string    `gorm:"column:character;not null" json:"character" bson:"character" example:"Itachi Uchiha"`
	CharacterSlug string    `gorm:"index;not null" json:"character_slug" bson:"character_slug" example:"itachi-uchiha"`
	Text          string    `gorm:"type:text;not null" json:"text" bson:"text" example:"People's lives don't end when they die. It ends when they lose faith."`
	ImageURL      *string   `json:"image_url" bson:"image_url"`
	Category      *string   `gorm:"index" json:"category" bson:"category" example:"wisdom"`
	JapaneseTitle *string   `json:"japanese_title" bson:"japanese_title" example:"ナルト"`
	Featured      bool      `gorm:"index;not null;default:false" json:"featured" bson:"featured" example:"true"`
	CreatedAt     time.Time `gorm:"index" json:"created_at" bson:"created_at"`
}

func (Quote) TableName() string {
	return "quotes"
}

func (q *Quote) EnsureDefaults(now time.Time) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	if q.CreatedAt.IsZero() {
		q.CreatedAt = now.UTC()
	}
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	q.EnsureDefaults(tx.NowFunc())
	return nil
}

// StatusCheck is a client heartbeat record.
type StatusCheck struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id" bson:"id"`
	ClientName string    `gorm:"not null;index" json:"client_name" bson:"client_name" example:"web-frontend"`
	Timestamp  time.Time `gorm:"index" json:"timestamp" bson:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}

func (s *StatusCheck) EnsureDefaults(now time.Time) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = now.UTC()
	}
}

func (s *StatusCheck) BeforeCreate(tx *gorm.DB) error {
	s.EnsureDefaults(tx.NowFunc())
	return nil
}
