package domain

import (
	"errors"
	"time"
)

var ErrQuoteNotFound = errors.New("quote not found")

// Quote is a canonical, publicly servable quote. Every quote belongs to
// exactly one category; quotes are re-pointed to the fallback category when
// their category is deleted, never cascade-deleted.
type Quote struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Author     string    `json:"author" gorm:"size:200;not null"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}
