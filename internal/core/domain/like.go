package domain

import (
	"errors"
	"time"
)

var ErrLikeNotFound = errors.New("like not found")
var ErrAlreadyLiked = errors.New("quote already liked by this user")

// QuoteLike marks a quote as a favourite of a user. A user may like a given
// quote at most once; the composite unique index is the source of truth.
type QuoteLike struct {
	ID      uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID  uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_quote_likes_user_quote"`
	QuoteID uint      `json:"quote_id" gorm:"not null;uniqueIndex:idx_quote_likes_user_quote"`
	LikedAt time.Time `json:"liked_at" gorm:"autoCreateTime"`

	User  *User  `json:"-" gorm:"foreignKey:UserID"`
	Quote *Quote `json:"quote,omitempty" gorm:"foreignKey:QuoteID"`
}
