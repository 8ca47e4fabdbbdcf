package domain

import (
	"errors"
	"time"
)

// SuggestionStatus represents the moderation state of a suggested quote.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "Pending"
	SuggestionApproved SuggestionStatus = "Approved"
	SuggestionRejected SuggestionStatus = "Rejected"
)

// validModerations defines the allowed state machine transitions.
// Approved and Rejected are terminal.
var validModerations = map[SuggestionStatus][]SuggestionStatus{
	SuggestionPending: {SuggestionApproved, SuggestionRejected},
}

var ErrSuggestionNotFound = errors.New("suggestion not found")
var ErrSuggestionNotPending = errors.New("suggestion already moderated")
var ErrSuggestionWithoutCategory = errors.New("suggestion must have a category to be approved")
var ErrSuggestionCategoryGone = errors.New("suggestion category no longer exists")

// CanTransitionTo reports whether a moderation transition from s to next is valid.
func (s SuggestionStatus) CanTransitionTo(next SuggestionStatus) bool {
	for _, allowed := range validModerations[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions.
func (s SuggestionStatus) Terminal() bool {
	return len(validModerations[s]) == 0
}

// SuggestedQuote is a user-submitted candidate quote awaiting moderation.
// Rejected suggestions are retained for history, never deleted. The category
// reference is nullable: deleting a category nulls it out rather than
// reassigning (quotes are reassigned, suggestions are not).
type SuggestedQuote struct {
	ID         uint             `json:"id" gorm:"primaryKey;autoIncrement"`
	Text       string           `json:"text" gorm:"size:1000;not null"`
	Author     string           `json:"author" gorm:"size:200;not null"`
	CategoryID *uint            `json:"category_id,omitempty" gorm:"index"`
	UserID     uint             `json:"user_id" gorm:"not null;index"`
	Status     SuggestionStatus `json:"status" gorm:"size:50;not null;default:Pending"`
	CreatedAt  time.Time        `json:"created_at" gorm:"autoCreateTime"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
