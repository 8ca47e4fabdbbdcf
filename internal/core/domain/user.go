package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email is already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

// User models an authenticated actor. The core only ever consumes the id and
// role extracted from a validated token.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email        string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:user"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// NormalizeRole collapses free-form role strings onto the closed {user, admin}
// enumeration. The decision is made once at the trust boundary; nothing deeper
// in the core re-parses role strings.
func NormalizeRole(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
