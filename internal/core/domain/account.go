package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleLandlord = "landlord"
)

// ModerationAction is an administrative action applied to an account.
type ModerationAction string

const (
	ActionBan    ModerationAction = "ban"
	ActionUnban  ModerationAction = "unban"
	ActionDelete ModerationAction = "delete"
)

// Valid reports whether the action is one the moderation service understands.
func (a ModerationAction) Valid() bool {
	switch a {
	case ActionBan, ActionUnban, ActionDelete:
		return true
	}
	return false
}

var ErrAccountNotFound = errors.New("account not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("unauthorized")
var ErrAccountBanned = errors.New("account is banned")
var ErrAccountLocked = errors.New("account is locked by another moderation request")
var ErrInvalidAction = errors.New("invalid moderation action")

// Account models a landlord identity and its moderation status.
// Banned accounts are always inactive; Ban and Unban keep the two
// flags consistent.
type Account struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Active       bool      `json:"is_active" bson:"is_active"`
	Banned       bool      `json:"is_banned" bson:"is_banned"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// Ban marks the account banned and deactivates it.
func (a *Account) Ban() {
	a.Banned = true
	a.Active = false
}

// Unban lifts a ban and reactivates the account. Idempotent: unbanning
// an already-active account leaves it unchanged.
func (a *Account) Unban() {
	a.Banned = false
	a.Active = true
}
