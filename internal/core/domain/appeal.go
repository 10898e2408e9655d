package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrValidation = errors.New("validation failed")

// Appeal is a transient record submitted by a banned or deleted account
// holder asking for the decision to be reversed. It is consumed once by
// the dispatch gateway and never persisted.
type Appeal struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	Message       string    `json:"message"`
	AccountStatus string    `json:"account_status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Validate checks the required fields. Phone and reason are optional.
func (a Appeal) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if a.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if a.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}
