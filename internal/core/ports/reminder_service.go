package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// ReminderInput is a user-triggered reminder with caller-rendered content.
type ReminderInput struct {
	To      string
	Channel string
	Subject string
	Body    string
}

// ReminderService orchestrates rent-expiry reminders: single sends go
// straight through the dispatch gateway, bulk sends are classified and
// fanned out via the notification queue.
type ReminderService interface {
	SendReminder(ctx context.Context, input ReminderInput) (domain.DispatchResult, error)
	// QueueExpiryReminders renders and enqueues one email per expiring or
	// expired active tenancy and returns the number queued.
	QueueExpiryReminders(ctx context.Context, landlordID string) (int, error)
}
