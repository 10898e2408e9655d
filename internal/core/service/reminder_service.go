package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// ReminderService orchestrates rent-expiry reminders. Single reminders are
// synchronous calls straight through the dispatch gateway; bulk reminders
// classify the landlord's active tenancies with one now snapshot and fan
// the rendered emails out on the notification queue.
type ReminderService struct {
	dispatcher ports.Dispatcher
	queue      ports.NotificationQueue
	tenancies  ports.TenancyRepository
	logger     zerolog.Logger
}

func NewReminderService(
	dispatcher ports.Dispatcher,
	queue ports.NotificationQueue,
	tenancies ports.TenancyRepository,
	logger zerolog.Logger,
) *ReminderService {
	return &ReminderService{
		dispatcher: dispatcher,
		queue:      queue,
		tenancies:  tenancies,
		logger:     logger,
	}
}

// SendReminder pushes caller-rendered content through the gateway. The
// gateway's channel semantics apply: email failures surface, sms yields
// the non-blocking placeholder.
func (s *ReminderService) SendReminder(ctx context.Context, input ports.ReminderInput) (domain.DispatchResult, error) {
	return s.dispatcher.Send(ctx, domain.NotificationRequest{
		To:      input.To,
		Channel: domain.Channel(input.Channel),
		Subject: input.Subject,
		Body:    input.Body,
	})
}

// QueueExpiryReminders enqueues one email per expiring or expired active
// tenancy and returns the number queued. Delivery is best-effort and
// asynchronous.
func (s *ReminderService) QueueExpiryReminders(ctx context.Context, landlordID string) (int, error) {
	tenancies, err := s.tenancies.FindByLandlord(ctx, landlordID, true)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	queued := 0
	for _, t := range tenancies {
		status, days := domain.Classify(now, t.RentEnd)
		if status == domain.LeaseActive {
			continue
		}

		s.queue.Enqueue(domain.NotificationRequest{
			To:      t.Email,
			Channel: domain.ChannelEmail,
			Subject: expirySubject(status, days),
			Body:    renderExpiryEmail(t, status, days),
		})
		queued++
	}

	s.logger.Info().
		Str("landlord_id", landlordID).
		Int("queued", queued).
		Msg("expiry reminders queued")

	return queued, nil
}

func expirySubject(status domain.LeaseStatus, days int) string {
	switch {
	case status == domain.LeaseExpired:
		return "Your lease has expired"
	case days == 0:
		return "Your lease expires today"
	default:
		return fmt.Sprintf("Your lease expires in %d days", days)
	}
}

func renderExpiryEmail(t *domain.Tenancy, status domain.LeaseStatus, days int) string {
	when := fmt.Sprintf("on %s", t.RentEnd.Format("2 January 2006"))
	if status == domain.LeaseExpired {
		when = fmt.Sprintf("%d days ago, on %s", -days, t.RentEnd.Format("2 January 2006"))
	}
	return fmt.Sprintf(`<div>
<p>Dear %s,</p>
<p>This is a reminder that your lease %s. Please contact your landlord to
arrange a renewal or the return of the property.</p>
<p>PropertyManager</p>
</div>`, t.Name, when)
}
