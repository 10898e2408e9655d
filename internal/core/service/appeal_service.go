package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/api/metrics"
	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

const appealResponseWindow = "24-48 hours"

// AppealService handles appeal intake from banned or deleted account
// holders. Appeals are not persisted: a successful submission produces one
// admin-facing notification and one confirmation to the appellant, both
// best-effort.
type AppealService struct {
	dispatcher   ports.Dispatcher
	adminAddress string
	logger       zerolog.Logger
}

func NewAppealService(dispatcher ports.Dispatcher, adminAddress string, logger zerolog.Logger) *AppealService {
	return &AppealService{
		dispatcher:   dispatcher,
		adminAddress: adminAddress,
		logger:       logger,
	}
}

// Submit validates the appeal and dispatches the two notifications. A
// failed dispatch is logged, never propagated: the appeal still counts as
// submitted. The receipt ID is derived from the submission time for
// correlation only.
func (s *AppealService) Submit(ctx context.Context, appeal domain.Appeal) (*ports.AppealReceipt, error) {
	if err := appeal.Validate(); err != nil {
		return nil, err
	}

	if appeal.SubmittedAt.IsZero() {
		appeal.SubmittedAt = time.Now().UTC()
	}
	if appeal.AccountStatus == "" {
		appeal.AccountStatus = "banned"
	}

	receiptID := fmt.Sprintf("APL-%d", appeal.SubmittedAt.UnixMilli())

	requests := [2]domain.NotificationRequest{
		{
			To:      s.adminAddress,
			Channel: domain.ChannelEmail,
			Subject: fmt.Sprintf("Account %s appeal - %s", appeal.AccountStatus, appeal.Name),
			Body:    renderAdminAppealEmail(appeal, receiptID),
		},
		{
			To:      appeal.Email,
			Channel: domain.ChannelEmail,
			Subject: "Appeal submitted - account " + appeal.AccountStatus,
			Body:    renderAppealConfirmationEmail(appeal, receiptID),
		},
	}

	var results [2]domain.DispatchResult
	for i, req := range requests {
		result, err := s.dispatcher.Send(ctx, req)
		if err != nil {
			s.logger.Warn().Err(err).Str("to", req.To).Str("receipt_id", receiptID).Msg("appeal notification failed")
		}
		results[i] = result
	}

	metrics.AppealsSubmittedTotal.WithLabelValues(appeal.AccountStatus).Inc()
	s.logger.Info().
		Str("receipt_id", receiptID).
		Str("email", appeal.Email).
		Str("account_status", appeal.AccountStatus).
		Bool("admin_notified", results[0].Accepted).
		Bool("appellant_notified", results[1].Accepted).
		Msg("appeal submitted")

	return &ports.AppealReceipt{
		ReceiptID:               receiptID,
		EstimatedResponseWindow: appealResponseWindow,
	}, nil
}

func renderAdminAppealEmail(a domain.Appeal, receiptID string) string {
	phone := a.Phone
	if phone == "" {
		phone = "not provided"
	}
	reason := a.Reason
	if reason == "" {
		reason = "not specified"
	}
	return fmt.Sprintf(`<div>
<h2>Account %s appeal</h2>
<p><strong>Receipt:</strong> %s</p>
<p><strong>Submitted:</strong> %s</p>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s<br>
<strong>Reason:</strong> %s</p>
<h3>Message</h3>
<p>%s</p>
<p>Please review the account and respond within %s.</p>
</div>`,
		a.AccountStatus, receiptID, a.SubmittedAt.Format(time.RFC1123),
		a.Name, a.Email, phone, reason, a.Message, appealResponseWindow)
}

func renderAppealConfirmationEmail(a domain.Appeal, receiptID string) string {
	return fmt.Sprintf(`<div>
<h2>Appeal submitted</h2>
<p>Dear %s,</p>
<p>We received your account %s appeal (receipt %s) and it is now under
review. Our team will respond within %s. If your appeal is approved, your
account will be restored immediately.</p>
<h3>Your message</h3>
<p><em>%s</em></p>
<p>PropertyManager Support</p>
</div>`,
		a.Name, a.AccountStatus, receiptID, appealResponseWindow, a.Message)
}
