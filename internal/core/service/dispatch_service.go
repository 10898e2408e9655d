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

// DispatchService is the notification dispatch gateway. It hands rendered
// content to the outbound channel and reports the outcome; it never builds
// content and never retries.
type DispatchService struct {
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewDispatchService(mailer ports.Mailer, logger zerolog.Logger) *DispatchService {
	return &DispatchService{mailer: mailer, logger: logger}
}

// Send makes exactly one outbound attempt. Email failures surface as
// domain.ErrDispatchFailed; the SMS channel returns a success-shaped
// placeholder so reminder workflows do not block while SMS is unavailable.
func (s *DispatchService) Send(ctx context.Context, req domain.NotificationRequest) (domain.DispatchResult, error) {
	switch req.Channel {
	case domain.ChannelEmail:
		start := time.Now()
		err := s.mailer.SendEmail(ctx, req.To, req.Subject, req.Body)
		metrics.NotificationSendDuration.WithLabelValues(string(req.Channel)).Observe(time.Since(start).Seconds())

		if err != nil {
			metrics.NotificationsSentTotal.WithLabelValues("email", "failed").Inc()
			s.logger.Error().Err(err).Str("to", req.To).Msg("email dispatch failed")
			return domain.DispatchResult{Channel: req.Channel}, fmt.Errorf("%w: %v", domain.ErrDispatchFailed, err)
		}

		metrics.NotificationsSentTotal.WithLabelValues("email", "accepted").Inc()
		s.logger.Info().Str("to", req.To).Str("subject", req.Subject).Msg("email dispatched")
		return domain.DispatchResult{Channel: req.Channel, Accepted: true}, nil

	case domain.ChannelSMS:
		// SMS has no provider yet. Returning an accepted placeholder keeps
		// reminder workflows non-blocking until one is wired in.
		metrics.NotificationsSentTotal.WithLabelValues("sms", "placeholder").Inc()
		s.logger.Debug().Str("to", req.To).Msg("sms dispatch skipped, channel not implemented")
		return domain.DispatchResult{
			Channel:  req.Channel,
			Accepted: true,
			Detail:   "sms channel not implemented",
		}, nil

	default:
		return domain.DispatchResult{}, fmt.Errorf("%w: %q", domain.ErrInvalidChannel, req.Channel)
	}
}
