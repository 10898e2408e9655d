package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// Dispatcher is the notification dispatch gateway: one outbound attempt
// per call, no internal retry. Email failures surface as errors; the SMS
// channel returns a success-shaped placeholder so reminder workflows keep
// going while SMS is unavailable.
type Dispatcher interface {
	Send(ctx context.Context, req domain.NotificationRequest) (domain.DispatchResult, error)
}

// NotificationQueue accepts rendered notifications for asynchronous,
// best-effort delivery through the gateway.
type NotificationQueue interface {
	Enqueue(req domain.NotificationRequest)
}
