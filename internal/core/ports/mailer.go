package ports

import "context"

// Mailer is the outbound email collaborator. Implementations make exactly
// one delivery attempt per call; retry policy belongs to the caller.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, html string) error
}
