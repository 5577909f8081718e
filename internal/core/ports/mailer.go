package ports

import "context"

// Mailer delivers account emails.
type Mailer interface {
	SendVerification(ctx context.Context, email, code string) error
}
