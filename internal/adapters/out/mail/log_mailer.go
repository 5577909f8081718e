package mail

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// LogMailer writes emails to the log. It is used when no Mailgun domain is
// configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) LogMailer {
	return LogMailer{logger: logger.With("component", "LogMailer")}
}

var _ ports.Mailer = LogMailer{}

func (m LogMailer) SendVerification(ctx context.Context, email, code string) error {
	m.logger.InfoContext(ctx, "Verification email", "to", email, "code", code)
	return nil
}
