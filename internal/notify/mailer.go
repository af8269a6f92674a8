package notify

import (
	"context"
	"log/slog"
)

// Mailer delivers user-facing mail. The production transport is deliberately
// pluggable; delivery failures never fail the operation that triggered them.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer is the stub transport used when no mail credentials are
// configured. It records the send instead of delivering it.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(_ context.Context, to, subject, _ string) error {
	m.logger.Info("mail stubbed", "to", to, "subject", subject)
	return nil
}
