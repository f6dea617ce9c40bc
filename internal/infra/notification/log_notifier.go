package notification

import (
	"context"
	"log/slog"

	"booking/internal/domain/entity"
	"booking/internal/domain/service"
)

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes account mail to the log instead of sending it.
// Links are logged at debug level only; they carry reset tokens.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

func (n *logNotifier) SendWelcome(ctx context.Context, account *entity.Account, url string) error {
	n.log(ctx, welcomeSubject, account, url)

	return nil
}

func (n *logNotifier) SendPasswordReset(ctx context.Context, account *entity.Account, url string) error {
	n.log(ctx, passwordResetSubject, account, url)

	return nil
}

func (n *logNotifier) log(ctx context.Context, subject string, account *entity.Account, url string) {
	n.logger.InfoContext(ctx, "mail not sent, no relay configured",
		slog.String("to", account.Email),
		slog.String("subject", subject),
	)
	n.logger.DebugContext(ctx, "mail link", slog.String("url", url))
}
