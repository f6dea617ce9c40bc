// Package notification delivers account mail over SMTP, or to the log when no relay is configured.
package notification

import (
	"context"
	"html/template"
	"log/slog"

	"booking/config"
	"booking/internal/domain/entity"
	"booking/internal/domain/service"
	"booking/internal/errors"

	"go.uber.org/fx"
	"gopkg.in/gomail.v2"
)

// mailSender is satisfied by *gomail.Dialer.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpNotifier struct {
	sender mailSender
	from   string
	name   string
}

// Params defines the dependencies of the notifier provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier returns the SMTP notifier when a relay is configured and the log notifier otherwise.
func NewNotifier(params Params) service.Notifier {
	cfg := params.Config.Email
	if !cfg.Enabled() {
		params.Logger.Warn("email relay not configured, account mail will only be logged")

		return NewLogNotifier(params.Logger)
	}

	return newSMTPNotifier(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From, cfg.FromName)
}

func newSMTPNotifier(sender mailSender, from, name string) *smtpNotifier {
	return &smtpNotifier{sender: sender, from: from, name: name}
}

// SendWelcome mails the welcome message.
func (n *smtpNotifier) SendWelcome(ctx context.Context, account *entity.Account, url string) error {
	return n.send(ctx, welcomeTemplate, welcomeSubject, account, url)
}

// SendPasswordReset mails the reset link.
func (n *smtpNotifier) SendPasswordReset(ctx context.Context, account *entity.Account, url string) error {
	return n.send(ctx, passwordResetTemplate, passwordResetSubject, account, url)
}

func (n *smtpNotifier) send(ctx context.Context, tmpl *template.Template, subject string, account *entity.Account, url string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send mail")
	}

	rendered, err := renderMail(tmpl, subject, account, url)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.name)
	m.SetHeader("To", rendered.To)
	m.SetHeader("Subject", rendered.Subject)
	m.SetBody("text/plain", rendered.Text)
	m.AddAlternative("text/html", rendered.HTML)

	if err := n.sender.DialAndSend(m); err != nil {
		return errors.Wrapf(err, "deliver %q mail", subject)
	}

	return nil
}
