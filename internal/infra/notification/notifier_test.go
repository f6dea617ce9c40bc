package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"booking/config"
	"booking/internal/domain/entity"
	"booking/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingSender struct {
	messages []*gomail.Message
	err      error
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)

	return nil
}

func testAccount() *entity.Account {
	return &entity.Account{Name: "Ada Lovelace", Email: "ada@example.com"}
}

func TestSMTPNotifier_SendPasswordReset(t *testing.T) {
	sender := &recordingSender{}
	notifier := newSMTPNotifier(sender, "hello@booking.local", "Booking")

	err := notifier.SendPasswordReset(context.Background(), testAccount(), "https://booking.local/api/v1/users/resetPassword/abc")
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, []string{"ada@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{passwordResetSubject}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{`"Booking" <hello@booking.local>`}, msg.GetHeader("From"))
}

func TestSMTPNotifier_SendWelcome(t *testing.T) {
	sender := &recordingSender{}
	notifier := newSMTPNotifier(sender, "hello@booking.local", "Booking")

	require.NoError(t, notifier.SendWelcome(context.Background(), testAccount(), "https://booking.local/me"))

	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{welcomeSubject}, sender.messages[0].GetHeader("Subject"))
}

func TestSMTPNotifier_DeliveryFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("dial tcp: connection refused")}
	notifier := newSMTPNotifier(sender, "hello@booking.local", "Booking")

	err := notifier.SendPasswordReset(context.Background(), testAccount(), "https://booking.local/x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPNotifier_CancelledContext(t *testing.T) {
	sender := &recordingSender{}
	notifier := newSMTPNotifier(sender, "hello@booking.local", "Booking")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := notifier.SendWelcome(ctx, testAccount(), "https://booking.local/me")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.messages)
}

func TestRenderMail(t *testing.T) {
	rendered, err := renderMail(passwordResetTemplate, passwordResetSubject, testAccount(), "https://booking.local/api/v1/users/resetPassword/abc")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", rendered.To)
	assert.Contains(t, rendered.HTML, "Hi Ada,")
	assert.Contains(t, rendered.HTML, "https://booking.local/api/v1/users/resetPassword/abc")
	assert.Contains(t, rendered.Text, "https://booking.local/api/v1/users/resetPassword/abc")
}

func TestRenderMail_EscapesName(t *testing.T) {
	account := &entity.Account{Name: "<script>alert(1)</script>", Email: "x@example.com"}

	rendered, err := renderMail(welcomeTemplate, welcomeSubject, account, "https://booking.local/me")
	require.NoError(t, err)
	assert.NotContains(t, rendered.HTML, "<script>")
}

func TestFirstName(t *testing.T) {
	assert.Equal(t, "Ada", firstName("Ada Lovelace"))
	assert.Equal(t, "Ada", firstName("  Ada  "))
	assert.Equal(t, "there", firstName(""))
}

func TestNewNotifier_FallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	notifier := NewNotifier(Params{Config: &config.Config{Email: &config.EmailConfig{}}, Logger: logger})
	_, isLog := notifier.(*logNotifier)
	require.True(t, isLog)

	require.NoError(t, notifier.SendPasswordReset(context.Background(), testAccount(), "https://booking.local/api/v1/users/resetPassword/secret-token"))
	assert.Contains(t, buf.String(), "ada@example.com")
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestNewNotifier_UsesSMTPWhenConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	cfg := &config.Config{Email: &config.EmailConfig{Host: "smtp.example.com", Port: 2525, From: "a@b.c"}}

	notifier := NewNotifier(Params{Config: cfg, Logger: logger})
	_, isSMTP := notifier.(*smtpNotifier)
	assert.True(t, isSMTP)
}
