package impl

import (
	"io"
	"log/slog"
	"time"

	"booking/config"
)

var fixedNow = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    12,
			ResetTokenTTL: 10 * time.Minute,
		},
	}
}
