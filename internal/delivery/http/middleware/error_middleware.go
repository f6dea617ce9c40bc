// Package middleware contains the echo middleware of the HTTP API.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"booking/config"
	deliverycontext "booking/internal/delivery/context"
	"booking/internal/delivery/http/response"
	domainerrors "booking/internal/domain/errors"
	"booking/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Operational errors are rendered with their own message; anything else is logged
// with its stack and answered with a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("request failed", slog.String("code", appErr.ErrorCode()), slog.String("error", fmt.Sprintf("%+v", err)))
			details = ""
		}

		m.render(c, logger, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr == echo.ErrNotFound {
			message := fmt.Sprintf("Can't find %s on this server!", c.Request().RequestURI)
			m.render(c, logger, http.StatusNotFound, domainerrors.ErrRouteNotFound.ErrorCode(), message, "")

			return
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		m.render(c, logger, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("unhandled error",
		slog.String("error", fmt.Sprintf("%+v", err)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	details := ""
	if !m.production {
		details = fmt.Sprintf("%+v", err)
	}

	m.render(c, logger, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), details)
}

func (m *ErrorMiddleware) render(c echo.Context, logger *slog.Logger, statusCode int, code, message, details string) {
	if err := response.Error(c, statusCode, code, message, details); err != nil {
		logger.Error("failed to write error response", slog.Any("error", err))
	}
}
