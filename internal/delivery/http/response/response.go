// Package response renders the JSON envelope every API endpoint answers with.
package response

import (
	"net/http"

	deliverycontext "booking/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Status is the coarse outcome carried in every envelope.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	// StatusFail marks a client error (4xx).
	StatusFail Status = "FAIL"
	// StatusError marks a server error (5xx).
	StatusError Status = "ERROR"
)

// Response is the unified API envelope.
type Response struct {
	Status  Status     `json:"status"`
	Token   string     `json:"token,omitempty"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Meta    MetaInfo   `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details string `json:"details,omitempty"` // Additional context, never sent for 5xx in production
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id,omitempty"`
}

// StatusFor maps an HTTP status code onto the envelope status.
func StatusFor(statusCode int) Status {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return StatusError
	case statusCode >= http.StatusBadRequest:
		return StatusFail
	default:
		return StatusSuccess
	}
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{
		Status: StatusSuccess,
		Data:   data,
		Meta:   meta(c),
	})
}

// WithToken returns a successful response that also carries a freshly issued session token.
func WithToken(c echo.Context, statusCode int, token string, data any) error {
	return c.JSON(statusCode, Response{
		Status: StatusSuccess,
		Token:  token,
		Data:   data,
		Meta:   meta(c),
	})
}

// Error returns an error response; the envelope status is derived from statusCode.
// Callers decide whether details are safe to expose.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	resp := Response{
		Status:  StatusFor(statusCode),
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(statusCode)
	}

	return c.JSON(statusCode, resp)
}

func meta(c echo.Context) MetaInfo {
	return MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
