package middleware

import (
	"log/slog"
	"net/http"

	"journal/config"
	deliverycontext "journal/internal/delivery/context"
	"journal/internal/delivery/http/response"
	domainerrors "journal/internal/domain/errors"
	"journal/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const genericServerErrorMessage = "Something went wrong"

// ErrorMiddleware is the single terminal point for every error in the
// system. It classifies the incoming error, logs it with a redacted request
// summary, and serializes the client-facing envelope. No other component
// writes an HTTP response body on failure.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates the terminal error handler.
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	appErr := m.classify(err)

	m.logError(err, appErr, c)

	if c.Response().Committed {
		return
	}

	message := appErr.Message()
	var details any
	if !m.production {
		details = appErr.Details()
		if details == nil {
			details = err.Error()
		}
	}

	// A production 500 must not leak internals.
	if m.production && appErr.HTTPCode() >= http.StatusInternalServerError {
		message = genericServerErrorMessage
	}

	writeErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message, details)
	if writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}

// classify reduces any error to exactly one taxonomy entry. Native errors
// already carry their kind; foreign errors from the persistence and routing
// collaborators are re-mapped here, and only here.
func (m *ErrorMiddleware) classify(err error) domainerrors.AppError {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrEntryNotFound):
		return domainerrors.ErrNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrDuplicate
	}

	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) {
		return domainerrors.ErrDatabase
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return m.classifyHTTPError(httpErr)
	}

	return domainerrors.ErrInternal
}

// classifyHTTPError folds echo's own errors (unknown route, oversized body,
// bad method) into the closed taxonomy.
func (m *ErrorMiddleware) classifyHTTPError(httpErr *echo.HTTPError) domainerrors.AppError {
	switch {
	case httpErr.Code == http.StatusNotFound || httpErr.Code == http.StatusMethodNotAllowed:
		return domainerrors.ErrNotFound
	case httpErr.Code == http.StatusRequestEntityTooLarge:
		return domainerrors.ErrFileTooLarge
	case httpErr.Code >= http.StatusInternalServerError:
		return domainerrors.ErrInternal
	default:
		return domainerrors.NewBaseError(httpErr.Code, "VALIDATION_ERROR", http.StatusText(httpErr.Code))
	}
}

// logError records the full error plus a redacted request summary.
func (m *ErrorMiddleware) logError(err error, appErr domainerrors.AppError, c echo.Context) {
	req := c.Request()

	subject := "anonymous"
	if identity, ok := deliverycontext.GetIdentity(c); ok {
		subject = identity.ID.String()
	}

	attrs := []slog.Attr{
		slog.String("error", err.Error()),
		slog.String("code", appErr.ErrorCode()),
		slog.Int("status", appErr.HTTPCode()),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("query", req.URL.RawQuery),
		slog.Any("headers", redactHeaders(req.Header)),
		slog.String("subject", subject),
		slog.String("requestID", deliverycontext.GetRequestID(c)),
	}

	level := slog.LevelWarn
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	m.logger.LogAttrs(req.Context(), level, "Request failed", attrs...)
}

// redactHeaders drops credential-bearing headers from the logged summary.
func redactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))
	for name, values := range headers {
		switch name {
		case echo.HeaderAuthorization, echo.HeaderCookie:
			redacted[name] = "[REDACTED]"
		default:
			if len(values) > 0 {
				redacted[name] = values[0]
			}
		}
	}

	return redacted
}
