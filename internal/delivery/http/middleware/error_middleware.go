package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	deliverycontext "domkarta/internal/delivery/context"
	domainerrors "domkarta/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware is installed as echo's HTTPErrorHandler and turns every
// error that escaped a handler into the unified response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders application errors with their own HTTP code and
// business code, echo errors as-is, and everything else as a 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeResponse(c, appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.writeResponse(c, httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
		})

		return
	}

	logger.Error("unhandled error",
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	m.writeResponse(c, http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: domainerrors.ErrInternalError.Message(),
		Error: &domainerrors.ErrorInfo{
			Code: domainerrors.ErrInternalError.ErrorCode(),
		},
	})
}

func (m *ErrorMiddleware) writeResponse(c echo.Context, statusCode int, body domainerrors.Response) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(statusCode)
	} else {
		err = c.JSON(statusCode, body)
	}
	if err != nil {
		m.logger.Error("failed to write error response", slog.Any("error", err))
	}
}
