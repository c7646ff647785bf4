package errors

import (
	"net/http"

	"domkarta/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Russian, matching the
// map viewer's locale.
var (
	// House-related errors
	ErrHouseNotFound = NewBaseError(
		http.StatusNotFound,
		"HOUSE_NOT_FOUND",
		"Дом не найден",
		"",
	)

	ErrHouseCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"HOUSE_CREATION_FAILED",
		"Не удалось сохранить данные о доме",
		"",
	)

	ErrHouseUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"HOUSE_UPDATE_FAILED",
		"Не удалось обновить данные о доме",
		"",
	)

	// Coordinate-resolution errors
	ErrResolutionFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"RESOLUTION_FAILED",
		"Не удалось найти координаты для указанного адреса. Попробуйте указать точнее.",
		"",
	)

	ErrGeocodingFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODING_FAILED",
		"Произошла ошибка при запросе к сервису геокодирования.",
		"",
	)

	// Persistence errors
	ErrPersistenceRejected = NewBaseError(
		http.StatusForbidden,
		"PERSISTENCE_REJECTED",
		"Хранилище отклонило изменение",
		"",
	)

	// Authentication / authorization errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Недействительный или просроченный токен",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"Требуются права администратора",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Ошибка проверки входных данных",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Внутренняя ошибка системы",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ресурс не найден",
		"",
	)
)
