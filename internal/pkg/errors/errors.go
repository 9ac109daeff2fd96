package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error shape every handler knows how to render. Business
// rules live in usecases and repositories; they reject with one of the
// constructors below and the response envelope is derived from the code.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest(message string) error {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func UnauthorizedError(message string) error {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func ForbiddenError(message string) error {
	return &AppError{Code: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) error {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

// Conflict covers invalid status transitions, completion preconditions and
// double acknowledgements.
func Conflict(message string) error {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

// PaymentRequired is raised when the gateway reports a declined charge.
func PaymentRequired(message string) error {
	return &AppError{Code: fiber.StatusPaymentRequired, Message: message}
}

// BadGateway is raised when the payment gateway itself misbehaves.
func BadGateway(message string) error {
	return &AppError{Code: fiber.StatusBadGateway, Message: message}
}

func InternalServerError(message string) error {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message}
}

// GetCode resolves the HTTP status for any error. Unrecognized errors are
// treated as internal so no raw message structure leaks by accident.
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return fiber.StatusInternalServerError
}
