package presenter

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/formforge/backend/pkg/apperr"
)

// ErrorResponse is the uniform failure envelope across all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps every successful payload under "data".
type DataResponse struct {
	Data any `json:"data"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Data(c *fiber.Ctx, status int, v any) error {
	return JSON(c, status, DataResponse{Data: v})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// StatusOf maps an error classification to an HTTP status code.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FromError renders any use-case error as the uniform message envelope.
// Only the classified message is echoed; wrapped causes stay server-side.
func FromError(c *fiber.Ctx, err error) error {
	ae := apperr.Classify(err)
	return Error(c, StatusOf(ae.Kind), ae.Message)
}
